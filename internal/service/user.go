package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type InviteRepository interface {
	FindInviteByEmail(ctx context.Context, email string) (domain.SponsorInvite, error)
	DeleteInvite(ctx context.Context, id uint) error
}

type UserService struct {
	tx      Transactor
	repo    UserRepository
	invites InviteRepository
}

func NewUserService(tx Transactor, repo UserRepository, invites InviteRepository) *UserService {
	return &UserService{
		tx:      tx,
		repo:    repo,
		invites: invites,
	}
}

// Sync returns the stored user for identity, creating it on first sight.
// A pending sponsor invite for the email turns the user into a sponsor employee.
func (s *UserService) Sync(ctx context.Context, identity domain.Identity) (domain.User, error) {
	var user domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.sync(ctx, identity)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (s *UserService) sync(ctx context.Context, identity domain.Identity) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, identity.UserID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = s.repo.Create(ctx, identity.ToUser())
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
	case err != nil:
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if user.Email == "" {
		return user, nil
	}

	invite, err := s.invites.FindInviteByEmail(ctx, user.Email)
	if errors.Is(err, repository.ErrInviteNotFound) {
		return user, nil
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("s.invites.FindInviteByEmail -> %w", err)
	}

	sponsorID := invite.SponsorID
	user.Role = domain.RoleSponsor
	user.CompanyID = &sponsorID
	user, err = s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if err := s.invites.DeleteInvite(ctx, invite.ID); err != nil {
		return domain.User{}, fmt.Errorf("s.invites.DeleteInvite -> %w", err)
	}

	zap.L().Info("sponsor invite accepted",
		zap.String("user_id", user.ID),
		zap.Uint("sponsor_id", sponsorID),
	)

	return user, nil
}

func (s *UserService) Me(ctx context.Context, identity domain.Identity) (domain.User, error) {
	return s.Sync(ctx, identity)
}
