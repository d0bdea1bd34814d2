package repository

import (
	"context"
	"fmt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
)

var (
	ErrSponsorNotFound = dao.ErrSponsorNotFound
	ErrInviteNotFound  = dao.ErrInviteNotFound
)

type SponsorDAO interface {
	Insert(ctx context.Context, s dao.Sponsor) (dao.Sponsor, error)
	UpdateLogo(ctx context.Context, id uint, logoURL string) error
	FindByID(ctx context.Context, id uint) (dao.Sponsor, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]dao.Sponsor, error)
	FindByIDs(ctx context.Context, hackathonID uint, ids []uint) ([]dao.Sponsor, error)
	InsertInvite(ctx context.Context, invite dao.SponsorInvite) (dao.SponsorInvite, error)
	FindInviteByEmail(ctx context.Context, email string) (dao.SponsorInvite, error)
	DeleteInvite(ctx context.Context, id uint) error
}

type SponsorRepository struct {
	dao SponsorDAO
}

func NewSponsorRepository(dao SponsorDAO) *SponsorRepository {
	return &SponsorRepository{
		dao: dao,
	}
}

func (r *SponsorRepository) Create(ctx context.Context, s domain.Sponsor) (domain.Sponsor, error) {
	created, err := r.dao.Insert(ctx, dao.Sponsor{
		HackathonID: s.HackathonID,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		Website:     s.Website,
	})
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return sponsorDaoToDomain(created), nil
}

func (r *SponsorRepository) UpdateLogo(ctx context.Context, id uint, logoURL string) error {
	if err := r.dao.UpdateLogo(ctx, id, logoURL); err != nil {
		return fmt.Errorf("r.dao.UpdateLogo -> %w", err)
	}

	return nil
}

func (r *SponsorRepository) FindByID(ctx context.Context, id uint) (domain.Sponsor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return sponsorDaoToDomain(found), nil
}

func (r *SponsorRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Sponsor, error) {
	found, err := r.dao.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByHackathonID -> %w", err)
	}

	return sponsorsDaoToDomain(found), nil
}

func (r *SponsorRepository) FindByIDs(ctx context.Context, hackathonID uint, ids []uint) ([]domain.Sponsor, error) {
	found, err := r.dao.FindByIDs(ctx, hackathonID, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return sponsorsDaoToDomain(found), nil
}

func (r *SponsorRepository) CreateInvite(ctx context.Context, invite domain.SponsorInvite) (domain.SponsorInvite, error) {
	created, err := r.dao.InsertInvite(ctx, dao.SponsorInvite{
		SponsorID: invite.SponsorID,
		Email:     invite.Email,
	})
	if err != nil {
		return domain.SponsorInvite{}, fmt.Errorf("r.dao.InsertInvite -> %w", err)
	}

	return inviteDaoToDomain(created), nil
}

func (r *SponsorRepository) FindInviteByEmail(ctx context.Context, email string) (domain.SponsorInvite, error) {
	found, err := r.dao.FindInviteByEmail(ctx, email)
	if err != nil {
		return domain.SponsorInvite{}, fmt.Errorf("r.dao.FindInviteByEmail -> %w", err)
	}

	return inviteDaoToDomain(found), nil
}

func (r *SponsorRepository) DeleteInvite(ctx context.Context, id uint) error {
	if err := r.dao.DeleteInvite(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteInvite -> %w", err)
	}

	return nil
}

func sponsorDaoToDomain(s dao.Sponsor) domain.Sponsor {
	return domain.Sponsor{
		ID:          s.ID,
		HackathonID: s.HackathonID,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		Website:     s.Website,
		Employees:   usersDaoToDomain(s.Employees),
		CreatedAt:   s.CreatedAt,
	}
}

func sponsorsDaoToDomain(sponsors []dao.Sponsor) []domain.Sponsor {
	out := make([]domain.Sponsor, 0, len(sponsors))
	for _, s := range sponsors {
		out = append(out, sponsorDaoToDomain(s))
	}
	return out
}

func inviteDaoToDomain(i dao.SponsorInvite) domain.SponsorInvite {
	return domain.SponsorInvite{
		ID:        i.ID,
		SponsorID: i.SponsorID,
		Email:     i.Email,
		CreatedAt: i.CreatedAt,
	}
}
