package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
)

var (
	ErrTeamNotFound   = dao.ErrTeamNotFound
	ErrMemberNotFound = dao.ErrMemberNotFound
)

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team) (dao.Team, error)
	Update(ctx context.Context, team dao.Team) (dao.Team, error)
	Touch(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (dao.Team, error)
	FindByIDForUpdate(ctx context.Context, id uint) (dao.Team, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]dao.Team, error)
	FindByMember(ctx context.Context, hackathonID uint, userID, email string) (dao.Team, error)
	AddMember(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	RemoveMember(ctx context.Context, teamID uint, userID string) error
}

type TeamRepository struct {
	dao TeamDAO
}

func NewTeamRepository(dao TeamDAO) *TeamRepository {
	return &TeamRepository{
		dao: dao,
	}
}

func (r *TeamRepository) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.Insert(ctx, dao.Team{
		HackathonID:  team.HackathonID,
		Name:         team.Name,
		Description:  team.Description,
		LeaderID:     team.LeaderID,
		JoinCodeHash: team.JoinCodeHash,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return teamDaoToDomain(created), nil
}

func (r *TeamRepository) Update(ctx context.Context, team domain.Team) (domain.Team, error) {
	updated, err := r.dao.Update(ctx, dao.Team{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return teamDaoToDomain(updated), nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (domain.Team, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return teamDaoToDomain(found), nil
}

func (r *TeamRepository) FindByIDForUpdate(ctx context.Context, id uint) (domain.Team, error) {
	found, err := r.dao.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByIDForUpdate -> %w", err)
	}

	return teamDaoToDomain(found), nil
}

func (r *TeamRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Team, error) {
	found, err := r.dao.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByHackathonID -> %w", err)
	}

	out := make([]domain.Team, 0, len(found))
	for _, t := range found {
		out = append(out, teamDaoToDomain(t))
	}

	return out, nil
}

func (r *TeamRepository) FindByMember(ctx context.Context, hackathonID uint, userID, email string) (domain.Team, error) {
	found, err := r.dao.FindByMember(ctx, hackathonID, userID, email)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByMember -> %w", err)
	}

	return teamDaoToDomain(found), nil
}

func (r *TeamRepository) AddMember(ctx context.Context, team domain.Team, userID string) error {
	_, err := r.dao.AddMember(ctx, dao.TeamMember{
		TeamID:      team.ID,
		HackathonID: team.HackathonID,
		UserID:      userID,
		JoinedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("r.dao.AddMember -> %w", err)
	}

	if err := r.dao.Touch(ctx, team.ID); err != nil {
		return fmt.Errorf("r.dao.Touch -> %w", err)
	}

	return nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID uint, userID string) error {
	if err := r.dao.RemoveMember(ctx, teamID, userID); err != nil {
		return fmt.Errorf("r.dao.RemoveMember -> %w", err)
	}

	if err := r.dao.Touch(ctx, teamID); err != nil {
		return fmt.Errorf("r.dao.Touch -> %w", err)
	}

	return nil
}

func teamDaoToDomain(t dao.Team) domain.Team {
	members := make([]domain.User, 0, len(t.Members))
	for _, m := range t.Members {
		u := userDaoToDomain(m.User)
		if u.ID == "" {
			u.ID = m.UserID
		}
		members = append(members, u)
	}

	return domain.Team{
		ID:           t.ID,
		HackathonID:  t.HackathonID,
		Name:         t.Name,
		Description:  t.Description,
		LeaderID:     t.LeaderID,
		JoinCodeHash: t.JoinCodeHash,
		Members:      members,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
