package repository

import (
	"context"
	"fmt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
)

var ErrHackathonNotFound = dao.ErrHackathonNotFound

type HackathonDAO interface {
	Insert(ctx context.Context, h dao.Hackathon) (dao.Hackathon, error)
	Update(ctx context.Context, h dao.Hackathon) (dao.Hackathon, error)
	FindByID(ctx context.Context, id uint) (dao.Hackathon, error)
	FindAll(ctx context.Context) ([]dao.Hackathon, error)
}

type HackathonRepository struct {
	dao HackathonDAO
}

func NewHackathonRepository(dao HackathonDAO) *HackathonRepository {
	return &HackathonRepository{
		dao: dao,
	}
}

func (r *HackathonRepository) Create(ctx context.Context, h domain.Hackathon) (domain.Hackathon, error) {
	created, err := r.dao.Insert(ctx, hackathonDomainToDao(h))
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return hackathonDaoToDomain(created), nil
}

func (r *HackathonRepository) Update(ctx context.Context, h domain.Hackathon) (domain.Hackathon, error) {
	updated, err := r.dao.Update(ctx, hackathonDomainToDao(h))
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return hackathonDaoToDomain(updated), nil
}

func (r *HackathonRepository) FindByID(ctx context.Context, id uint) (domain.Hackathon, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return hackathonDaoToDomain(found), nil
}

func (r *HackathonRepository) FindAll(ctx context.Context) ([]domain.Hackathon, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	out := make([]domain.Hackathon, 0, len(found))
	for _, h := range found {
		out = append(out, hackathonDaoToDomain(h))
	}

	return out, nil
}

func hackathonDomainToDao(h domain.Hackathon) dao.Hackathon {
	return dao.Hackathon{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Location:    h.Location,
		StartsAt:    h.StartsAt,
		EndsAt:      h.EndsAt,
		PinCode:     h.PinCode,
		Started:     h.Started,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func hackathonDaoToDomain(h dao.Hackathon) domain.Hackathon {
	return domain.Hackathon{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Location:    h.Location,
		StartsAt:    h.StartsAt,
		EndsAt:      h.EndsAt,
		PinCode:     h.PinCode,
		Started:     h.Started,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
