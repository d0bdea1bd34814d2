package repository

import (
	"context"
	"fmt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
)

var ErrPrizeNotFound = dao.ErrPrizeNotFound

type PrizeDAO interface {
	Insert(ctx context.Context, p dao.Prize) (dao.Prize, error)
	FindByID(ctx context.Context, id uint) (dao.Prize, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]dao.Prize, error)
	Delete(ctx context.Context, id uint) error
}

type PrizeRepository struct {
	dao PrizeDAO
}

func NewPrizeRepository(dao PrizeDAO) *PrizeRepository {
	return &PrizeRepository{
		dao: dao,
	}
}

func (r *PrizeRepository) Create(ctx context.Context, p domain.Prize) (domain.Prize, error) {
	created, err := r.dao.Insert(ctx, dao.Prize{
		HackathonID: p.HackathonID,
		SponsorID:   p.SponsorID,
		Title:       p.Title,
		Description: p.Description,
		Value:       p.Value,
	})
	if err != nil {
		return domain.Prize{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return prizeDaoToDomain(created), nil
}

func (r *PrizeRepository) FindByID(ctx context.Context, id uint) (domain.Prize, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Prize{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return prizeDaoToDomain(found), nil
}

func (r *PrizeRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Prize, error) {
	found, err := r.dao.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByHackathonID -> %w", err)
	}

	out := make([]domain.Prize, 0, len(found))
	for _, p := range found {
		out = append(out, prizeDaoToDomain(p))
	}

	return out, nil
}

func (r *PrizeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func prizeDaoToDomain(p dao.Prize) domain.Prize {
	return domain.Prize{
		ID:          p.ID,
		HackathonID: p.HackathonID,
		SponsorID:   p.SponsorID,
		Title:       p.Title,
		Description: p.Description,
		Value:       p.Value,
		CreatedAt:   p.CreatedAt,
	}
}
