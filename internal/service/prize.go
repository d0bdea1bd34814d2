package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hackforge/hackathon-api/internal/domain"
)

type PrizeRepository interface {
	Create(ctx context.Context, p domain.Prize) (domain.Prize, error)
	FindByID(ctx context.Context, id uint) (domain.Prize, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Prize, error)
	Delete(ctx context.Context, id uint) error
}

type SponsorFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Sponsor, error)
}

type NewPrize struct {
	Title       string
	Description string
	Value       string
	SponsorID   *uint
}

type PrizeService struct {
	repo       PrizeRepository
	hackathons HackathonFinder
	sponsors   SponsorFinder
}

func NewPrizeService(repo PrizeRepository, hackathons HackathonFinder, sponsors SponsorFinder) *PrizeService {
	return &PrizeService{
		repo:       repo,
		hackathons: hackathons,
		sponsors:   sponsors,
	}
}

func (s *PrizeService) CreatePrize(ctx context.Context, identity domain.Identity, hackathonID uint, np NewPrize) (domain.Prize, error) {
	if err := requireOrganiser(identity); err != nil {
		return domain.Prize{}, err
	}
	if strings.TrimSpace(np.Title) == "" {
		return domain.Prize{}, errRequired("title")
	}

	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return domain.Prize{}, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	prize := domain.Prize{
		HackathonID: hackathonID,
		SponsorID:   np.SponsorID,
		Title:       strings.TrimSpace(np.Title),
		Description: np.Description,
		Value:       strings.TrimSpace(np.Value),
	}

	if !prize.IsGeneral() {
		sponsor, err := s.sponsors.FindByID(ctx, *prize.SponsorID)
		if err != nil {
			return domain.Prize{}, fmt.Errorf("s.sponsors.FindByID -> %w", err)
		}
		if sponsor.HackathonID != hackathonID {
			return domain.Prize{}, ErrSponsorMismatch
		}
	}

	created, err := s.repo.Create(ctx, prize)
	if err != nil {
		return domain.Prize{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PrizeService) ListPrizes(ctx context.Context, hackathonID uint) ([]domain.Prize, error) {
	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return nil, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	prizes, err := s.repo.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByHackathonID -> %w", err)
	}

	return prizes, nil
}

func (s *PrizeService) DeletePrize(ctx context.Context, identity domain.Identity, id uint) error {
	if err := requireOrganiser(identity); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
