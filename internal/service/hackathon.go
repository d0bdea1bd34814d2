package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hackforge/hackathon-api/internal/domain"
)

type HackathonRepository interface {
	Create(ctx context.Context, h domain.Hackathon) (domain.Hackathon, error)
	Update(ctx context.Context, h domain.Hackathon) (domain.Hackathon, error)
	FindByID(ctx context.Context, id uint) (domain.Hackathon, error)
	FindAll(ctx context.Context) ([]domain.Hackathon, error)
}

// HackathonFinder is the read-only slice other services need to check that an
// owning hackathon exists.
type HackathonFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Hackathon, error)
}

type NewHackathon struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	PinCode     string
}

type HackathonPatch struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	PinCode     *string
}

type HackathonService struct {
	tx   Transactor
	repo HackathonRepository
}

func NewHackathonService(tx Transactor, repo HackathonRepository) *HackathonService {
	return &HackathonService{
		tx:   tx,
		repo: repo,
	}
}

func validPinCode(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateSchedule(startsAt, endsAt time.Time) error {
	if !startsAt.IsZero() && !endsAt.IsZero() && endsAt.Before(startsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", ErrValidation)
	}
	return nil
}

func (s *HackathonService) CreateHackathon(ctx context.Context, identity domain.Identity, nh NewHackathon) (domain.Hackathon, error) {
	if err := requireOrganiser(identity); err != nil {
		return domain.Hackathon{}, err
	}
	if strings.TrimSpace(nh.Title) == "" {
		return domain.Hackathon{}, errRequired("title")
	}
	if nh.PinCode != "" && !validPinCode(nh.PinCode) {
		return domain.Hackathon{}, ErrInvalidPinCode
	}
	if err := validateSchedule(nh.StartsAt, nh.EndsAt); err != nil {
		return domain.Hackathon{}, err
	}

	created, err := s.repo.Create(ctx, domain.Hackathon{
		Title:       strings.TrimSpace(nh.Title),
		Description: nh.Description,
		Location:    nh.Location,
		StartsAt:    nh.StartsAt,
		EndsAt:      nh.EndsAt,
		PinCode:     nh.PinCode,
	})
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("hackathon created", zap.Uint("hackathon_id", created.ID), zap.String("by", identity.UserID))

	return created, nil
}

func (s *HackathonService) UpdateHackathon(ctx context.Context, identity domain.Identity, id uint, patch HackathonPatch) (domain.Hackathon, error) {
	if err := requireOrganiser(identity); err != nil {
		return domain.Hackathon{}, err
	}

	var updated domain.Hackathon
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		h, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		if patch.Title != nil {
			if strings.TrimSpace(*patch.Title) == "" {
				return errRequired("title")
			}
			h.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			h.Description = *patch.Description
		}
		if patch.Location != nil {
			h.Location = *patch.Location
		}
		if patch.StartsAt != nil {
			h.StartsAt = *patch.StartsAt
		}
		if patch.EndsAt != nil {
			h.EndsAt = *patch.EndsAt
		}
		if patch.PinCode != nil {
			if *patch.PinCode != "" && !validPinCode(*patch.PinCode) {
				return ErrInvalidPinCode
			}
			h.PinCode = *patch.PinCode
		}
		if err := validateSchedule(h.StartsAt, h.EndsAt); err != nil {
			return err
		}

		updated, err = s.repo.Update(ctx, h)
		if err != nil {
			return fmt.Errorf("s.repo.Update -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Hackathon{}, err
	}

	return updated, nil
}

func (s *HackathonService) StartHackathon(ctx context.Context, identity domain.Identity, id uint) (domain.Hackathon, error) {
	if err := requireOrganiser(identity); err != nil {
		return domain.Hackathon{}, err
	}

	var started domain.Hackathon
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		h, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("s.repo.FindByID -> %w", err)
		}
		if h.Started {
			started = h
			return nil
		}

		h.Started = true
		started, err = s.repo.Update(ctx, h)
		if err != nil {
			return fmt.Errorf("s.repo.Update -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Hackathon{}, err
	}

	return started, nil
}

func (s *HackathonService) GetHackathon(ctx context.Context, id uint) (domain.Hackathon, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return h, nil
}

func (s *HackathonService) ListHackathons(ctx context.Context) ([]domain.Hackathon, error) {
	hackathons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return hackathons, nil
}
