package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s domain.Submission) (domain.Submission, error)
	Update(ctx context.Context, s domain.Submission) (domain.Submission, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (domain.Submission, error)
	FindByIDForUpdate(ctx context.Context, id uint) (domain.Submission, error)
	FindByTeamID(ctx context.Context, teamID uint) (domain.Submission, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Submission, error)
}

type TeamFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Team, error)
	FindByIDForUpdate(ctx context.Context, id uint) (domain.Team, error)
}

type SponsorResolver interface {
	FindByIDs(ctx context.Context, hackathonID uint, ids []uint) ([]domain.Sponsor, error)
}

type NewSubmission struct {
	Title            string
	Description      string
	GithubLink       string
	PresentationLink string
	SponsorIDs       []uint
}

// SubmissionPatch merges every non-nil field. State accepts any known value,
// backwards moves included; AdvanceSubmission is the guarded path.
type SubmissionPatch struct {
	Title            *string
	Description      *string
	GithubLink       *string
	PresentationLink *string
	State            *domain.SubmissionState
	SponsorIDs       *[]uint
}

type SubmissionService struct {
	tx         Transactor
	repo       SubmissionRepository
	teams      TeamFinder
	hackathons HackathonFinder
	sponsors   SponsorResolver
	notifier   LeaderboardNotifier
}

func NewSubmissionService(
	tx Transactor,
	repo SubmissionRepository,
	teams TeamFinder,
	hackathons HackathonFinder,
	sponsors SponsorResolver,
	notifier LeaderboardNotifier,
) *SubmissionService {
	return &SubmissionService{
		tx:         tx,
		repo:       repo,
		teams:      teams,
		hackathons: hackathons,
		sponsors:   sponsors,
		notifier:   notifierOrNoop(notifier),
	}
}

// resolveSponsors keeps the ids naming sponsors of the hackathon and drops
// the rest.
func (s *SubmissionService) resolveSponsors(ctx context.Context, hackathonID uint, ids []uint) ([]domain.Sponsor, []uint, error) {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	sponsors, err := s.sponsors.FindByIDs(ctx, hackathonID, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("s.sponsors.FindByIDs -> %w", err)
	}

	resolved := make([]uint, 0, len(sponsors))
	for _, sp := range sponsors {
		resolved = append(resolved, sp.ID)
	}

	return sponsors, resolved, nil
}

func (s *SubmissionService) CreateSubmission(ctx context.Context, teamID uint, ns NewSubmission) (domain.Submission, error) {
	if strings.TrimSpace(ns.Title) == "" {
		return domain.Submission{}, errRequired("title")
	}
	if strings.TrimSpace(ns.Description) == "" {
		return domain.Submission{}, errRequired("description")
	}
	if strings.TrimSpace(ns.GithubLink) == "" {
		return domain.Submission{}, errRequired("github_link")
	}

	var (
		created domain.Submission
		team    domain.Team
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		team, err = s.teams.FindByIDForUpdate(ctx, teamID)
		if err != nil {
			return fmt.Errorf("s.teams.FindByIDForUpdate -> %w", err)
		}

		_, err = s.repo.FindByTeamID(ctx, teamID)
		if err == nil {
			return ErrSubmissionExists
		}
		if !errors.Is(err, repository.ErrSubmissionNotFound) {
			return fmt.Errorf("s.repo.FindByTeamID -> %w", err)
		}

		sponsors, sponsorIDs, err := s.resolveSponsors(ctx, team.HackathonID, ns.SponsorIDs)
		if err != nil {
			return err
		}

		created, err = s.repo.Create(ctx, domain.Submission{
			TeamID:           teamID,
			Title:            strings.TrimSpace(ns.Title),
			Description:      strings.TrimSpace(ns.Description),
			GithubLink:       strings.TrimSpace(ns.GithubLink),
			PresentationLink: strings.TrimSpace(ns.PresentationLink),
			State:            domain.SubmissionDraft,
			SponsorIDs:       sponsorIDs,
			SponsorsUsed:     sponsors,
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrSubmissionExists
			}
			return fmt.Errorf("s.repo.Create -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Submission{}, err
	}

	s.notifier.Publish(team.HackathonID)

	return created, nil
}

func (s *SubmissionService) UpdateSubmission(ctx context.Context, id uint, patch SubmissionPatch) (domain.Submission, error) {
	if patch.State != nil && !patch.State.IsValid() {
		return domain.Submission{}, ErrInvalidState
	}

	var (
		updated domain.Submission
		team    domain.Team
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sub, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		team, err = s.teams.FindByID(ctx, sub.TeamID)
		if err != nil {
			return fmt.Errorf("s.teams.FindByID -> %w", err)
		}

		if err := mergeSubmission(&sub, patch); err != nil {
			return err
		}
		if patch.SponsorIDs != nil {
			sub.SponsorsUsed, sub.SponsorIDs, err = s.resolveSponsors(ctx, team.HackathonID, *patch.SponsorIDs)
			if err != nil {
				return err
			}
		}

		updated, err = s.repo.Update(ctx, sub)
		if err != nil {
			return fmt.Errorf("s.repo.Update -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Submission{}, err
	}

	s.notifier.Publish(team.HackathonID)

	return updated, nil
}

func mergeSubmission(sub *domain.Submission, patch SubmissionPatch) error {
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return errRequired("title")
		}
		sub.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return errRequired("description")
		}
		sub.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.GithubLink != nil {
		if strings.TrimSpace(*patch.GithubLink) == "" {
			return errRequired("github_link")
		}
		sub.GithubLink = strings.TrimSpace(*patch.GithubLink)
	}
	if patch.PresentationLink != nil {
		sub.PresentationLink = strings.TrimSpace(*patch.PresentationLink)
	}
	if patch.State != nil {
		sub.State = *patch.State
	}

	return nil
}

func (s *SubmissionService) DeleteSubmission(ctx context.Context, id uint) error {
	var team domain.Team

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sub, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		team, err = s.teams.FindByID(ctx, sub.TeamID)
		if err != nil {
			return fmt.Errorf("s.teams.FindByID -> %w", err)
		}

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("s.repo.Delete -> %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Publish(team.HackathonID)

	return nil
}

// AdvanceSubmission moves DRAFT to READY_TO_DEMO and READY_TO_DEMO to
// PRESENTED. A presented submission cannot advance.
func (s *SubmissionService) AdvanceSubmission(ctx context.Context, id uint) (domain.Submission, error) {
	var (
		advanced domain.Submission
		team     domain.Team
		from     domain.SubmissionState
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sub, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		next, ok := sub.State.Next()
		if !ok {
			return ErrSubmissionFinal
		}
		from = sub.State
		sub.State = next

		team, err = s.teams.FindByID(ctx, sub.TeamID)
		if err != nil {
			return fmt.Errorf("s.teams.FindByID -> %w", err)
		}

		advanced, err = s.repo.Update(ctx, sub)
		if err != nil {
			return fmt.Errorf("s.repo.Update -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Submission{}, err
	}

	zap.L().Debug("submission advanced",
		zap.Uint("submission_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(advanced.State)),
	)
	s.notifier.Publish(team.HackathonID)

	return advanced, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id uint) (domain.Submission, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sub, nil
}

func (s *SubmissionService) GetTeamSubmission(ctx context.Context, teamID uint) (domain.Submission, error) {
	if _, err := s.teams.FindByID(ctx, teamID); err != nil {
		return domain.Submission{}, fmt.Errorf("s.teams.FindByID -> %w", err)
	}

	sub, err := s.repo.FindByTeamID(ctx, teamID)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("s.repo.FindByTeamID -> %w", err)
	}

	return sub, nil
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, hackathonID uint) ([]domain.Submission, error) {
	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return nil, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	subs, err := s.repo.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByHackathonID -> %w", err)
	}

	return subs, nil
}
