package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hackforge/hackathon-api/internal/domain"
)

type IssueRepository interface {
	Create(ctx context.Context, issue domain.Issue) (domain.Issue, error)
	FindByID(ctx context.Context, id uint) (domain.Issue, error)
	FindByIDForUpdate(ctx context.Context, id uint) (domain.Issue, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Issue, error)
	UpdateStatus(ctx context.Context, id uint, status domain.IssueStatus) (domain.Issue, error)
}

type NewIssue struct {
	Title       string
	Description string
}

type IssueService struct {
	tx         Transactor
	repo       IssueRepository
	hackathons HackathonFinder
}

func NewIssueService(tx Transactor, repo IssueRepository, hackathons HackathonFinder) *IssueService {
	return &IssueService{
		tx:         tx,
		repo:       repo,
		hackathons: hackathons,
	}
}

func (s *IssueService) CreateIssue(ctx context.Context, hackathonID uint, reporter domain.Identity, ni NewIssue) (domain.Issue, error) {
	if strings.TrimSpace(ni.Title) == "" {
		return domain.Issue{}, errRequired("title")
	}
	if strings.TrimSpace(ni.Description) == "" {
		return domain.Issue{}, errRequired("description")
	}

	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return domain.Issue{}, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Issue{
		HackathonID:    hackathonID,
		ReporterUserID: reporter.UserID,
		Title:          strings.TrimSpace(ni.Title),
		Description:    strings.TrimSpace(ni.Description),
		Status:         domain.IssueOpen,
	})
	if err != nil {
		return domain.Issue{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// SetIssueStatus writes any known status regardless of the current one.
func (s *IssueService) SetIssueStatus(ctx context.Context, id uint, status domain.IssueStatus) (domain.Issue, error) {
	if !status.IsValid() {
		return domain.Issue{}, ErrInvalidStatus
	}

	return s.transition(ctx, id, func(domain.IssueStatus) (domain.IssueStatus, error) {
		return status, nil
	})
}

// AdvanceIssue follows open -> in_progress -> resolved.
func (s *IssueService) AdvanceIssue(ctx context.Context, id uint) (domain.Issue, error) {
	return s.transition(ctx, id, func(current domain.IssueStatus) (domain.IssueStatus, error) {
		next, ok := current.Next()
		if !ok {
			return current, ErrIssueResolved
		}
		return next, nil
	})
}

func (s *IssueService) ReopenIssue(ctx context.Context, id uint) (domain.Issue, error) {
	return s.transition(ctx, id, func(current domain.IssueStatus) (domain.IssueStatus, error) {
		if current != domain.IssueResolved {
			return current, ErrIssueNotResolved
		}
		return domain.IssueOpen, nil
	})
}

func (s *IssueService) transition(ctx context.Context, id uint, next func(domain.IssueStatus) (domain.IssueStatus, error)) (domain.Issue, error) {
	var updated domain.Issue

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		issue, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		status, err := next(issue.Status)
		if err != nil {
			return err
		}

		updated, err = s.repo.UpdateStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
		}

		zap.L().Debug("issue status changed",
			zap.Uint("issue_id", id),
			zap.String("from", string(issue.Status)),
			zap.String("to", string(status)),
		)

		return nil
	})
	if err != nil {
		return domain.Issue{}, err
	}

	return updated, nil
}

func (s *IssueService) GetIssue(ctx context.Context, id uint) (domain.Issue, error) {
	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return issue, nil
}

func (s *IssueService) ListIssues(ctx context.Context, hackathonID uint) ([]domain.Issue, error) {
	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return nil, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	issues, err := s.repo.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByHackathonID -> %w", err)
	}

	return issues, nil
}
