package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hackforge/hackathon-api/internal/domain"
)

type TeamLister interface {
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Team, error)
}

type LeaderboardService struct {
	hackathons  HackathonFinder
	teams       TeamLister
	submissions SubmissionLister
}

func NewLeaderboardService(hackathons HackathonFinder, teams TeamLister, submissions SubmissionLister) *LeaderboardService {
	return &LeaderboardService{
		hackathons:  hackathons,
		teams:       teams,
		submissions: submissions,
	}
}

// Leaderboard ranks every team of the hackathon by its deterministic score.
func (s *LeaderboardService) Leaderboard(ctx context.Context, hackathonID uint) ([]domain.LeaderboardEntry, error) {
	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return nil, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	var (
		teams []domain.Team
		subs  []domain.Submission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teams.FindByHackathonID(gctx, hackathonID)
		if err != nil {
			return fmt.Errorf("s.teams.FindByHackathonID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		subs, err = s.submissions.FindByHackathonID(gctx, hackathonID)
		if err != nil {
			return fmt.Errorf("s.submissions.FindByHackathonID -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.BuildLeaderboard(teams, subs), nil
}
