package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository"
)

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) (domain.Team, error)
	Update(ctx context.Context, team domain.Team) (domain.Team, error)
	FindByID(ctx context.Context, id uint) (domain.Team, error)
	FindByIDForUpdate(ctx context.Context, id uint) (domain.Team, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Team, error)
	FindByMember(ctx context.Context, hackathonID uint, userID, email string) (domain.Team, error)
	AddMember(ctx context.Context, team domain.Team, userID string) error
	RemoveMember(ctx context.Context, teamID uint, userID string) error
}

type UserSyncer interface {
	Sync(ctx context.Context, identity domain.Identity) (domain.User, error)
}

type SubmissionLister interface {
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Submission, error)
}

type NewTeam struct {
	Name        string
	Description string
	JoinCode    string
}

type TeamPatch struct {
	Name        *string
	Description *string
}

type TeamService struct {
	tx          Transactor
	repo        TeamRepository
	hackathons  HackathonFinder
	users       UserSyncer
	submissions SubmissionLister
	notifier    LeaderboardNotifier
	fuzz        func() float64
}

func NewTeamService(
	tx Transactor,
	repo TeamRepository,
	hackathons HackathonFinder,
	users UserSyncer,
	submissions SubmissionLister,
	notifier LeaderboardNotifier,
) *TeamService {
	return &TeamService{
		tx:          tx,
		repo:        repo,
		hackathons:  hackathons,
		users:       users,
		submissions: submissions,
		notifier:    notifierOrNoop(notifier),
		fuzz:        rand.Float64,
	}
}

// CreateTeam registers an empty team led by creator. The creator still has
// to join explicitly.
func (s *TeamService) CreateTeam(ctx context.Context, hackathonID uint, creator domain.Identity, nt NewTeam) (domain.Team, error) {
	name := strings.TrimSpace(nt.Name)
	description := strings.TrimSpace(nt.Description)
	if name == "" {
		return domain.Team{}, errRequired("name")
	}
	if description == "" {
		return domain.Team{}, errRequired("description")
	}

	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return domain.Team{}, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	team := domain.Team{
		HackathonID: hackathonID,
		Name:        name,
		Description: description,
		LeaderID:    creator.UserID,
	}
	if nt.JoinCode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(nt.JoinCode), bcrypt.DefaultCost)
		if err != nil {
			return domain.Team{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}
		team.JoinCodeHash = string(hash)
	}

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.notifier.Publish(hackathonID)

	return created, nil
}

// JoinTeam adds the caller to the team. Checks run in order: team exists,
// team has room, caller has no team in the hackathon yet, join code matches.
func (s *TeamService) JoinTeam(ctx context.Context, teamID uint, identity domain.Identity, joinCode string) (domain.Team, error) {
	var joined domain.Team

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := s.repo.FindByIDForUpdate(ctx, teamID)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		if team.IsFull() {
			return ErrTeamFull
		}

		_, err = s.repo.FindByMember(ctx, team.HackathonID, identity.UserID, "")
		if err == nil {
			return ErrAlreadyInTeam
		}
		if !errors.Is(err, repository.ErrTeamNotFound) {
			return fmt.Errorf("s.repo.FindByMember -> %w", err)
		}

		if team.HasJoinCode() {
			if err := bcrypt.CompareHashAndPassword([]byte(team.JoinCodeHash), []byte(joinCode)); err != nil {
				return ErrInvalidJoinCode
			}
		}

		user, err := s.users.Sync(ctx, identity)
		if err != nil {
			return fmt.Errorf("s.users.Sync -> %w", err)
		}

		if err := s.repo.AddMember(ctx, team, user.ID); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrAlreadyInTeam
			}
			return fmt.Errorf("s.repo.AddMember -> %w", err)
		}

		joined, err = s.repo.FindByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Team{}, err
	}

	zap.L().Debug("user joined team",
		zap.Uint("team_id", joined.ID),
		zap.String("user_id", identity.UserID),
		zap.Int("members", len(joined.Members)),
	)
	s.notifier.Publish(joined.HackathonID)

	return joined, nil
}

// LeaveTeam removes the member. Teams left empty are kept.
func (s *TeamService) LeaveTeam(ctx context.Context, teamID uint, userID string) (domain.Team, error) {
	var left domain.Team

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := s.repo.FindByIDForUpdate(ctx, teamID)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		if !team.HasMember(userID, "") {
			return ErrNotMember
		}

		if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return ErrNotMember
			}
			return fmt.Errorf("s.repo.RemoveMember -> %w", err)
		}

		left, err = s.repo.FindByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Team{}, err
	}

	zap.L().Debug("user left team", zap.Uint("team_id", teamID), zap.String("user_id", userID))
	s.notifier.Publish(left.HackathonID)

	return left, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID uint, identity domain.Identity, patch TeamPatch) (domain.Team, error) {
	var updated domain.Team

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := s.repo.FindByIDForUpdate(ctx, teamID)
		if err != nil {
			return fmt.Errorf("s.repo.FindByIDForUpdate -> %w", err)
		}

		if team.LeaderID != identity.UserID && !team.HasMember(identity.UserID, "") {
			return ErrNotTeamMember
		}

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return errRequired("name")
			}
			team.Name = name
		}
		if patch.Description != nil {
			description := strings.TrimSpace(*patch.Description)
			if description == "" {
				return errRequired("description")
			}
			team.Description = description
		}

		updated, err = s.repo.Update(ctx, team)
		if err != nil {
			return fmt.Errorf("s.repo.Update -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Team{}, err
	}

	s.notifier.Publish(updated.HackathonID)

	return updated, nil
}

// FindUserTeam returns the team holding a member with the given id or email.
func (s *TeamService) FindUserTeam(ctx context.Context, hackathonID uint, userID, email string) (domain.Team, error) {
	team, err := s.repo.FindByMember(ctx, hackathonID, userID, email)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.FindByMember -> %w", err)
	}

	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id uint) (domain.Team, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context, hackathonID uint) ([]domain.Team, error) {
	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return nil, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	teams, err := s.repo.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByHackathonID -> %w", err)
	}

	return teams, nil
}

// RecommendTeams suggests open teams for userID, best match first. The
// ordering carries random fuzz and is not a ranking.
func (s *TeamService) RecommendTeams(ctx context.Context, hackathonID uint, userID string) ([]domain.TeamMatch, error) {
	teams, err := s.ListTeams(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	subs, err := s.submissions.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.submissions.FindByHackathonID -> %w", err)
	}
	byTeam := make(map[uint]*domain.Submission, len(subs))
	for i := range subs {
		byTeam[subs[i].TeamID] = &subs[i]
	}

	matches := make([]domain.TeamMatch, 0, len(teams))
	for _, t := range teams {
		if t.IsFull() || t.HasMember(userID, "") {
			continue
		}
		matches = append(matches, domain.TeamMatch{
			Team:       t,
			MatchScore: domain.MatchScore(t, byTeam[t.ID], s.fuzz()),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return matches, nil
}
