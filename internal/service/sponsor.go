package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository"
	"github.com/hackforge/hackathon-api/internal/storage"
)

type SponsorRepository interface {
	Create(ctx context.Context, s domain.Sponsor) (domain.Sponsor, error)
	UpdateLogo(ctx context.Context, id uint, logoURL string) error
	FindByID(ctx context.Context, id uint) (domain.Sponsor, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Sponsor, error)
	CreateInvite(ctx context.Context, invite domain.SponsorInvite) (domain.SponsorInvite, error)
}

type PrizeLister interface {
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Prize, error)
}

type NewSponsor struct {
	Name        string
	Description string
	Website     string
}

type SponsorService struct {
	repo        SponsorRepository
	hackathons  HackathonFinder
	teams       TeamLister
	submissions SubmissionLister
	prizes      PrizeLister
	uploader    storage.FileUploader
}

// NewSponsorService accepts a nil uploader, in which case logo uploads are
// rejected.
func NewSponsorService(
	repo SponsorRepository,
	hackathons HackathonFinder,
	teams TeamLister,
	submissions SubmissionLister,
	prizes PrizeLister,
	uploader storage.FileUploader,
) *SponsorService {
	return &SponsorService{
		repo:        repo,
		hackathons:  hackathons,
		teams:       teams,
		submissions: submissions,
		prizes:      prizes,
		uploader:    uploader,
	}
}

func (s *SponsorService) CreateSponsor(ctx context.Context, identity domain.Identity, hackathonID uint, ns NewSponsor) (domain.Sponsor, error) {
	if err := requireOrganiser(identity); err != nil {
		return domain.Sponsor{}, err
	}
	if strings.TrimSpace(ns.Name) == "" {
		return domain.Sponsor{}, errRequired("name")
	}

	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Sponsor{
		HackathonID: hackathonID,
		Name:        strings.TrimSpace(ns.Name),
		Description: ns.Description,
		Website:     ns.Website,
	})
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SponsorService) GetSponsor(ctx context.Context, id uint) (domain.Sponsor, error) {
	sponsor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sponsor, nil
}

func (s *SponsorService) ListSponsors(ctx context.Context, hackathonID uint) ([]domain.Sponsor, error) {
	if _, err := s.hackathons.FindByID(ctx, hackathonID); err != nil {
		return nil, fmt.Errorf("s.hackathons.FindByID -> %w", err)
	}

	sponsors, err := s.repo.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByHackathonID -> %w", err)
	}

	return sponsors, nil
}

// InviteEmployee records an invite. The matching user becomes a sponsor
// employee the next time they are synced. No email is sent.
func (s *SponsorService) InviteEmployee(ctx context.Context, identity domain.Identity, sponsorID uint, email string) (domain.SponsorInvite, error) {
	if err := requireOrganiser(identity); err != nil {
		return domain.SponsorInvite{}, err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.SponsorInvite{}, errRequired("email")
	}

	if _, err := s.repo.FindByID(ctx, sponsorID); err != nil {
		return domain.SponsorInvite{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	invite, err := s.repo.CreateInvite(ctx, domain.SponsorInvite{
		SponsorID: sponsorID,
		Email:     strings.ToLower(email),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.SponsorInvite{}, ErrInviteExists
		}
		return domain.SponsorInvite{}, fmt.Errorf("s.repo.CreateInvite -> %w", err)
	}

	zap.L().Info("sponsor invite recorded", zap.Uint("sponsor_id", sponsorID), zap.Uint("invite_id", invite.ID))

	return invite, nil
}

func (s *SponsorService) UploadLogo(ctx context.Context, identity domain.Identity, sponsorID uint, filename, contentType string, body io.Reader) (domain.Sponsor, error) {
	if s.uploader == nil {
		return domain.Sponsor{}, ErrStorageDisabled
	}
	if err := requireOrganiser(identity); err != nil {
		return domain.Sponsor{}, err
	}

	if _, err := s.repo.FindByID(ctx, sponsorID); err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	key := fmt.Sprintf("sponsors/%d/logo%s", sponsorID, strings.ToLower(path.Ext(filename)))
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.uploader.Upload -> %w", err)
	}

	if err := s.repo.UpdateLogo(ctx, sponsorID, result.Location); err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.UpdateLogo -> %w", err)
	}

	return s.GetSponsor(ctx, sponsorID)
}

type hackathonSnapshot struct {
	submissions []domain.Submission
	teams       []domain.Team
	prizes      []domain.Prize
}

func (s *SponsorService) loadSnapshot(ctx context.Context, hackathonID uint) (hackathonSnapshot, error) {
	var snap hackathonSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.submissions, err = s.submissions.FindByHackathonID(gctx, hackathonID)
		if err != nil {
			return fmt.Errorf("s.submissions.FindByHackathonID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.teams, err = s.teams.FindByHackathonID(gctx, hackathonID)
		if err != nil {
			return fmt.Errorf("s.teams.FindByHackathonID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.prizes, err = s.prizes.FindByHackathonID(gctx, hackathonID)
		if err != nil {
			return fmt.Errorf("s.prizes.FindByHackathonID -> %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return hackathonSnapshot{}, err
	}

	return snap, nil
}

func (s *SponsorService) Adoption(ctx context.Context, sponsorID uint) (domain.SponsorAdoption, error) {
	sponsor, err := s.repo.FindByID(ctx, sponsorID)
	if err != nil {
		return domain.SponsorAdoption{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	snap, err := s.loadSnapshot(ctx, sponsor.HackathonID)
	if err != nil {
		return domain.SponsorAdoption{}, err
	}

	return domain.ComputeAdoption(sponsor, snap.submissions, snap.teams, snap.prizes), nil
}

// HackathonAdoption computes adoption for every sponsor of the hackathon.
func (s *SponsorService) HackathonAdoption(ctx context.Context, hackathonID uint) ([]domain.SponsorAdoption, error) {
	sponsors, err := s.ListSponsors(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SponsorAdoption, 0, len(sponsors))
	for _, sp := range sponsors {
		out = append(out, domain.ComputeAdoption(sp, snap.submissions, snap.teams, snap.prizes))
	}

	return out, nil
}
