package repository

import (
	"context"
	"fmt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
)

var ErrSubmissionNotFound = dao.ErrSubmissionNotFound

type SubmissionDAO interface {
	Insert(ctx context.Context, s dao.Submission) (dao.Submission, error)
	Update(ctx context.Context, s dao.Submission) (dao.Submission, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (dao.Submission, error)
	FindByIDForUpdate(ctx context.Context, id uint) (dao.Submission, error)
	FindByTeamID(ctx context.Context, teamID uint) (dao.Submission, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]dao.Submission, error)
}

type SubmissionRepository struct {
	dao SubmissionDAO
}

func NewSubmissionRepository(dao SubmissionDAO) *SubmissionRepository {
	return &SubmissionRepository{
		dao: dao,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s domain.Submission) (domain.Submission, error) {
	created, err := r.dao.Insert(ctx, submissionDomainToDao(s))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return submissionDaoToDomain(created), nil
}

func (r *SubmissionRepository) Update(ctx context.Context, s domain.Submission) (domain.Submission, error) {
	updated, err := r.dao.Update(ctx, submissionDomainToDao(s))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return submissionDaoToDomain(updated), nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (domain.Submission, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return submissionDaoToDomain(found), nil
}

func (r *SubmissionRepository) FindByIDForUpdate(ctx context.Context, id uint) (domain.Submission, error) {
	found, err := r.dao.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.FindByIDForUpdate -> %w", err)
	}

	return submissionDaoToDomain(found), nil
}

func (r *SubmissionRepository) FindByTeamID(ctx context.Context, teamID uint) (domain.Submission, error) {
	found, err := r.dao.FindByTeamID(ctx, teamID)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.FindByTeamID -> %w", err)
	}

	return submissionDaoToDomain(found), nil
}

func (r *SubmissionRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Submission, error) {
	found, err := r.dao.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByHackathonID -> %w", err)
	}

	out := make([]domain.Submission, 0, len(found))
	for _, s := range found {
		out = append(out, submissionDaoToDomain(s))
	}

	return out, nil
}

// submissionDomainToDao links sponsors by id only.
func submissionDomainToDao(s domain.Submission) dao.Submission {
	sponsors := make([]dao.Sponsor, 0, len(s.SponsorIDs))
	for _, id := range s.SponsorIDs {
		sponsors = append(sponsors, dao.Sponsor{ID: id})
	}

	return dao.Submission{
		ID:               s.ID,
		TeamID:           s.TeamID,
		Title:            s.Title,
		Description:      s.Description,
		GithubLink:       s.GithubLink,
		PresentationLink: s.PresentationLink,
		State:            string(s.State),
		Sponsors:         sponsors,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func submissionDaoToDomain(s dao.Submission) domain.Submission {
	ids := make([]uint, 0, len(s.Sponsors))
	used := make([]domain.Sponsor, 0, len(s.Sponsors))
	for _, sp := range s.Sponsors {
		ids = append(ids, sp.ID)
		used = append(used, sponsorDaoToDomain(sp))
	}

	return domain.Submission{
		ID:               s.ID,
		TeamID:           s.TeamID,
		Title:            s.Title,
		Description:      s.Description,
		GithubLink:       s.GithubLink,
		PresentationLink: s.PresentationLink,
		State:            domain.SubmissionState(s.State),
		SponsorIDs:       ids,
		SponsorsUsed:     used,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
