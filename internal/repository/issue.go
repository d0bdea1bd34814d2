package repository

import (
	"context"
	"fmt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
)

var ErrIssueNotFound = dao.ErrIssueNotFound

type IssueDAO interface {
	Insert(ctx context.Context, issue dao.Issue) (dao.Issue, error)
	FindByID(ctx context.Context, id uint) (dao.Issue, error)
	FindByIDForUpdate(ctx context.Context, id uint) (dao.Issue, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]dao.Issue, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Issue, error)
}

type IssueRepository struct {
	dao IssueDAO
}

func NewIssueRepository(dao IssueDAO) *IssueRepository {
	return &IssueRepository{
		dao: dao,
	}
}

func (r *IssueRepository) Create(ctx context.Context, issue domain.Issue) (domain.Issue, error) {
	created, err := r.dao.Insert(ctx, dao.Issue{
		HackathonID:    issue.HackathonID,
		ReporterUserID: issue.ReporterUserID,
		Title:          issue.Title,
		Description:    issue.Description,
		Status:         string(issue.Status),
	})
	if err != nil {
		return domain.Issue{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return issueDaoToDomain(created), nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id uint) (domain.Issue, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return issueDaoToDomain(found), nil
}

func (r *IssueRepository) FindByIDForUpdate(ctx context.Context, id uint) (domain.Issue, error) {
	found, err := r.dao.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("r.dao.FindByIDForUpdate -> %w", err)
	}

	return issueDaoToDomain(found), nil
}

func (r *IssueRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Issue, error) {
	found, err := r.dao.FindByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByHackathonID -> %w", err)
	}

	out := make([]domain.Issue, 0, len(found))
	for _, i := range found {
		out = append(out, issueDaoToDomain(i))
	}

	return out, nil
}

func (r *IssueRepository) UpdateStatus(ctx context.Context, id uint, status domain.IssueStatus) (domain.Issue, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.Issue{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return issueDaoToDomain(updated), nil
}

func issueDaoToDomain(i dao.Issue) domain.Issue {
	return domain.Issue{
		ID:             i.ID,
		HackathonID:    i.HackathonID,
		ReporterUserID: i.ReporterUserID,
		Title:          i.Title,
		Description:    i.Description,
		Status:         domain.IssueStatus(i.Status),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
