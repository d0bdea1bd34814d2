package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Issue struct {
	ID uint `gorm:"primaryKey"`

	HackathonID    uint   `gorm:"not null;index"`
	ReporterUserID string `gorm:"not null;size:191"`
	Title          string `gorm:"not null"`
	Description    string `gorm:"type:text"`
	Status         string `gorm:"not null;size:32"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type IssueDAO struct {
	db *gorm.DB
}

func NewIssueDAO(db *gorm.DB) *IssueDAO {
	return &IssueDAO{
		db: db,
	}
}

func (d *IssueDAO) Insert(ctx context.Context, issue Issue) (Issue, error) {
	if err := conn(ctx, d.db).Create(&issue).Error; err != nil {
		return Issue{}, translate(err, ErrIssueNotFound)
	}

	return issue, nil
}

func (d *IssueDAO) FindByID(ctx context.Context, id uint) (Issue, error) {
	var issue Issue

	if err := conn(ctx, d.db).First(&issue, id).Error; err != nil {
		return Issue{}, translate(err, ErrIssueNotFound)
	}

	return issue, nil
}

func (d *IssueDAO) FindByIDForUpdate(ctx context.Context, id uint) (Issue, error) {
	var issue Issue

	err := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&issue, id).Error
	if err != nil {
		return Issue{}, translate(err, ErrIssueNotFound)
	}

	return issue, nil
}

func (d *IssueDAO) FindByHackathonID(ctx context.Context, hackathonID uint) ([]Issue, error) {
	var issues []Issue

	err := conn(ctx, d.db).
		Where("hackathon_id = ?", hackathonID).
		Order("created_at DESC, id DESC").
		Find(&issues).Error
	if err != nil {
		return nil, err
	}

	return issues, nil
}

func (d *IssueDAO) UpdateStatus(ctx context.Context, id uint, status string) (Issue, error) {
	result := conn(ctx, d.db).Model(&Issue{ID: id}).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return Issue{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Issue{}, ErrIssueNotFound
	}

	return d.FindByID(ctx, id)
}
