package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Submission struct {
	ID uint `gorm:"primaryKey"`

	TeamID           uint   `gorm:"not null;uniqueIndex"`
	Title            string `gorm:"not null"`
	Description      string `gorm:"type:text"`
	GithubLink       string `gorm:"not null"`
	PresentationLink string
	State            string `gorm:"not null;size:32"`

	Sponsors []Sponsor `gorm:"many2many:submission_sponsors"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

// Insert links the given sponsors without touching the sponsor rows themselves.
func (d *SubmissionDAO) Insert(ctx context.Context, s Submission) (Submission, error) {
	if err := conn(ctx, d.db).Omit("Sponsors.*").Create(&s).Error; err != nil {
		return Submission{}, translate(err, ErrSubmissionNotFound)
	}

	return d.FindByID(ctx, s.ID)
}

func (d *SubmissionDAO) Update(ctx context.Context, s Submission) (Submission, error) {
	db := conn(ctx, d.db)

	sponsors := s.Sponsors
	s.Sponsors = nil
	if err := db.Omit("Sponsors", "CreatedAt").Save(&s).Error; err != nil {
		return Submission{}, translate(err, ErrSubmissionNotFound)
	}

	if err := db.Model(&s).Omit("Sponsors.*").Association("Sponsors").Replace(sponsors); err != nil {
		return Submission{}, err
	}

	return d.FindByID(ctx, s.ID)
}

func (d *SubmissionDAO) Delete(ctx context.Context, id uint) error {
	db := conn(ctx, d.db)

	s := Submission{ID: id}
	if err := db.Model(&s).Association("Sponsors").Clear(); err != nil {
		return err
	}

	result := db.Delete(&Submission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

func (d *SubmissionDAO) FindByID(ctx context.Context, id uint) (Submission, error) {
	var s Submission

	if err := conn(ctx, d.db).Preload("Sponsors").First(&s, id).Error; err != nil {
		return Submission{}, translate(err, ErrSubmissionNotFound)
	}

	return s, nil
}

func (d *SubmissionDAO) FindByIDForUpdate(ctx context.Context, id uint) (Submission, error) {
	var locked Submission

	err := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&locked, id).Error
	if err != nil {
		return Submission{}, translate(err, ErrSubmissionNotFound)
	}

	return d.FindByID(ctx, id)
}

func (d *SubmissionDAO) FindByTeamID(ctx context.Context, teamID uint) (Submission, error) {
	var s Submission

	err := conn(ctx, d.db).
		Preload("Sponsors").
		Where("team_id = ?", teamID).
		First(&s).Error
	if err != nil {
		return Submission{}, translate(err, ErrSubmissionNotFound)
	}

	return s, nil
}

func (d *SubmissionDAO) FindByHackathonID(ctx context.Context, hackathonID uint) ([]Submission, error) {
	var subs []Submission

	err := conn(ctx, d.db).
		Preload("Sponsors").
		Joins("JOIN teams ON teams.id = submissions.team_id").
		Where("teams.hackathon_id = ?", hackathonID).
		Order("submissions.id ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}

	return subs, nil
}
