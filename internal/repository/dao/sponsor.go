package dao

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Sponsor struct {
	ID uint `gorm:"primaryKey"`

	HackathonID uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	LogoURL     string
	Website     string

	Employees []User `gorm:"foreignKey:CompanyID"`

	CreatedAt time.Time `gorm:"not null"`
}

type SponsorInvite struct {
	ID uint `gorm:"primaryKey"`

	SponsorID uint   `gorm:"not null;index"`
	Email     string `gorm:"not null;size:191;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
}

type SponsorDAO struct {
	db *gorm.DB
}

func NewSponsorDAO(db *gorm.DB) *SponsorDAO {
	return &SponsorDAO{
		db: db,
	}
}

func (d *SponsorDAO) Insert(ctx context.Context, s Sponsor) (Sponsor, error) {
	if err := conn(ctx, d.db).Omit("Employees").Create(&s).Error; err != nil {
		return Sponsor{}, translate(err, ErrSponsorNotFound)
	}

	return s, nil
}

func (d *SponsorDAO) UpdateLogo(ctx context.Context, id uint, logoURL string) error {
	result := conn(ctx, d.db).Model(&Sponsor{ID: id}).Update("logo_url", logoURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSponsorNotFound
	}

	return nil
}

func (d *SponsorDAO) FindByID(ctx context.Context, id uint) (Sponsor, error) {
	var s Sponsor

	if err := conn(ctx, d.db).Preload("Employees").First(&s, id).Error; err != nil {
		return Sponsor{}, translate(err, ErrSponsorNotFound)
	}

	return s, nil
}

func (d *SponsorDAO) FindByHackathonID(ctx context.Context, hackathonID uint) ([]Sponsor, error) {
	var sponsors []Sponsor

	err := conn(ctx, d.db).
		Preload("Employees").
		Where("hackathon_id = ?", hackathonID).
		Order("id ASC").
		Find(&sponsors).Error
	if err != nil {
		return nil, err
	}

	return sponsors, nil
}

// FindByIDs returns the sponsors of the hackathon among ids. Unknown ids are
// silently skipped.
func (d *SponsorDAO) FindByIDs(ctx context.Context, hackathonID uint, ids []uint) ([]Sponsor, error) {
	if len(ids) == 0 {
		return []Sponsor{}, nil
	}

	var sponsors []Sponsor

	err := conn(ctx, d.db).
		Where("hackathon_id = ? AND id IN ?", hackathonID, ids).
		Order("id ASC").
		Find(&sponsors).Error
	if err != nil {
		return nil, err
	}

	return sponsors, nil
}

func (d *SponsorDAO) InsertInvite(ctx context.Context, invite SponsorInvite) (SponsorInvite, error) {
	invite.Email = strings.ToLower(invite.Email)
	if err := conn(ctx, d.db).Create(&invite).Error; err != nil {
		return SponsorInvite{}, translate(err, ErrInviteNotFound)
	}

	return invite, nil
}

func (d *SponsorDAO) FindInviteByEmail(ctx context.Context, email string) (SponsorInvite, error) {
	var invite SponsorInvite

	err := conn(ctx, d.db).
		Where("email = ?", strings.ToLower(email)).
		First(&invite).Error
	if err != nil {
		return SponsorInvite{}, translate(err, ErrInviteNotFound)
	}

	return invite, nil
}

func (d *SponsorDAO) DeleteInvite(ctx context.Context, id uint) error {
	return conn(ctx, d.db).Delete(&SponsorInvite{}, id).Error
}
