package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Hackathon struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	PinCode     string `gorm:"size:4"`
	Started     bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type HackathonDAO struct {
	db *gorm.DB
}

func NewHackathonDAO(db *gorm.DB) *HackathonDAO {
	return &HackathonDAO{
		db: db,
	}
}

func (d *HackathonDAO) Insert(ctx context.Context, h Hackathon) (Hackathon, error) {
	if err := conn(ctx, d.db).Create(&h).Error; err != nil {
		return Hackathon{}, translate(err, ErrHackathonNotFound)
	}

	return h, nil
}

func (d *HackathonDAO) Update(ctx context.Context, h Hackathon) (Hackathon, error) {
	if err := conn(ctx, d.db).Save(&h).Error; err != nil {
		return Hackathon{}, translate(err, ErrHackathonNotFound)
	}

	return h, nil
}

func (d *HackathonDAO) FindByID(ctx context.Context, id uint) (Hackathon, error) {
	var h Hackathon

	if err := conn(ctx, d.db).First(&h, id).Error; err != nil {
		return Hackathon{}, translate(err, ErrHackathonNotFound)
	}

	return h, nil
}

func (d *HackathonDAO) FindAll(ctx context.Context) ([]Hackathon, error) {
	var hackathons []Hackathon

	if err := conn(ctx, d.db).Order("starts_at DESC, id DESC").Find(&hackathons).Error; err != nil {
		return nil, err
	}

	return hackathons, nil
}
