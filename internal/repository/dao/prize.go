package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Prize struct {
	ID uint `gorm:"primaryKey"`

	HackathonID uint   `gorm:"not null;index"`
	SponsorID   *uint  `gorm:"index"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Value       string

	CreatedAt time.Time `gorm:"not null"`
}

type PrizeDAO struct {
	db *gorm.DB
}

func NewPrizeDAO(db *gorm.DB) *PrizeDAO {
	return &PrizeDAO{
		db: db,
	}
}

func (d *PrizeDAO) Insert(ctx context.Context, p Prize) (Prize, error) {
	if err := conn(ctx, d.db).Create(&p).Error; err != nil {
		return Prize{}, translate(err, ErrPrizeNotFound)
	}

	return p, nil
}

func (d *PrizeDAO) FindByID(ctx context.Context, id uint) (Prize, error) {
	var p Prize

	if err := conn(ctx, d.db).First(&p, id).Error; err != nil {
		return Prize{}, translate(err, ErrPrizeNotFound)
	}

	return p, nil
}

func (d *PrizeDAO) FindByHackathonID(ctx context.Context, hackathonID uint) ([]Prize, error) {
	var prizes []Prize

	err := conn(ctx, d.db).
		Where("hackathon_id = ?", hackathonID).
		Order("id ASC").
		Find(&prizes).Error
	if err != nil {
		return nil, err
	}

	return prizes, nil
}

func (d *PrizeDAO) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Delete(&Prize{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPrizeNotFound
	}

	return nil
}
