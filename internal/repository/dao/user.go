package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"primaryKey;size:191"`

	FirstName string
	LastName  string
	Email     string `gorm:"index;size:191"`
	Role      string `gorm:"not null;size:32"`
	CompanyID *uint  `gorm:"index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	if err := conn(ctx, d.db).Create(&user).Error; err != nil {
		return User{}, translate(err, ErrUserNotFound)
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	if err := conn(ctx, d.db).Save(&user).Error; err != nil {
		return User{}, translate(err, ErrUserNotFound)
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	var user User

	if err := conn(ctx, d.db).Where("id = ?", id).First(&user).Error; err != nil {
		return User{}, translate(err, ErrUserNotFound)
	}

	return user, nil
}
