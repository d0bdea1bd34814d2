package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Team struct {
	ID uint `gorm:"primaryKey"`

	HackathonID  uint   `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	LeaderID     string `gorm:"size:191"`
	JoinCodeHash string

	Members []TeamMember `gorm:"foreignKey:TeamID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TeamMember is the membership row. The unique (hackathon_id, user_id) pair
// keeps a user in at most one team per hackathon.
type TeamMember struct {
	ID uint `gorm:"primaryKey"`

	TeamID      uint   `gorm:"not null;index"`
	HackathonID uint   `gorm:"not null;uniqueIndex:idx_team_members_hackathon_user"`
	UserID      string `gorm:"not null;size:191;uniqueIndex:idx_team_members_hackathon_user"`
	User        User   `gorm:"foreignKey:UserID"`

	JoinedAt time.Time `gorm:"not null"`
}

type TeamDAO struct {
	db *gorm.DB
}

func NewTeamDAO(db *gorm.DB) *TeamDAO {
	return &TeamDAO{
		db: db,
	}
}

func preloadMembers(db *gorm.DB) *gorm.DB {
	return db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("team_members.id ASC")
	}).Preload("Members.User")
}

func (d *TeamDAO) Insert(ctx context.Context, team Team) (Team, error) {
	if err := conn(ctx, d.db).Omit("Members").Create(&team).Error; err != nil {
		return Team{}, translate(err, ErrTeamNotFound)
	}

	return team, nil
}

func (d *TeamDAO) Update(ctx context.Context, team Team) (Team, error) {
	result := conn(ctx, d.db).Model(&Team{ID: team.ID}).
		Select("name", "description", "updated_at").
		Updates(map[string]interface{}{
			"name":        team.Name,
			"description": team.Description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return Team{}, translate(result.Error, ErrTeamNotFound)
	}
	if result.RowsAffected == 0 {
		return Team{}, ErrTeamNotFound
	}

	return d.FindByID(ctx, team.ID)
}

func (d *TeamDAO) Touch(ctx context.Context, id uint) error {
	return conn(ctx, d.db).Model(&Team{ID: id}).Update("updated_at", time.Now()).Error
}

func (d *TeamDAO) FindByID(ctx context.Context, id uint) (Team, error) {
	var team Team

	if err := preloadMembers(conn(ctx, d.db)).First(&team, id).Error; err != nil {
		return Team{}, translate(err, ErrTeamNotFound)
	}

	return team, nil
}

// FindByIDForUpdate locks the team row until the surrounding transaction ends.
func (d *TeamDAO) FindByIDForUpdate(ctx context.Context, id uint) (Team, error) {
	var locked Team

	err := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&locked, id).Error
	if err != nil {
		return Team{}, translate(err, ErrTeamNotFound)
	}

	return d.FindByID(ctx, id)
}

func (d *TeamDAO) FindByHackathonID(ctx context.Context, hackathonID uint) ([]Team, error) {
	var teams []Team

	err := preloadMembers(conn(ctx, d.db)).
		Where("hackathon_id = ?", hackathonID).
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}

// FindByMember returns the team of the hackathon holding a member with the
// given user id or email.
func (d *TeamDAO) FindByMember(ctx context.Context, hackathonID uint, userID, email string) (Team, error) {
	var member TeamMember

	q := conn(ctx, d.db).
		Joins("JOIN users ON users.id = team_members.user_id").
		Where("team_members.hackathon_id = ?", hackathonID)
	if email != "" {
		q = q.Where("team_members.user_id = ? OR users.email = ?", userID, email)
	} else {
		q = q.Where("team_members.user_id = ?", userID)
	}

	if err := q.Order("team_members.id ASC").First(&member).Error; err != nil {
		return Team{}, translate(err, ErrTeamNotFound)
	}

	return d.FindByID(ctx, member.TeamID)
}

func (d *TeamDAO) AddMember(ctx context.Context, member TeamMember) (TeamMember, error) {
	if err := conn(ctx, d.db).Omit("User").Create(&member).Error; err != nil {
		return TeamMember{}, translate(err, ErrMemberNotFound)
	}

	return member, nil
}

func (d *TeamDAO) RemoveMember(ctx context.Context, teamID uint, userID string) error {
	result := conn(ctx, d.db).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
