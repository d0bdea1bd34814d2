package domain

import "time"

const MaxTeamSize = 4

type Team struct {
	ID           uint      `json:"id"`
	HackathonID  uint      `json:"hackathon_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LeaderID     string    `json:"leader_id"`
	JoinCodeHash string    `json:"-"`
	Members      []User    `json:"members"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t Team) IsFull() bool {
	return len(t.Members) >= MaxTeamSize
}

func (t Team) HasJoinCode() bool {
	return t.JoinCodeHash != ""
}

// HasMember matches on user id, or on email when one is given.
func (t Team) HasMember(userID, email string) bool {
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
		if email != "" && m.Email == email {
			return true
		}
	}
	return false
}
