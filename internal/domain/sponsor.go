package domain

import "time"

type Sponsor struct {
	ID          uint      `json:"id"`
	HackathonID uint      `json:"hackathon_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Website     string    `json:"website,omitempty"`
	Employees   []User    `json:"employees,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SponsorInvite marks an email that becomes a sponsor employee on first sync.
type SponsorInvite struct {
	ID        uint      `json:"id"`
	SponsorID uint      `json:"sponsor_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Prize struct {
	ID          uint      `json:"id"`
	HackathonID uint      `json:"hackathon_id"`
	SponsorID   *uint     `json:"sponsor_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p Prize) IsGeneral() bool {
	return p.SponsorID == nil
}
