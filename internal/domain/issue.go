package domain

import "time"

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
)

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueOpen, IssueInProgress, IssueResolved:
		return true
	}
	return false
}

// Next follows open -> in_progress -> resolved.
func (s IssueStatus) Next() (IssueStatus, bool) {
	switch s {
	case IssueOpen:
		return IssueInProgress, true
	case IssueInProgress:
		return IssueResolved, true
	}
	return s, false
}

type Issue struct {
	ID             uint        `json:"id"`
	HackathonID    uint        `json:"hackathon_id"`
	ReporterUserID string      `json:"reporter_user_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Status         IssueStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
