package domain

import "time"

type SubmissionState string

const (
	SubmissionDraft       SubmissionState = "DRAFT"
	SubmissionReadyToDemo SubmissionState = "READY_TO_DEMO"
	SubmissionPresented   SubmissionState = "PRESENTED"
)

func (s SubmissionState) IsValid() bool {
	switch s {
	case SubmissionDraft, SubmissionReadyToDemo, SubmissionPresented:
		return true
	}
	return false
}

// Next returns the state reached by the guided transition, false once presented.
func (s SubmissionState) Next() (SubmissionState, bool) {
	switch s {
	case SubmissionDraft:
		return SubmissionReadyToDemo, true
	case SubmissionReadyToDemo:
		return SubmissionPresented, true
	}
	return s, false
}

type Submission struct {
	ID               uint            `json:"id"`
	TeamID           uint            `json:"team_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	GithubLink       string          `json:"github_link"`
	PresentationLink string          `json:"presentation_link,omitempty"`
	State            SubmissionState `json:"state"`
	SponsorIDs       []uint          `json:"sponsor_ids"`
	SponsorsUsed     []Sponsor       `json:"sponsors_used"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (s Submission) UsesSponsor(sponsorID uint) bool {
	for _, id := range s.SponsorIDs {
		if id == sponsorID {
			return true
		}
	}
	return false
}

// DistinctSponsorCount ignores duplicated ids.
func (s Submission) DistinctSponsorCount() int {
	seen := make(map[uint]struct{}, len(s.SponsorIDs))
	for _, id := range s.SponsorIDs {
		seen[id] = struct{}{}
	}
	return len(seen)
}
