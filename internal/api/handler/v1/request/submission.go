package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

var submissionStates = []interface{}{
	domain.SubmissionDraft,
	domain.SubmissionReadyToDemo,
	domain.SubmissionPresented,
}

type CreateSubmissionRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	GithubLink       string `json:"github_link"`
	PresentationLink string `json:"presentation_link,omitempty"`
	SponsorIDs       []uint `json:"sponsor_ids"`
}

func (req *CreateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.GithubLink, validation.Required, is.URL),
		validation.Field(&req.PresentationLink, is.URL),
	)
}

func (req *CreateSubmissionRequest) ToNewSubmission() service.NewSubmission {
	return service.NewSubmission{
		Title:            req.Title,
		Description:      req.Description,
		GithubLink:       req.GithubLink,
		PresentationLink: req.PresentationLink,
		SponsorIDs:       req.SponsorIDs,
	}
}

// UpdateSubmissionRequest is a partial update. State accepts any known value.
type UpdateSubmissionRequest struct {
	Title            *string                 `json:"title"`
	Description      *string                 `json:"description"`
	GithubLink       *string                 `json:"github_link"`
	PresentationLink *string                 `json:"presentation_link"`
	State            *domain.SubmissionState `json:"state"`
	SponsorIDs       *[]uint                 `json:"sponsor_ids"`
}

func (req *UpdateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&req.Description, validation.NilOrNotEmpty),
		validation.Field(&req.GithubLink, validation.NilOrNotEmpty, is.URL),
		validation.Field(&req.PresentationLink, is.URL),
		validation.Field(&req.State, validation.NilOrNotEmpty, validation.In(submissionStates...)),
	)
}

func (req *UpdateSubmissionRequest) ToPatch() service.SubmissionPatch {
	return service.SubmissionPatch{
		Title:            req.Title,
		Description:      req.Description,
		GithubLink:       req.GithubLink,
		PresentationLink: req.PresentationLink,
		State:            req.State,
		SponsorIDs:       req.SponsorIDs,
	}
}
