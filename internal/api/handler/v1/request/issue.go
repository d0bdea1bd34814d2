package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (req *CreateIssueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Required),
	)
}

func (req *CreateIssueRequest) ToNewIssue() service.NewIssue {
	return service.NewIssue{
		Title:       req.Title,
		Description: req.Description,
	}
}

type SetIssueStatusRequest struct {
	Status domain.IssueStatus `json:"status"`
}

func (req *SetIssueStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			domain.IssueOpen,
			domain.IssueInProgress,
			domain.IssueResolved,
		)),
	)
}
