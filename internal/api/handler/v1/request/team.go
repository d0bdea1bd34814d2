package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hackforge/hackathon-api/internal/service"
)

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	JoinCode    string `json:"join_code,omitempty"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 80)),
		validation.Field(&req.Description, validation.Required, validation.Length(1, 1000)),
		validation.Field(&req.JoinCode, validation.Length(4, 64)),
	)
}

func (req *CreateTeamRequest) ToNewTeam() service.NewTeam {
	return service.NewTeam{
		Name:        req.Name,
		Description: req.Description,
		JoinCode:    req.JoinCode,
	}
}

type JoinTeamRequest struct {
	JoinCode string `json:"join_code,omitempty"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (req *UpdateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 80)),
		validation.Field(&req.Description, validation.NilOrNotEmpty, validation.Length(1, 1000)),
	)
}

func (req *UpdateTeamRequest) ToPatch() service.TeamPatch {
	return service.TeamPatch{
		Name:        req.Name,
		Description: req.Description,
	}
}
