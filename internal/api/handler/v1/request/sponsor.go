package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/hackforge/hackathon-api/internal/service"
)

type CreateSponsorRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
}

func (req *CreateSponsorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Website, is.URL),
	)
}

func (req *CreateSponsorRequest) ToNewSponsor() service.NewSponsor {
	return service.NewSponsor{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	}
}

type InviteEmployeeRequest struct {
	Email string `json:"email"`
}

func (req *InviteEmployeeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type CreatePrizeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value"`
	SponsorID   *uint  `json:"sponsor_id,omitempty"`
}

func (req *CreatePrizeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Value, validation.Length(0, 200)),
		validation.Field(&req.SponsorID, validation.NilOrNotEmpty),
	)
}

func (req *CreatePrizeRequest) ToNewPrize() service.NewPrize {
	return service.NewPrize{
		Title:       req.Title,
		Description: req.Description,
		Value:       req.Value,
		SponsorID:   req.SponsorID,
	}
}
