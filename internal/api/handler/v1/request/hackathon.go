package request

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hackforge/hackathon-api/internal/service"
)

var pinCodeExp = regexp.MustCompile(`^\d{4}$`)

type CreateHackathonRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	PinCode     string    `json:"pin_code"`
}

func (req *CreateHackathonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.PinCode, validation.Match(pinCodeExp)),
	)
}

func (req *CreateHackathonRequest) ToNewHackathon() service.NewHackathon {
	return service.NewHackathon{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		PinCode:     req.PinCode,
	}
}

type UpdateHackathonRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	PinCode     *string    `json:"pin_code"`
}

func (req *UpdateHackathonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(2, 120)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.PinCode, validation.Match(pinCodeExp)),
	)
}

func (req *UpdateHackathonRequest) ToPatch() service.HackathonPatch {
	return service.HackathonPatch{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		PinCode:     req.PinCode,
	}
}
