package v1

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/request"
	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

const maxLogoSize = 2 << 20

type SponsorService interface {
	CreateSponsor(ctx context.Context, identity domain.Identity, hackathonID uint, ns service.NewSponsor) (domain.Sponsor, error)
	GetSponsor(ctx context.Context, id uint) (domain.Sponsor, error)
	ListSponsors(ctx context.Context, hackathonID uint) ([]domain.Sponsor, error)
	InviteEmployee(ctx context.Context, identity domain.Identity, sponsorID uint, email string) (domain.SponsorInvite, error)
	UploadLogo(ctx context.Context, identity domain.Identity, sponsorID uint, filename, contentType string, body io.Reader) (domain.Sponsor, error)
	Adoption(ctx context.Context, sponsorID uint) (domain.SponsorAdoption, error)
	HackathonAdoption(ctx context.Context, hackathonID uint) ([]domain.SponsorAdoption, error)
}

type SponsorHandler struct {
	svc SponsorService
}

func NewSponsorHandler(svc SponsorService) *SponsorHandler {
	return &SponsorHandler{
		svc: svc,
	}
}

// HandleCreateSponsor godoc
// @Summary      Create a sponsor
// @Tags         sponsors
// @Accept       json
// @Produce      json
// @Param        hackathonID  path      int                           true  "Hackathon ID"
// @Param        input        body      request.CreateSponsorRequest  true  "Sponsor details"
// @Success      201          {object}  domain.Sponsor
// @Failure      400          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/sponsors [post]
// @Security BearerAuth
func (h *SponsorHandler) HandleCreateSponsor(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateSponsorRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sponsor, err := h.svc.CreateSponsor(ctx.Request.Context(), identity, hackathonID, req.ToNewSponsor())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateSponsor -> h.svc.CreateSponsor", err)
		return
	}

	ctx.JSON(http.StatusCreated, sponsor)
}

// HandleListSponsors godoc
// @Summary      List the sponsors of a hackathon
// @Tags         sponsors
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.Sponsor
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/sponsors [get]
// @Security BearerAuth
func (h *SponsorHandler) HandleListSponsors(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sponsors, err := h.svc.ListSponsors(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleListSponsors -> h.svc.ListSponsors", err)
		return
	}

	ctx.JSON(http.StatusOK, sponsors)
}

// HandleGetSponsor godoc
// @Summary      Get a sponsor
// @Tags         sponsors
// @Produce      json
// @Param        sponsorID  path      int  true  "Sponsor ID"
// @Success      200        {object}  domain.Sponsor
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sponsors/{sponsorID} [get]
// @Security BearerAuth
func (h *SponsorHandler) HandleGetSponsor(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "sponsorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sponsor, err := h.svc.GetSponsor(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetSponsor -> h.svc.GetSponsor", err)
		return
	}

	ctx.JSON(http.StatusOK, sponsor)
}

// HandleGetAdoption godoc
// @Summary      Sponsor adoption statistics
// @Description  How many submissions and teams use the sponsor, plus its prize pool.
// @Tags         sponsors
// @Produce      json
// @Param        sponsorID  path      int  true  "Sponsor ID"
// @Success      200        {object}  domain.SponsorAdoption
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sponsors/{sponsorID}/adoption [get]
// @Security BearerAuth
func (h *SponsorHandler) HandleGetAdoption(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "sponsorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	adoption, err := h.svc.Adoption(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetAdoption -> h.svc.Adoption", err)
		return
	}

	ctx.JSON(http.StatusOK, adoption)
}

// HandleGetHackathonAdoption godoc
// @Summary      Adoption statistics for every sponsor of a hackathon
// @Tags         sponsors
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.SponsorAdoption
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/sponsors/adoption [get]
// @Security BearerAuth
func (h *SponsorHandler) HandleGetHackathonAdoption(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	adoptions, err := h.svc.HackathonAdoption(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleGetHackathonAdoption -> h.svc.HackathonAdoption", err)
		return
	}

	ctx.JSON(http.StatusOK, adoptions)
}

// HandleInviteEmployee godoc
// @Summary      Invite a sponsor employee
// @Description  The invited email becomes a sponsor employee the first time that user is seen.
// @Tags         sponsors
// @Accept       json
// @Produce      json
// @Param        sponsorID  path      int                            true  "Sponsor ID"
// @Param        input      body      request.InviteEmployeeRequest  true  "Employee email"
// @Success      201        {object}  domain.SponsorInvite
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sponsors/{sponsorID}/employees [post]
// @Security BearerAuth
func (h *SponsorHandler) HandleInviteEmployee(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "sponsorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.InviteEmployeeRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	invite, err := h.svc.InviteEmployee(ctx.Request.Context(), identity, id, req.Email)
	if err != nil {
		renderServiceErr(ctx, "HandleInviteEmployee -> h.svc.InviteEmployee", err)
		return
	}

	ctx.JSON(http.StatusCreated, invite)
}

// HandleUploadLogo godoc
// @Summary      Upload a sponsor logo
// @Tags         sponsors
// @Accept       multipart/form-data
// @Produce      json
// @Param        sponsorID  path      int   true  "Sponsor ID"
// @Param        logo       formData  file  true  "Logo image"
// @Success      200        {object}  domain.Sponsor
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sponsors/{sponsorID}/logo [put]
// @Security BearerAuth
func (h *SponsorHandler) HandleUploadLogo(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "sponsorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	header, err := ctx.FormFile("logo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("logo file is required -> %w", err)))
		return
	}
	if header.Size > maxLogoSize {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("logo exceeds %d bytes", maxLogoSize)))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer file.Close()

	sponsor, err := h.svc.UploadLogo(
		ctx.Request.Context(),
		identity,
		id,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		renderServiceErr(ctx, "HandleUploadLogo -> h.svc.UploadLogo", err)
		return
	}

	ctx.JSON(http.StatusOK, sponsor)
}
