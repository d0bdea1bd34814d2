package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/request"
	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

type HackathonService interface {
	CreateHackathon(ctx context.Context, identity domain.Identity, nh service.NewHackathon) (domain.Hackathon, error)
	UpdateHackathon(ctx context.Context, identity domain.Identity, id uint, patch service.HackathonPatch) (domain.Hackathon, error)
	StartHackathon(ctx context.Context, identity domain.Identity, id uint) (domain.Hackathon, error)
	GetHackathon(ctx context.Context, id uint) (domain.Hackathon, error)
	ListHackathons(ctx context.Context) ([]domain.Hackathon, error)
}

type HackathonHandler struct {
	svc HackathonService
}

func NewHackathonHandler(svc HackathonService) *HackathonHandler {
	return &HackathonHandler{
		svc: svc,
	}
}

// HandleCreateHackathon godoc
// @Summary      Create a hackathon
// @Description  Only organisers can create hackathons.
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateHackathonRequest  true  "Hackathon details"
// @Success      201    {object}  domain.Hackathon
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /hackathons [post]
// @Security BearerAuth
func (h *HackathonHandler) HandleCreateHackathon(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateHackathonRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hackathon, err := h.svc.CreateHackathon(ctx.Request.Context(), identity, req.ToNewHackathon())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateHackathon -> h.svc.CreateHackathon", err)
		return
	}

	ctx.JSON(http.StatusCreated, hackathon)
}

// HandleListHackathons godoc
// @Summary      List hackathons
// @Tags         hackathons
// @Produce      json
// @Success      200  {array}   domain.Hackathon
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hackathons [get]
// @Security BearerAuth
func (h *HackathonHandler) HandleListHackathons(ctx *gin.Context) {
	hackathons, err := h.svc.ListHackathons(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleListHackathons -> h.svc.ListHackathons", err)
		return
	}

	ctx.JSON(http.StatusOK, hackathons)
}

// HandleGetHackathon godoc
// @Summary      Get a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {object}  domain.Hackathon
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID} [get]
// @Security BearerAuth
func (h *HackathonHandler) HandleGetHackathon(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hackathon, err := h.svc.GetHackathon(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetHackathon -> h.svc.GetHackathon", err)
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}

// HandleUpdateHackathon godoc
// @Summary      Update a hackathon
// @Description  Partial update. Only organisers can edit hackathons.
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Param        hackathonID  path      int                             true  "Hackathon ID"
// @Param        input        body      request.UpdateHackathonRequest  true  "Fields to change"
// @Success      200          {object}  domain.Hackathon
// @Failure      400          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID} [patch]
// @Security BearerAuth
func (h *HackathonHandler) HandleUpdateHackathon(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateHackathonRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hackathon, err := h.svc.UpdateHackathon(ctx.Request.Context(), identity, id, req.ToPatch())
	if err != nil {
		renderServiceErr(ctx, "HandleUpdateHackathon -> h.svc.UpdateHackathon", err)
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}

// HandleStartHackathon godoc
// @Summary      Start a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {object}  domain.Hackathon
// @Failure      400          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/start [post]
// @Security BearerAuth
func (h *HackathonHandler) HandleStartHackathon(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hackathon, err := h.svc.StartHackathon(ctx.Request.Context(), identity, id)
	if err != nil {
		renderServiceErr(ctx, "HandleStartHackathon -> h.svc.StartHackathon", err)
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}
