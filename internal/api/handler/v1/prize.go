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

type PrizeService interface {
	CreatePrize(ctx context.Context, identity domain.Identity, hackathonID uint, np service.NewPrize) (domain.Prize, error)
	ListPrizes(ctx context.Context, hackathonID uint) ([]domain.Prize, error)
	DeletePrize(ctx context.Context, identity domain.Identity, id uint) error
}

type PrizeHandler struct {
	svc PrizeService
}

func NewPrizeHandler(svc PrizeService) *PrizeHandler {
	return &PrizeHandler{
		svc: svc,
	}
}

// HandleCreatePrize godoc
// @Summary      Create a prize
// @Description  Prizes without a sponsor are general prizes.
// @Tags         prizes
// @Accept       json
// @Produce      json
// @Param        hackathonID  path      int                         true  "Hackathon ID"
// @Param        input        body      request.CreatePrizeRequest  true  "Prize details"
// @Success      201          {object}  domain.Prize
// @Failure      400          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/prizes [post]
// @Security BearerAuth
func (h *PrizeHandler) HandleCreatePrize(ctx *gin.Context) {
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

	var req request.CreatePrizeRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	prize, err := h.svc.CreatePrize(ctx.Request.Context(), identity, hackathonID, req.ToNewPrize())
	if err != nil {
		renderServiceErr(ctx, "HandleCreatePrize -> h.svc.CreatePrize", err)
		return
	}

	ctx.JSON(http.StatusCreated, prize)
}

// HandleListPrizes godoc
// @Summary      List the prizes of a hackathon
// @Tags         prizes
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.Prize
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/prizes [get]
// @Security BearerAuth
func (h *PrizeHandler) HandleListPrizes(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	prizes, err := h.svc.ListPrizes(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleListPrizes -> h.svc.ListPrizes", err)
		return
	}

	ctx.JSON(http.StatusOK, prizes)
}

// HandleDeletePrize godoc
// @Summary      Delete a prize
// @Tags         prizes
// @Param        prizeID  path  int  true  "Prize ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /prizes/{prizeID} [delete]
// @Security BearerAuth
func (h *PrizeHandler) HandleDeletePrize(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "prizeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeletePrize(ctx.Request.Context(), identity, id); err != nil {
		renderServiceErr(ctx, "HandleDeletePrize -> h.svc.DeletePrize", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
