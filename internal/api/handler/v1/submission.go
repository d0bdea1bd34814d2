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

type SubmissionService interface {
	CreateSubmission(ctx context.Context, teamID uint, ns service.NewSubmission) (domain.Submission, error)
	UpdateSubmission(ctx context.Context, id uint, patch service.SubmissionPatch) (domain.Submission, error)
	DeleteSubmission(ctx context.Context, id uint) error
	AdvanceSubmission(ctx context.Context, id uint) (domain.Submission, error)
	GetSubmission(ctx context.Context, id uint) (domain.Submission, error)
	GetTeamSubmission(ctx context.Context, teamID uint) (domain.Submission, error)
	ListSubmissions(ctx context.Context, hackathonID uint) ([]domain.Submission, error)
}

type SubmissionHandler struct {
	svc SubmissionService
}

func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		svc: svc,
	}
}

// HandleCreateSubmission godoc
// @Summary      Create the team's submission
// @Description  A team has at most one submission. New submissions start as DRAFT.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        teamID  path      int                              true  "Team ID"
// @Param        input   body      request.CreateSubmissionRequest  true  "Submission details"
// @Success      201     {object}  domain.Submission
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/submission [post]
// @Security BearerAuth
func (h *SubmissionHandler) HandleCreateSubmission(ctx *gin.Context) {
	teamID, respErr := parseIDParam(ctx, "teamID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateSubmissionRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	submission, err := h.svc.CreateSubmission(ctx.Request.Context(), teamID, req.ToNewSubmission())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateSubmission -> h.svc.CreateSubmission", err)
		return
	}

	ctx.JSON(http.StatusCreated, submission)
}

// HandleGetTeamSubmission godoc
// @Summary      Get the team's submission
// @Tags         submissions
// @Produce      json
// @Param        teamID  path      int  true  "Team ID"
// @Success      200     {object}  domain.Submission
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/submission [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetTeamSubmission(ctx *gin.Context) {
	teamID, respErr := parseIDParam(ctx, "teamID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	submission, err := h.svc.GetTeamSubmission(ctx.Request.Context(), teamID)
	if err != nil {
		renderServiceErr(ctx, "HandleGetTeamSubmission -> h.svc.GetTeamSubmission", err)
		return
	}

	ctx.JSON(http.StatusOK, submission)
}

// HandleListSubmissions godoc
// @Summary      List the submissions of a hackathon
// @Tags         submissions
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.Submission
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/submissions [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleListSubmissions(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	submissions, err := h.svc.ListSubmissions(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleListSubmissions -> h.svc.ListSubmissions", err)
		return
	}

	ctx.JSON(http.StatusOK, submissions)
}

// HandleGetSubmission godoc
// @Summary      Get a submission
// @Tags         submissions
// @Produce      json
// @Param        submissionID  path      int  true  "Submission ID"
// @Success      200           {object}  domain.Submission
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /submissions/{submissionID} [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetSubmission(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "submissionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	submission, err := h.svc.GetSubmission(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetSubmission -> h.svc.GetSubmission", err)
		return
	}

	ctx.JSON(http.StatusOK, submission)
}

// HandleUpdateSubmission godoc
// @Summary      Update a submission
// @Description  Partial update. The state field sets the state directly.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        submissionID  path      int                              true  "Submission ID"
// @Param        input         body      request.UpdateSubmissionRequest  true  "Fields to change"
// @Success      200           {object}  domain.Submission
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /submissions/{submissionID} [patch]
// @Security BearerAuth
func (h *SubmissionHandler) HandleUpdateSubmission(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "submissionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateSubmissionRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	submission, err := h.svc.UpdateSubmission(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		renderServiceErr(ctx, "HandleUpdateSubmission -> h.svc.UpdateSubmission", err)
		return
	}

	ctx.JSON(http.StatusOK, submission)
}

// HandleDeleteSubmission godoc
// @Summary      Delete a submission
// @Tags         submissions
// @Param        submissionID  path  int  true  "Submission ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /submissions/{submissionID} [delete]
// @Security BearerAuth
func (h *SubmissionHandler) HandleDeleteSubmission(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "submissionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteSubmission(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "HandleDeleteSubmission -> h.svc.DeleteSubmission", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAdvanceSubmission godoc
// @Summary      Advance a submission
// @Description  DRAFT -> READY_TO_DEMO -> PRESENTED. Advancing a presented submission fails.
// @Tags         submissions
// @Produce      json
// @Param        submissionID  path      int  true  "Submission ID"
// @Success      200           {object}  domain.Submission
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      422           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /submissions/{submissionID}/advance [post]
// @Security BearerAuth
func (h *SubmissionHandler) HandleAdvanceSubmission(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "submissionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	submission, err := h.svc.AdvanceSubmission(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleAdvanceSubmission -> h.svc.AdvanceSubmission", err)
		return
	}

	ctx.JSON(http.StatusOK, submission)
}
