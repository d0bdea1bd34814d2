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

type IssueService interface {
	CreateIssue(ctx context.Context, hackathonID uint, reporter domain.Identity, ni service.NewIssue) (domain.Issue, error)
	SetIssueStatus(ctx context.Context, id uint, status domain.IssueStatus) (domain.Issue, error)
	AdvanceIssue(ctx context.Context, id uint) (domain.Issue, error)
	ReopenIssue(ctx context.Context, id uint) (domain.Issue, error)
	GetIssue(ctx context.Context, id uint) (domain.Issue, error)
	ListIssues(ctx context.Context, hackathonID uint) ([]domain.Issue, error)
}

type IssueHandler struct {
	svc IssueService
}

func NewIssueHandler(svc IssueService) *IssueHandler {
	return &IssueHandler{
		svc: svc,
	}
}

// HandleCreateIssue godoc
// @Summary      Report an issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Param        hackathonID  path      int                         true  "Hackathon ID"
// @Param        input        body      request.CreateIssueRequest  true  "Issue details"
// @Success      201          {object}  domain.Issue
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/issues [post]
// @Security BearerAuth
func (h *IssueHandler) HandleCreateIssue(ctx *gin.Context) {
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

	var req request.CreateIssueRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	issue, err := h.svc.CreateIssue(ctx.Request.Context(), hackathonID, identity, req.ToNewIssue())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateIssue -> h.svc.CreateIssue", err)
		return
	}

	ctx.JSON(http.StatusCreated, issue)
}

// HandleListIssues godoc
// @Summary      List the issues of a hackathon
// @Tags         issues
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.Issue
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/issues [get]
// @Security BearerAuth
func (h *IssueHandler) HandleListIssues(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	issues, err := h.svc.ListIssues(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleListIssues -> h.svc.ListIssues", err)
		return
	}

	ctx.JSON(http.StatusOK, issues)
}

// HandleGetIssue godoc
// @Summary      Get an issue
// @Tags         issues
// @Produce      json
// @Param        issueID  path      int  true  "Issue ID"
// @Success      200      {object}  domain.Issue
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /issues/{issueID} [get]
// @Security BearerAuth
func (h *IssueHandler) HandleGetIssue(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "issueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	issue, err := h.svc.GetIssue(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetIssue -> h.svc.GetIssue", err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

// HandleSetIssueStatus godoc
// @Summary      Set an issue's status
// @Description  Sets any valid status, no transition rules apply.
// @Tags         issues
// @Accept       json
// @Produce      json
// @Param        issueID  path      int                            true  "Issue ID"
// @Param        input    body      request.SetIssueStatusRequest  true  "New status"
// @Success      200      {object}  domain.Issue
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /issues/{issueID}/status [patch]
// @Security BearerAuth
func (h *IssueHandler) HandleSetIssueStatus(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "issueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SetIssueStatusRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	issue, err := h.svc.SetIssueStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		renderServiceErr(ctx, "HandleSetIssueStatus -> h.svc.SetIssueStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

// HandleAdvanceIssue godoc
// @Summary      Advance an issue
// @Description  open -> in_progress -> resolved.
// @Tags         issues
// @Produce      json
// @Param        issueID  path      int  true  "Issue ID"
// @Success      200      {object}  domain.Issue
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /issues/{issueID}/advance [post]
// @Security BearerAuth
func (h *IssueHandler) HandleAdvanceIssue(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "issueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	issue, err := h.svc.AdvanceIssue(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleAdvanceIssue -> h.svc.AdvanceIssue", err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

// HandleReopenIssue godoc
// @Summary      Reopen a resolved issue
// @Tags         issues
// @Produce      json
// @Param        issueID  path      int  true  "Issue ID"
// @Success      200      {object}  domain.Issue
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /issues/{issueID}/reopen [post]
// @Security BearerAuth
func (h *IssueHandler) HandleReopenIssue(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "issueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	issue, err := h.svc.ReopenIssue(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleReopenIssue -> h.svc.ReopenIssue", err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}
