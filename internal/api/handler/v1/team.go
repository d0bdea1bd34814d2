package v1

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/request"
	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

type TeamService interface {
	CreateTeam(ctx context.Context, hackathonID uint, creator domain.Identity, nt service.NewTeam) (domain.Team, error)
	JoinTeam(ctx context.Context, teamID uint, identity domain.Identity, joinCode string) (domain.Team, error)
	LeaveTeam(ctx context.Context, teamID uint, userID string) (domain.Team, error)
	UpdateTeam(ctx context.Context, teamID uint, identity domain.Identity, patch service.TeamPatch) (domain.Team, error)
	FindUserTeam(ctx context.Context, hackathonID uint, userID, email string) (domain.Team, error)
	GetTeam(ctx context.Context, id uint) (domain.Team, error)
	ListTeams(ctx context.Context, hackathonID uint) ([]domain.Team, error)
	RecommendTeams(ctx context.Context, hackathonID uint, userID string) ([]domain.TeamMatch, error)
}

type TeamHandler struct {
	svc TeamService
}

func NewTeamHandler(svc TeamService) *TeamHandler {
	return &TeamHandler{
		svc: svc,
	}
}

// HandleCreateTeam godoc
// @Summary      Create a team
// @Description  The creator becomes the team leader but is not added as a member.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        hackathonID  path      int                        true  "Hackathon ID"
// @Param        input        body      request.CreateTeamRequest  true  "Team details"
// @Success      201          {object}  domain.Team
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/teams [post]
// @Security BearerAuth
func (h *TeamHandler) HandleCreateTeam(ctx *gin.Context) {
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

	var req request.CreateTeamRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	team, err := h.svc.CreateTeam(ctx.Request.Context(), hackathonID, identity, req.ToNewTeam())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateTeam -> h.svc.CreateTeam", err)
		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// HandleListTeams godoc
// @Summary      List the teams of a hackathon
// @Tags         teams
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.Team
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/teams [get]
// @Security BearerAuth
func (h *TeamHandler) HandleListTeams(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teams, err := h.svc.ListTeams(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleListTeams -> h.svc.ListTeams", err)
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetMyTeam godoc
// @Summary      Get the caller's team in a hackathon
// @Tags         teams
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {object}  domain.Team
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/teams/mine [get]
// @Security BearerAuth
func (h *TeamHandler) HandleGetMyTeam(ctx *gin.Context) {
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

	team, err := h.svc.FindUserTeam(ctx.Request.Context(), hackathonID, identity.UserID, identity.Email)
	if err != nil {
		renderServiceErr(ctx, "HandleGetMyTeam -> h.svc.FindUserTeam", err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleRecommendTeams godoc
// @Summary      Recommend teams to join
// @Description  Teams with free seats ranked by match score, best first.
// @Tags         teams
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {array}   domain.TeamMatch
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/teams/recommended [get]
// @Security BearerAuth
func (h *TeamHandler) HandleRecommendTeams(ctx *gin.Context) {
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

	matches, err := h.svc.RecommendTeams(ctx.Request.Context(), hackathonID, identity.UserID)
	if err != nil {
		renderServiceErr(ctx, "HandleRecommendTeams -> h.svc.RecommendTeams", err)
		return
	}

	ctx.JSON(http.StatusOK, matches)
}

// HandleGetTeam godoc
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Param        teamID  path      int  true  "Team ID"
// @Success      200     {object}  domain.Team
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID} [get]
// @Security BearerAuth
func (h *TeamHandler) HandleGetTeam(ctx *gin.Context) {
	teamID, respErr := parseIDParam(ctx, "teamID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	team, err := h.svc.GetTeam(ctx.Request.Context(), teamID)
	if err != nil {
		renderServiceErr(ctx, "HandleGetTeam -> h.svc.GetTeam", err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleUpdateTeam godoc
// @Summary      Update a team
// @Description  Only the leader or a member may edit the team.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamID  path      int                        true  "Team ID"
// @Param        input   body      request.UpdateTeamRequest  true  "Fields to change"
// @Success      200     {object}  domain.Team
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID} [patch]
// @Security BearerAuth
func (h *TeamHandler) HandleUpdateTeam(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, respErr := parseIDParam(ctx, "teamID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateTeamRequest
	if respErr := bindAndValidate(ctx, &req); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	team, err := h.svc.UpdateTeam(ctx.Request.Context(), teamID, identity, req.ToPatch())
	if err != nil {
		renderServiceErr(ctx, "HandleUpdateTeam -> h.svc.UpdateTeam", err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleJoinTeam godoc
// @Summary      Join a team
// @Description  The body is optional; teams created with a join code require it.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamID  path      int                      true   "Team ID"
// @Param        input   body      request.JoinTeamRequest  false  "Join code"
// @Success      200     {object}  domain.Team
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/join [post]
// @Security BearerAuth
func (h *TeamHandler) HandleJoinTeam(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, respErr := parseIDParam(ctx, "teamID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.JoinTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	team, err := h.svc.JoinTeam(ctx.Request.Context(), teamID, identity, req.JoinCode)
	if err != nil {
		renderServiceErr(ctx, "HandleJoinTeam -> h.svc.JoinTeam", err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleLeaveTeam godoc
// @Summary      Leave a team
// @Tags         teams
// @Produce      json
// @Param        teamID  path      int  true  "Team ID"
// @Success      200     {object}  domain.Team
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/leave [post]
// @Security BearerAuth
func (h *TeamHandler) HandleLeaveTeam(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, respErr := parseIDParam(ctx, "teamID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	team, err := h.svc.LeaveTeam(ctx.Request.Context(), teamID, identity.UserID)
	if err != nil {
		renderServiceErr(ctx, "HandleLeaveTeam -> h.svc.LeaveTeam", err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}
