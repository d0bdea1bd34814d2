package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
)

type LeaderboardService interface {
	Leaderboard(ctx context.Context, hackathonID uint) ([]domain.LeaderboardEntry, error)
}

type LeaderboardHandler struct {
	svc LeaderboardService
}

func NewLeaderboardHandler(svc LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		svc: svc,
	}
}

// HandleGetLeaderboard godoc
// @Summary      Hackathon leaderboard
// @Description  Every team ranked by score, ties kept in team order.
// @Tags         leaderboard
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      200          {object}  response.Leaderboard
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/leaderboard [get]
// @Security BearerAuth
func (h *LeaderboardHandler) HandleGetLeaderboard(ctx *gin.Context) {
	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	entries, err := h.svc.Leaderboard(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleGetLeaderboard -> h.svc.Leaderboard", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewLeaderboard(hackathonID, entries))
}
