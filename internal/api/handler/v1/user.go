package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
)

type UserService interface {
	Me(ctx context.Context, identity domain.Identity) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleMe godoc
// @Summary      Current user
// @Description  Returns the caller's user record, creating it on first sight and applying any pending sponsor invite.
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /me [get]
// @Security BearerAuth
func (h *UserHandler) HandleMe(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.Me(ctx.Request.Context(), identity)
	if err != nil {
		renderServiceErr(ctx, "HandleMe -> h.svc.Me", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
