package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/api/middleware"
	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

func getIdentityFromContext(ctx *gin.Context) (domain.Identity, *response.Err) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return domain.Identity{}, response.ErrUnauthorized(errors.New("missing identity"))
	}

	return identity, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s %q", name, raw))
	}

	return uint(id), nil
}

type validatable interface {
	Validate() error
}

func bindAndValidate(ctx *gin.Context, req validatable) *response.Err {
	if err := ctx.ShouldBindJSON(req); err != nil {
		return response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return response.ErrBadRequest(err)
	}

	return nil
}

// renderServiceErr maps a service error kind onto its HTTP rendering.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrValidation):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrCapacity):
		response.RenderErr(ctx, response.ErrCapacity(err))
	case errors.Is(err, service.ErrConflict):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrInvalidTransition):
		response.RenderErr(ctx, response.ErrInvalidTransition(err))
	case errors.Is(err, service.ErrForbidden):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}
