package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	KindNotFound          = "not_found"
	KindValidation        = "validation"
	KindCapacity          = "capacity"
	KindConflict          = "conflict"
	KindInvalidTransition = "invalid_transition"
	KindForbidden         = "forbidden"
	KindUnauthorized      = "unauthorized"
	KindInternal          = "internal"
)

// Err is the error body every endpoint renders.
type Err struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	Kind       string `json:"kind"`
	ErrorText  string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	e.RequestID = requestid.Get(ctx)

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", e.RequestID),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
		// Internal details stay in the logs.
		e.ErrorText = ""
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(err error, status int, kind string) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		Kind:           kind,
	}
	if err != nil {
		e.ErrorText = err.Error()
	}
	return e
}

func ErrBadRequest(err error) *Err {
	return newErr(err, http.StatusBadRequest, KindValidation)
}

func ErrNotFound(err error) *Err {
	return newErr(err, http.StatusNotFound, KindNotFound)
}

func ErrConflict(err error) *Err {
	return newErr(err, http.StatusConflict, KindConflict)
}

func ErrCapacity(err error) *Err {
	return newErr(err, http.StatusConflict, KindCapacity)
}

func ErrInvalidTransition(err error) *Err {
	return newErr(err, http.StatusUnprocessableEntity, KindInvalidTransition)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(err, http.StatusForbidden, KindForbidden)
}

func ErrUnauthorized(err error) *Err {
	return newErr(err, http.StatusUnauthorized, KindUnauthorized)
}

func ErrInternalServerError(err error) *Err {
	return newErr(err, http.StatusInternalServerError, KindInternal)
}
