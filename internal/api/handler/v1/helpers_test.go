package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/api/middleware"
	"github.com/hackforge/hackathon-api/internal/domain"
)

var (
	guestIdentity = domain.Identity{
		UserID:    "user-1",
		Email:     "ada@example.com",
		FirstName: "Ada",
		Role:      domain.RoleGuest,
	}
	organiserIdentity = domain.Identity{
		UserID: "org-1",
		Email:  "org@example.com",
		Role:   domain.RoleOrganiser,
	}
)

// newTestRouter stands in for the JWT middleware by stamping identity on
// every request. A nil identity leaves requests anonymous.
func newTestRouter(identity *domain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(requestid.New())
	if identity != nil {
		id := *identity
		router.Use(func(ctx *gin.Context) {
			middleware.SetIdentity(ctx, id)
			ctx.Next()
		})
	}

	return router
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) response.Err {
	t.Helper()

	var e response.Err
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))

	return e
}
