package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

func newSubmissionRouter(svc *mockSubmissionService) http.Handler {
	h := NewSubmissionHandler(svc)

	router := newTestRouter(&guestIdentity)
	router.POST("/teams/:teamID/submission", h.HandleCreateSubmission)
	router.GET("/teams/:teamID/submission", h.HandleGetTeamSubmission)
	router.GET("/hackathons/:hackathonID/submissions", h.HandleListSubmissions)
	router.GET("/submissions/:submissionID", h.HandleGetSubmission)
	router.PATCH("/submissions/:submissionID", h.HandleUpdateSubmission)
	router.DELETE("/submissions/:submissionID", h.HandleDeleteSubmission)
	router.POST("/submissions/:submissionID/advance", h.HandleAdvanceSubmission)

	return router
}

func TestSubmissionHandler_HandleCreateSubmission(t *testing.T) {
	svc := &mockSubmissionService{}
	want := service.NewSubmission{
		Title:       "Ship it",
		Description: "A demo",
		GithubLink:  "https://github.com/example/ship-it",
		SponsorIDs:  []uint{1, 2},
	}
	svc.On("CreateSubmission", mock.Anything, uint(5), want).
		Return(domain.Submission{ID: 8, TeamID: 5, State: domain.SubmissionDraft}, nil).Once()

	rec := doJSON(t, newSubmissionRouter(svc), http.MethodPost, "/teams/5/submission", map[string]interface{}{
		"title":       "Ship it",
		"description": "A demo",
		"github_link": "https://github.com/example/ship-it",
		"sponsor_ids": []uint{1, 2},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"DRAFT"`)
	svc.AssertExpectations(t)
}

func TestSubmissionHandler_HandleCreateSubmission_Errors(t *testing.T) {
	valid := map[string]interface{}{
		"title":       "Ship it",
		"description": "A demo",
		"github_link": "https://github.com/example/ship-it",
	}

	t.Run("invalid link", func(t *testing.T) {
		svc := &mockSubmissionService{}
		rec := doJSON(t, newSubmissionRouter(svc), http.MethodPost, "/teams/5/submission", map[string]interface{}{
			"title":       "Ship it",
			"description": "A demo",
			"github_link": "not a url",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateSubmission")
	})

	t.Run("second submission", func(t *testing.T) {
		svc := &mockSubmissionService{}
		svc.On("CreateSubmission", mock.Anything, uint(5), mock.Anything).
			Return(domain.Submission{}, service.ErrSubmissionExists).Once()

		rec := doJSON(t, newSubmissionRouter(svc), http.MethodPost, "/teams/5/submission", valid)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, response.KindConflict, decodeErr(t, rec).Kind)
	})

	t.Run("unknown team", func(t *testing.T) {
		svc := &mockSubmissionService{}
		svc.On("CreateSubmission", mock.Anything, uint(5), mock.Anything).
			Return(domain.Submission{}, service.ErrTeamNotFound).Once()

		rec := doJSON(t, newSubmissionRouter(svc), http.MethodPost, "/teams/5/submission", valid)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubmissionHandler_HandleUpdateSubmission(t *testing.T) {
	t.Run("raw state", func(t *testing.T) {
		svc := &mockSubmissionService{}
		state := domain.SubmissionPresented
		svc.On("UpdateSubmission", mock.Anything, uint(8), service.SubmissionPatch{State: &state}).
			Return(domain.Submission{ID: 8, State: state}, nil).Once()

		rec := doJSON(t, newSubmissionRouter(svc), http.MethodPatch, "/submissions/8", map[string]string{"state": "PRESENTED"})

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown state", func(t *testing.T) {
		svc := &mockSubmissionService{}

		rec := doJSON(t, newSubmissionRouter(svc), http.MethodPatch, "/submissions/8", map[string]string{"state": "SHIPPED"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateSubmission")
	})
}

func TestSubmissionHandler_HandleAdvanceSubmission(t *testing.T) {
	svc := &mockSubmissionService{}
	svc.On("AdvanceSubmission", mock.Anything, uint(8)).
		Return(domain.Submission{ID: 8, State: domain.SubmissionReadyToDemo}, nil).Once()
	svc.On("AdvanceSubmission", mock.Anything, uint(9)).
		Return(domain.Submission{}, service.ErrSubmissionFinal).Once()

	router := newSubmissionRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/submissions/8/advance", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"READY_TO_DEMO"`)

	rec = doJSON(t, router, http.MethodPost, "/submissions/9/advance", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, response.KindInvalidTransition, decodeErr(t, rec).Kind)

	svc.AssertExpectations(t)
}

func TestSubmissionHandler_HandleDeleteSubmission(t *testing.T) {
	svc := &mockSubmissionService{}
	svc.On("DeleteSubmission", mock.Anything, uint(8)).Return(nil).Once()
	svc.On("DeleteSubmission", mock.Anything, uint(9)).Return(service.ErrSubmissionNotFound).Once()

	router := newSubmissionRouter(svc)

	rec := doJSON(t, router, http.MethodDelete, "/submissions/8", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/submissions/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc.AssertExpectations(t)
}
