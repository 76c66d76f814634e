package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/session"
	"github.com/talentflow/ats-service/internal/utils"
)

// MockSubmissionService is a mock implementation of services.SubmissionService
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Start(ctx context.Context, req *services.StartSubmissionRequest) (*models.AssessmentSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSubmission), args.Error(1)
}

func (m *MockSubmissionService) Submit(ctx context.Context, id string, req *services.SubmitRequest, idempotencyKey string) (*models.AssessmentSubmission, error) {
	args := m.Called(ctx, id, req, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSubmission), args.Error(1)
}

func (m *MockSubmissionService) GetByID(ctx context.Context, id string) (*models.AssessmentSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSubmission), args.Error(1)
}

func (m *MockSubmissionService) List(ctx context.Context, filters repositories.SubmissionFilters) ([]*models.AssessmentSubmission, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.AssessmentSubmission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionService) GetByCandidate(ctx context.Context, candidateID string) ([]*models.AssessmentSubmission, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]*models.AssessmentSubmission), args.Error(1)
}

func (m *MockSubmissionService) SubmitDraft(ctx context.Context, draft *session.Draft) (*models.AssessmentSubmission, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSubmission), args.Error(1)
}

func setupSubmissionRouter(service services.SubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSubmissionHandler(service, utils.NewDefaultLogger())

	router := gin.New()
	router.POST("/assessment-submissions/start", handler.StartSubmission)
	router.POST("/assessment-submissions/:id/submit", handler.SubmitSubmission)
	router.GET("/assessment-submissions/:id", handler.GetSubmission)
	return router
}

func TestSubmissionHandler_StartSubmission(t *testing.T) {
	service := &MockSubmissionService{}
	service.On("Start", mock.Anything, mock.MatchedBy(func(req *services.StartSubmissionRequest) bool {
		return req.AssessmentID == "a1" && req.CandidateID == "c1"
	})).Return(&models.AssessmentSubmission{ID: "s1", Status: models.SubmissionInProgress}, nil)

	router := setupSubmissionRouter(service)

	body := `{"assessmentId":"a1","candidateId":"c1","applicationId":"app1"}`
	req := httptest.NewRequest(http.MethodPost, "/assessment-submissions/start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"in_progress"`)
	service.AssertExpectations(t)
}

func TestSubmissionHandler_SubmitSubmission_ForwardsIdempotencyKey(t *testing.T) {
	service := &MockSubmissionService{}
	service.On("Submit", mock.Anything, "s1", mock.Anything, "retry-key-1").
		Return(&models.AssessmentSubmission{ID: "s1", Status: models.SubmissionGraded, Score: 3}, nil)

	router := setupSubmissionRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/assessment-submissions/s1/submit", strings.NewReader(`{"answers":{"q1":0}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "retry-key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestSubmissionHandler_SubmitSubmission_DuplicateConflict(t *testing.T) {
	service := &MockSubmissionService{}
	service.On("Submit", mock.Anything, "s1", mock.Anything, "retry-key-1").
		Return(nil, services.ErrDuplicateSubmission)

	router := setupSubmissionRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/assessment-submissions/s1/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "retry-key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmissionHandler_GetSubmission_NotFound(t *testing.T) {
	service := &MockSubmissionService{}
	service.On("GetByID", mock.Anything, "missing").Return(nil, services.ErrSubmissionNotFound)

	router := setupSubmissionRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/assessment-submissions/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
