package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/utils"
)

// SubmissionHandler exposes assessment attempt endpoints
type SubmissionHandler struct {
	BaseHandler
	service services.SubmissionService
}

func NewSubmissionHandler(service services.SubmissionService, logger utils.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *SubmissionHandler) StartSubmission(c *gin.Context) {
	var req services.StartSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	submission, err := h.service.Start(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

func (h *SubmissionHandler) SubmitSubmission(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	idempotencyKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))

	submission, err := h.service.Submit(c.Request.Context(), id, &req, idempotencyKey)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	submission, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	filters := repositories.SubmissionFilters{}
	filters.Limit, filters.Offset = ParsePagination(c)

	if raw := c.Query("assessmentId"); raw != "" {
		filters.AssessmentID = &raw
	}
	if raw := c.Query("candidateId"); raw != "" {
		filters.CandidateID = &raw
	}
	if raw := c.Query("applicationId"); raw != "" {
		filters.ApplicationID = &raw
	}
	if raw := c.Query("status"); raw != "" {
		status := models.SubmissionStatus(raw)
		filters.Status = &status
	}

	submissions, total, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: submissions, Total: total})
}

func (h *SubmissionHandler) GetSubmissionsByCandidate(c *gin.Context) {
	candidateID := ParseStringIDParam(c, "candidate_id")
	if candidateID == "" {
		return
	}

	submissions, err := h.service.GetByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}
