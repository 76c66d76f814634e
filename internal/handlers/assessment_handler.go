package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/utils"
)

// AssessmentHandler exposes assessment template endpoints
type AssessmentHandler struct {
	BaseHandler
	service services.AssessmentService
}

func NewAssessmentHandler(service services.AssessmentService, logger utils.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	userID := RequireUserID(c)
	if userID == "" {
		return
	}

	var req services.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	assessment, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	assessment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	if jobID := c.Query("jobId"); jobID != "" {
		assessments, err := h.service.GetByJob(c.Request.Context(), jobID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, assessments)
		return
	}

	assessments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessments)
}

func (h *AssessmentHandler) UpdateAssessment(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	assessment, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Assessment deleted"})
}
