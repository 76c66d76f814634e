package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/utils"
)

// InterviewHandler exposes interview panel and scheduling endpoints
type InterviewHandler struct {
	BaseHandler
	service services.InterviewService
}

func NewInterviewHandler(service services.InterviewService, logger utils.Logger) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== PANELS =====

func (h *InterviewHandler) CreatePanel(c *gin.Context) {
	var req services.CreatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	panel, err := h.service.CreatePanel(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, panel)
}

func (h *InterviewHandler) GetPanel(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	panel, err := h.service.GetPanel(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, panel)
}

func (h *InterviewHandler) ListPanels(c *gin.Context) {
	if jobID := c.Query("jobId"); jobID != "" {
		panels, err := h.service.GetPanelsByJob(c.Request.Context(), jobID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, panels)
		return
	}

	panels, err := h.service.ListPanels(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, panels)
}

func (h *InterviewHandler) UpdatePanel(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	panel, err := h.service.UpdatePanel(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, panel)
}

func (h *InterviewHandler) DeletePanel(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.service.DeletePanel(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Panel deleted"})
}

// ===== INTERVIEWS =====

func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req services.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	interview, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	interview, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	if applicationID := c.Query("applicationId"); applicationID != "" {
		interviews, err := h.service.GetByApplication(c.Request.Context(), applicationID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, interviews)
		return
	}

	interviews, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interviews)
}

func (h *InterviewHandler) ListUpcomingInterviews(c *gin.Context) {
	interviews, err := h.service.GetUpcoming(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interviews)
}

func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	interview, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}
