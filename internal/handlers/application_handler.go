package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/utils"
)

// ApplicationHandler exposes candidate pipeline endpoints
type ApplicationHandler struct {
	BaseHandler
	service services.ApplicationService
}

func NewApplicationHandler(service services.ApplicationService, logger utils.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req services.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	application, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	application, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	if jobID := c.Query("jobId"); jobID != "" {
		applications, err := h.service.GetByJob(c.Request.Context(), jobID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, applications)
		return
	}

	if candidateID := c.Query("candidateId"); candidateID != "" {
		applications, err := h.service.GetByCandidate(c.Request.Context(), candidateID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, applications)
		return
	}

	applications, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	application, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
