package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/utils"
)

// CandidateHandler exposes candidate profile endpoints
type CandidateHandler struct {
	BaseHandler
	service services.CandidateService
}

func NewCandidateHandler(service services.CandidateService, logger utils.Logger) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req services.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	candidate, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	candidate, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		candidate, err := h.service.GetByEmail(c.Request.Context(), email)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, candidate)
		return
	}

	candidates, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	candidate, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
