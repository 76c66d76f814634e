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

// QuestionHandler exposes question bank endpoints
type QuestionHandler struct {
	BaseHandler
	service      services.QuestionBankService
	assessments  services.AssessmentService
	importExport services.ImportExportService
}

func NewQuestionHandler(
	service services.QuestionBankService,
	assessments services.AssessmentService,
	importExport services.ImportExportService,
	logger utils.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:  NewBaseHandler(logger),
		service:      service,
		assessments:  assessments,
		importExport: importExport,
	}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID := RequireUserID(c)
	if userID == "" {
		return
	}

	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	question, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) CreateQuestionsBulk(c *gin.Context) {
	userID := RequireUserID(c)
	if userID == "" {
		return
	}

	var reqs []*services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	questions, err := h.service.CreateBulk(c.Request.Context(), reqs, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	question, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filters := parseQuestionFilters(c)

	questions, total, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: questions, Total: total})
}

func (h *QuestionHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	question, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Question deleted"})
}

type GenerateQuestionSetRequest struct {
	Categories []string                 `json:"categories"`
	Difficulty []models.DifficultyLevel `json:"difficulty"`
	Count      int                      `json:"count"`
}

// GenerateQuestionSet draws a random sample straight from the bank filter,
// without an assessment template. Zero matches yield an empty list, not an
// error; start flows decide whether that is fatal.
func (h *QuestionHandler) GenerateQuestionSet(c *gin.Context) {
	var req GenerateQuestionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	assessment := &models.Assessment{
		Type:          models.AssessmentAuto,
		Categories:    req.Categories,
		Difficulty:    req.Difficulty,
		QuestionCount: req.Count,
	}

	questions, err := h.service.GenerateQuestionSet(c.Request.Context(), assessment)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// GenerateAssessmentSet previews the random question set an assessment's
// filter would draw right now.
func (h *QuestionHandler) GenerateAssessmentSet(c *gin.Context) {
	assessmentID := ParseStringIDParam(c, "id")
	if assessmentID == "" {
		return
	}

	assessment, err := h.assessments.GetByID(c.Request.Context(), assessmentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	questions, err := h.service.GenerateQuestionSet(c.Request.Context(), assessment)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// ===== IMPORT / EXPORT =====

func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	userID := RequireUserID(c)
	if userID == "" {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Missing file upload", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	result, err := h.importExport.ImportQuestionsFromFile(c.Request.Context(), file, fileHeader.Filename, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	filters := parseQuestionFilters(c)
	format := strings.ToLower(c.DefaultQuery("format", "csv"))

	var (
		data        []byte
		err         error
		contentType string
		filename    string
	)

	switch format {
	case "csv":
		data, err = h.importExport.ExportQuestionsToCSV(c.Request.Context(), filters)
		contentType = "text/csv"
		filename = "questions.csv"
	case "xlsx":
		data, err = h.importExport.ExportQuestionsToExcel(c.Request.Context(), filters)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "questions.xlsx"
	default:
		h.RespondWithError(c, http.StatusBadRequest, "Unsupported export format", nil, format)
		return
	}

	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

func parseQuestionFilters(c *gin.Context) repositories.QuestionFilters {
	filters := repositories.QuestionFilters{}
	filters.Limit, filters.Offset = ParsePagination(c)

	if raw := c.Query("categories"); raw != "" {
		filters.Categories = strings.Split(raw, ",")
	}
	if raw := c.Query("difficulties"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			filters.Difficulties = append(filters.Difficulties, models.DifficultyLevel(d))
		}
	}
	if raw := c.Query("type"); raw != "" {
		questionType := models.QuestionType(raw)
		filters.Type = &questionType
	}
	if raw := c.Query("createdBy"); raw != "" {
		filters.CreatedBy = &raw
	}

	return filters
}
