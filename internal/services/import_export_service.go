package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
	"github.com/xuri/excelize/v2"
)

// ImportExportService handles bulk file import/export for the question bank
type ImportExportService interface {
	ImportQuestionsFromFile(ctx context.Context, file multipart.File, filename string, creatorID string) (*ImportResult, error)
	ImportQuestionsFromCSV(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error)
	ImportQuestionsFromExcel(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error)

	ExportQuestionsToCSV(ctx context.Context, filters repositories.QuestionFilters) ([]byte, error)
	ExportQuestionsToExcel(ctx context.Context, filters repositories.QuestionFilters) ([]byte, error)
}

// ImportRowError describes why one spreadsheet row was rejected.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import. Valid rows are saved even when other
// rows fail; callers inspect Errors for the rejects.
type ImportResult struct {
	TotalRows    int                `json:"totalRows"`
	SuccessCount int                `json:"successCount"`
	ErrorCount   int                `json:"errorCount"`
	Errors       []ImportRowError   `json:"errors"`
	Questions    []*models.Question `json:"questions,omitempty"`
}

type importExportService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewImportExportService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ImportExportService {
	return &importExportService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

var questionExportHeaders = []string{
	"question", "type", "category", "difficulty", "options",
	"correct_answer", "points", "tags", "explanation",
}

// ===== IMPORT OPERATIONS =====

func (s *importExportService) ImportQuestionsFromFile(ctx context.Context, file multipart.File, filename string, creatorID string) (*ImportResult, error) {
	s.logger.Info("Starting file import", "filename", filename, "creator_id", creatorID)

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv":
		return s.ImportQuestionsFromCSV(ctx, file, creatorID)
	case ".xlsx", ".xls":
		return s.ImportQuestionsFromExcel(ctx, file, creatorID)
	default:
		return nil, NewValidationError("file", "unsupported file format", ext)
	}
}

func (s *importExportService) ImportQuestionsFromCSV(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return s.importRows(ctx, records, creatorID, "CSV")
}

func (s *importExportService) ImportQuestionsFromExcel(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewValidationError("file", "Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}

	return s.importRows(ctx, rows, creatorID, "Excel")
}

func (s *importExportService) importRows(ctx context.Context, rows [][]string, creatorID, format string) (*ImportResult, error) {
	if len(rows) < 2 {
		return nil, NewValidationError("file", "file must have a header row and at least one data row", len(rows))
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	for _, col := range []string{"question", "category", "correct_answer"} {
		if _, exists := headerMap[col]; !exists {
			return nil, NewValidationError("headers", fmt.Sprintf("missing required column: %s", col), col)
		}
	}

	result := &ImportResult{TotalRows: len(rows) - 1}

	var questions []*models.Question
	for rowIndex, row := range rows[1:] {
		question, rowErrors := s.parseRow(row, headerMap, rowIndex+2, creatorID)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorCount++
			continue
		}
		questions = append(questions, question)
		result.SuccessCount++
	}

	if len(questions) > 0 {
		if err := s.repo.Question().CreateBatch(ctx, questions); err != nil {
			return nil, fmt.Errorf("failed to save questions: %w", err)
		}
	}

	result.Questions = questions

	s.logger.Info("Import completed",
		"format", format,
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)

	return result, nil
}

func (s *importExportService) parseRow(row []string, headerMap map[string]int, rowNum int, creatorID string) (*models.Question, []ImportRowError) {
	var errs []ImportRowError
	cell := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	question := &models.Question{
		Question:   cell("question"),
		Category:   cell("category"),
		Type:       models.QuestionMCQ,
		Difficulty: models.DifficultyMedium,
		Points:     1,
		CreatedBy:  creatorID,
	}

	if question.Question == "" {
		errs = append(errs, ImportRowError{Row: rowNum, Field: "question", Message: "question text is required"})
	}
	if question.Category == "" {
		errs = append(errs, ImportRowError{Row: rowNum, Field: "category", Message: "category is required"})
	}

	if raw := cell("type"); raw != "" {
		question.Type = models.QuestionType(strings.ToLower(raw))
	}
	if raw := cell("difficulty"); raw != "" {
		question.Difficulty = models.DifficultyLevel(strings.ToLower(raw))
	}
	if raw := cell("options"); raw != "" {
		question.Options = strings.Split(raw, "|")
	}
	if raw := cell("correct_answer"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ImportRowError{Row: rowNum, Field: "correct_answer", Message: "must be an option index"})
		} else {
			question.CorrectAnswer = models.ChoiceAnswer(index)
		}
	}
	if raw := cell("points"); raw != "" {
		points, err := strconv.Atoi(raw)
		if err != nil || points < 1 {
			errs = append(errs, ImportRowError{Row: rowNum, Field: "points", Message: "must be a positive integer"})
		} else {
			question.Points = points
		}
	}
	if raw := cell("tags"); raw != "" {
		question.Tags = strings.Split(raw, "|")
	}
	if raw := cell("explanation"); raw != "" {
		question.Explanation = &raw
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, []ImportRowError{{Row: rowNum, Field: "question", Message: err.Error()}}
	}

	return question, nil
}

// ===== EXPORT OPERATIONS =====

func (s *importExportService) ExportQuestionsToCSV(ctx context.Context, filters repositories.QuestionFilters) ([]byte, error) {
	questions, _, err := s.repo.Question().List(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(questionExportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, question := range questions {
		if err := writer.Write(questionToRow(question)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *importExportService) ExportQuestionsToExcel(ctx context.Context, filters repositories.QuestionFilters) ([]byte, error) {
	questions, _, err := s.repo.Question().List(ctx, filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Questions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range questionExportHeaders {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, question := range questions {
		for col, value := range questionToRow(question) {
			cellName, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

func questionToRow(q *models.Question) []string {
	correct := ""
	if q.CorrectAnswer.Kind == models.AnswerChoiceIndex {
		correct = strconv.Itoa(q.CorrectAnswer.Choice)
	}
	explanation := ""
	if q.Explanation != nil {
		explanation = *q.Explanation
	}
	return []string{
		q.Question,
		string(q.Type),
		q.Category,
		string(q.Difficulty),
		strings.Join(q.Options, "|"),
		correct,
		strconv.Itoa(q.PointsOrDefault()),
		strings.Join(q.Tags, "|"),
		explanation,
	}
}
