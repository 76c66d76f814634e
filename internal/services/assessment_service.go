package services

import (
	"context"
	"log/slog"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
)

// AssessmentService manages assessment templates
type AssessmentService interface {
	Create(ctx context.Context, req *CreateAssessmentRequest, creatorID string) (*models.Assessment, error)
	GetByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context) ([]*models.Assessment, error)
	GetByJob(ctx context.Context, jobID string) ([]*models.Assessment, error)
	Update(ctx context.Context, id string, req *UpdateAssessmentRequest) (*models.Assessment, error)
	Delete(ctx context.Context, id string) error
}

type CreateAssessmentRequest struct {
	Title              string                   `json:"title" validate:"required,min=1,max=200"`
	Description        *string                  `json:"description"`
	Type               models.AssessmentType    `json:"type" validate:"omitempty,oneof=auto manual hybrid"`
	Categories         []string                 `json:"categories"`
	Difficulty         []models.DifficultyLevel `json:"difficulty" validate:"omitempty,dive,difficulty_level"`
	QuestionCount      int                      `json:"questionCount" validate:"omitempty,min=1,max=200"`
	RandomizeQuestions *bool                    `json:"randomizeQuestions"`
	ShuffleOptions     *bool                    `json:"shuffleOptions"`
	Questions          []string                 `json:"questions"`
	TimeLimit          int                      `json:"timeLimit" validate:"omitempty,min=1,max=480"`
	PassingScore       int                      `json:"passingScore" validate:"omitempty,min=0,max=100"`
	AllowReview        *bool                    `json:"allowReview"`
	ShowResults        *bool                    `json:"showResults"`
	PreventCheating    *bool                    `json:"preventCheating"`
	JobID              *string                  `json:"jobId"`
}

type UpdateAssessmentRequest struct {
	Title           *string                  `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string                  `json:"description"`
	Categories      []string                 `json:"categories"`
	Difficulty      []models.DifficultyLevel `json:"difficulty" validate:"omitempty,dive,difficulty_level"`
	QuestionCount   *int                     `json:"questionCount" validate:"omitempty,min=1,max=200"`
	Questions       []string                 `json:"questions"`
	TimeLimit       *int                     `json:"timeLimit" validate:"omitempty,min=1,max=480"`
	PassingScore    *int                     `json:"passingScore" validate:"omitempty,min=0,max=100"`
	AllowReview     *bool                    `json:"allowReview"`
	ShowResults     *bool                    `json:"showResults"`
	PreventCheating *bool                    `json:"preventCheating"`
	JobID           *string                  `json:"jobId"`
}

type assessmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAssessmentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AssessmentService {
	return &assessmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *assessmentService) Create(ctx context.Context, req *CreateAssessmentRequest, creatorID string) (*models.Assessment, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	assessmentType := req.Type
	if assessmentType == "" {
		assessmentType = models.AssessmentAuto
	}
	questionCount := req.QuestionCount
	if questionCount == 0 {
		questionCount = 20
	}
	timeLimit := req.TimeLimit
	if timeLimit == 0 {
		timeLimit = 60
	}
	passingScore := req.PassingScore
	if passingScore == 0 {
		passingScore = 70
	}

	assessment := &models.Assessment{
		Title:              req.Title,
		Description:        req.Description,
		Type:               assessmentType,
		Categories:         req.Categories,
		Difficulty:         req.Difficulty,
		QuestionCount:      questionCount,
		RandomizeQuestions: boolOrDefault(req.RandomizeQuestions, true),
		ShuffleOptions:     boolOrDefault(req.ShuffleOptions, true),
		Questions:          req.Questions,
		TimeLimit:          timeLimit,
		PassingScore:       passingScore,
		AllowReview:        boolOrDefault(req.AllowReview, true),
		ShowResults:        boolOrDefault(req.ShowResults, true),
		PreventCheating:    boolOrDefault(req.PreventCheating, true),
		JobID:              req.JobID,
		CreatedBy:          creatorID,
	}

	if err := s.repo.Assessment().Create(ctx, assessment); err != nil {
		s.logger.Error("Failed to create assessment", "title", req.Title, "error", err)
		return nil, err
	}

	s.logger.Info("Assessment created", "assessment_id", assessment.ID, "title", assessment.Title)
	return assessment, nil
}

func (s *assessmentService) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	assessment, err := s.repo.Assessment().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return assessment, nil
}

func (s *assessmentService) List(ctx context.Context) ([]*models.Assessment, error) {
	return s.repo.Assessment().List(ctx)
}

func (s *assessmentService) GetByJob(ctx context.Context, jobID string) ([]*models.Assessment, error) {
	return s.repo.Assessment().GetByJob(ctx, jobID)
}

func (s *assessmentService) Update(ctx context.Context, id string, req *UpdateAssessmentRequest) (*models.Assessment, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	assessment, err := s.repo.Assessment().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		assessment.Title = *req.Title
	}
	if req.Description != nil {
		assessment.Description = req.Description
	}
	if req.Categories != nil {
		assessment.Categories = req.Categories
	}
	if req.Difficulty != nil {
		assessment.Difficulty = req.Difficulty
	}
	if req.QuestionCount != nil {
		assessment.QuestionCount = *req.QuestionCount
	}
	if req.Questions != nil {
		assessment.Questions = req.Questions
	}
	if req.TimeLimit != nil {
		assessment.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		assessment.PassingScore = *req.PassingScore
	}
	if req.AllowReview != nil {
		assessment.AllowReview = *req.AllowReview
	}
	if req.ShowResults != nil {
		assessment.ShowResults = *req.ShowResults
	}
	if req.PreventCheating != nil {
		assessment.PreventCheating = *req.PreventCheating
	}
	if req.JobID != nil {
		assessment.JobID = req.JobID
	}

	if err := s.repo.Assessment().Update(ctx, assessment); err != nil {
		s.logger.Error("Failed to update assessment", "assessment_id", id, "error", err)
		return nil, err
	}

	return assessment, nil
}

func (s *assessmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Assessment().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAssessmentNotFound
		}
		return err
	}
	s.logger.Info("Assessment deleted", "assessment_id", id)
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
