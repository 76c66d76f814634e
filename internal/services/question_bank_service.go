package services

import (
	"context"
	"log/slog"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/selection"
	"github.com/talentflow/ats-service/internal/validator"
)

// QuestionBankService manages the reusable question pool and draws
// per-candidate question sets from it.
type QuestionBankService interface {
	Create(ctx context.Context, req *CreateQuestionRequest, creatorID string) (*models.Question, error)
	CreateBulk(ctx context.Context, reqs []*CreateQuestionRequest, creatorID string) ([]*models.Question, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, req *UpdateQuestionRequest) (*models.Question, error)
	Delete(ctx context.Context, id string) error

	// GenerateQuestionSet realizes an assessment's filter into a concrete
	// random question set. A bank smaller than the requested count yields a
	// short set, not an error.
	GenerateQuestionSet(ctx context.Context, assessment *models.Assessment) ([]*models.Question, error)
}

type CreateQuestionRequest struct {
	Question      string                 `json:"question" validate:"required"`
	Type          models.QuestionType    `json:"type" validate:"omitempty,question_type"`
	Category      string                 `json:"category" validate:"required,max=100"`
	Difficulty    models.DifficultyLevel `json:"difficulty" validate:"omitempty,difficulty_level"`
	Options       []string               `json:"options"`
	CorrectAnswer models.AnswerValue     `json:"correctAnswer"`
	Explanation   *string                `json:"explanation"`
	Points        int                    `json:"points" validate:"omitempty,min=1,max=100"`
	Tags          []string               `json:"tags"`
}

type UpdateQuestionRequest struct {
	Question      *string                 `json:"question"`
	Category      *string                 `json:"category" validate:"omitempty,max=100"`
	Difficulty    *models.DifficultyLevel `json:"difficulty" validate:"omitempty,difficulty_level"`
	Options       []string                `json:"options"`
	CorrectAnswer *models.AnswerValue     `json:"correctAnswer"`
	Explanation   *string                 `json:"explanation"`
	Points        *int                    `json:"points" validate:"omitempty,min=1,max=100"`
	Tags          []string                `json:"tags"`
}

type questionBankService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	selector  *selection.Selector
}

func NewQuestionBankService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, selector *selection.Selector) QuestionBankService {
	return &questionBankService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		selector:  selector,
	}
}

func (s *questionBankService) Create(ctx context.Context, req *CreateQuestionRequest, creatorID string) (*models.Question, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	question := s.buildQuestion(req, creatorID)
	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, NewValidationError("question", err.Error(), nil)
	}

	if err := s.repo.Question().Create(ctx, question); err != nil {
		s.logger.Error("Failed to create question", "category", req.Category, "error", err)
		return nil, err
	}

	s.logger.Info("Question created", "question_id", question.ID, "category", question.Category)
	return question, nil
}

func (s *questionBankService) CreateBulk(ctx context.Context, reqs []*CreateQuestionRequest, creatorID string) ([]*models.Question, error) {
	if len(reqs) == 0 {
		return nil, NewValidationError("questions", "bulk request cannot be empty", nil)
	}

	questions := make([]*models.Question, 0, len(reqs))
	for _, req := range reqs {
		if err := s.validator.ValidateStruct(req); err != nil {
			return nil, validator.ToValidationErrors(err)
		}
		questions = append(questions, s.buildQuestion(req, creatorID))
	}

	if err := s.validator.Question().ValidateQuestionBatch(questions); err != nil {
		return nil, NewValidationError("questions", err.Error(), nil)
	}

	if err := s.repo.Question().CreateBatch(ctx, questions); err != nil {
		s.logger.Error("Failed to create question batch", "count", len(questions), "error", err)
		return nil, err
	}

	s.logger.Info("Question batch created", "count", len(questions))
	return questions, nil
}

func (s *questionBankService) GetByID(ctx context.Context, id string) (*models.Question, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *questionBankService) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error) {
	return s.repo.Question().List(ctx, filters)
}

func (s *questionBankService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.Question().ListCategories(ctx)
}

func (s *questionBankService) Update(ctx context.Context, id string, req *UpdateQuestionRequest) (*models.Question, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Category != nil {
		question.Category = *req.Category
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Explanation != nil {
		question.Explanation = req.Explanation
	}
	if req.Points != nil {
		question.Points = *req.Points
	}
	if req.Tags != nil {
		question.Tags = req.Tags
	}

	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, NewValidationError("question", err.Error(), nil)
	}

	if err := s.repo.Question().Update(ctx, question); err != nil {
		s.logger.Error("Failed to update question", "question_id", id, "error", err)
		return nil, err
	}

	return question, nil
}

func (s *questionBankService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Question().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return err
	}
	s.logger.Info("Question deleted", "question_id", id)
	return nil
}

func (s *questionBankService) GenerateQuestionSet(ctx context.Context, assessment *models.Assessment) ([]*models.Question, error) {
	if assessment.Type == models.AssessmentManual {
		questions, err := s.repo.Question().GetByIDs(ctx, assessment.Questions)
		if err != nil {
			return nil, err
		}
		return questions, nil
	}

	filter := selection.Filter{
		Categories:   assessment.Categories,
		Difficulties: assessment.AllowedDifficulties(),
	}

	// Fetch the filtered pool once; the selector draws the random sample.
	pool, _, err := s.repo.Question().List(ctx, repositories.QuestionFilters{
		Categories:   filter.Categories,
		Difficulties: filter.Difficulties,
	})
	if err != nil {
		return nil, err
	}

	count := assessment.QuestionCount
	if count <= 0 {
		count = 20
	}

	selected := s.selector.Pick(pool, filter, count)

	s.logger.Info("Question set generated",
		"assessment_id", assessment.ID,
		"requested", count,
		"selected", len(selected),
		"pool_size", len(pool))

	return selected, nil
}

func (s *questionBankService) buildQuestion(req *CreateQuestionRequest, creatorID string) *models.Question {
	questionType := req.Type
	if questionType == "" {
		questionType = models.QuestionMCQ
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	points := req.Points
	if points == 0 {
		points = 1
	}

	return &models.Question{
		Question:      req.Question,
		Type:          questionType,
		Category:      req.Category,
		Difficulty:    difficulty,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Points:        points,
		Tags:          req.Tags,
		CreatedBy:     creatorID,
	}
}
