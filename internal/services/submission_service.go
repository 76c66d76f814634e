package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentflow/ats-service/internal/cache"
	"github.com/talentflow/ats-service/internal/events"
	"github.com/talentflow/ats-service/internal/grading"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/session"
	"github.com/talentflow/ats-service/internal/validator"
)

// How long a processed idempotency key stays reserved.
const idempotencyTTL = 24 * time.Hour

// SubmissionService manages candidate assessment attempts from start through
// grading. Grading always recomputes the score server-side from the stored
// question set; any score the client sends is ignored.
type SubmissionService interface {
	Start(ctx context.Context, req *StartSubmissionRequest) (*models.AssessmentSubmission, error)
	Submit(ctx context.Context, id string, req *SubmitRequest, idempotencyKey string) (*models.AssessmentSubmission, error)
	GetByID(ctx context.Context, id string) (*models.AssessmentSubmission, error)
	List(ctx context.Context, filters repositories.SubmissionFilters) ([]*models.AssessmentSubmission, int64, error)
	GetByCandidate(ctx context.Context, candidateID string) ([]*models.AssessmentSubmission, error)

	// SubmitDraft persists a finished timed-session attempt in one step. The
	// draft carries the exact question set the controller presented, so
	// grading uses it as-is instead of redrawing.
	SubmitDraft(ctx context.Context, draft *session.Draft) (*models.AssessmentSubmission, error)
}

type StartSubmissionRequest struct {
	AssessmentID  string `json:"assessmentId" validate:"required"`
	CandidateID   string `json:"candidateId" validate:"required"`
	ApplicationID string `json:"applicationId" validate:"required"`
}

type SubmitRequest struct {
	Answers       models.AnswerMap `json:"answers"`
	TimeSpent     int              `json:"timeSpent" validate:"omitempty,min=0"`
	AutoSubmitted bool             `json:"autoSubmitted"`
	Flagged       bool             `json:"flagged"`
}

type submissionService struct {
	repo      repositories.Repository
	questions QuestionBankService
	cache     cache.CacheService
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewSubmissionService(
	repo repositories.Repository,
	questions QuestionBankService,
	cacheService cache.CacheService,
	logger *slog.Logger,
	validator *validator.Validator,
	publisher events.EventPublisher,
) SubmissionService {
	return &submissionService{
		repo:      repo,
		questions: questions,
		cache:     cacheService,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// Start draws the candidate's question set and opens an in-progress attempt.
func (s *submissionService) Start(ctx context.Context, req *StartSubmissionRequest) (*models.AssessmentSubmission, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	assessment, err := s.repo.Assessment().GetByID(ctx, req.AssessmentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Application().GetByID(ctx, req.ApplicationID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	selected, err := s.questions.GenerateQuestionSet(ctx, assessment)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrAssessmentNoQuestion
	}

	questionIDs := make([]string, len(selected))
	for i, q := range selected {
		questionIDs[i] = q.ID
	}

	now := time.Now()
	submission := &models.AssessmentSubmission{
		AssessmentID:      req.AssessmentID,
		CandidateID:       req.CandidateID,
		ApplicationID:     req.ApplicationID,
		SelectedQuestions: questionIDs,
		Answers:           models.AnswerMap{},
		Status:            models.SubmissionInProgress,
		StartedAt:         &now,
	}

	if err := s.repo.Submission().Create(ctx, submission); err != nil {
		s.logger.Error("Failed to create submission",
			"assessment_id", req.AssessmentID,
			"candidate_id", req.CandidateID,
			"error", err)
		return nil, err
	}

	s.logger.Info("Submission started",
		"submission_id", submission.ID,
		"assessment_id", req.AssessmentID,
		"question_count", len(questionIDs))
	return submission, nil
}

// Submit grades and finalizes an in-progress attempt. A non-empty
// idempotencyKey makes retries safe: the first request to commit wins,
// replays of it get the original record back, and a failed attempt releases
// the key so the same retry can still go through.
func (s *submissionService) Submit(ctx context.Context, id string, req *SubmitRequest, idempotencyKey string) (*models.AssessmentSubmission, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	reservedKey := ""
	if idempotencyKey != "" {
		key := fmt.Sprintf("idempotency:submission:%s", idempotencyKey)
		acquired, err := s.cache.SetNX(ctx, key, id, idempotencyTTL)
		switch {
		case err != nil:
			// Redis being down must not block submissions.
			s.logger.Warn("Idempotency check unavailable", "key", idempotencyKey, "error", err)
		case !acquired:
			return s.replaySubmission(ctx, key)
		default:
			reservedKey = key
		}
	}

	submission, err := s.repo.Submission().GetByID(ctx, id)
	if err != nil {
		s.releaseIdempotencyKey(ctx, reservedKey)
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	switch submission.Status {
	case models.SubmissionSubmitted, models.SubmissionGraded:
		s.releaseIdempotencyKey(ctx, reservedKey)
		return nil, ErrSubmissionAlreadySubmitted
	case models.SubmissionInProgress:
	default:
		s.releaseIdempotencyKey(ctx, reservedKey)
		return nil, ErrSubmissionNotInProgress
	}

	questions, err := s.repo.Question().GetByIDs(ctx, submission.SelectedQuestions)
	if err != nil {
		s.releaseIdempotencyKey(ctx, reservedKey)
		return nil, err
	}

	answers := req.Answers
	if answers == nil {
		answers = models.AnswerMap{}
	}

	result := grading.Score(questions, answers)

	now := time.Now()
	submission.Answers = answers
	submission.Score = result.Score
	submission.MaxScore = result.MaxScore
	submission.Percentage = result.Percentage
	submission.CategoryScores = result.CategoryScores
	submission.TimeSpent = req.TimeSpent
	submission.Flagged = req.Flagged
	submission.Status = models.SubmissionGraded
	submission.SubmittedAt = &now
	submission.GradedAt = &now

	if err := s.repo.Submission().Update(ctx, submission); err != nil {
		s.logger.Error("Failed to persist submission", "submission_id", id, "error", err)
		s.releaseIdempotencyKey(ctx, reservedKey)
		return nil, err
	}

	if submission.Flagged {
		s.logger.Warn("Submission flagged for review",
			"submission_id", submission.ID,
			"candidate_id", submission.CandidateID)
	}

	s.publishSubmissionEvents(ctx, submission, req.AutoSubmitted)

	s.logger.Info("Submission graded",
		"submission_id", submission.ID,
		"score", submission.Score,
		"max_score", submission.MaxScore,
		"percentage", submission.Percentage,
		"auto_submitted", req.AutoSubmitted)

	return submission, nil
}

// replaySubmission serves a retry whose idempotency key is already reserved.
// The key stores the submission id written by the winning request; the retry
// gets that record back instead of a duplicate write.
func (s *submissionService) replaySubmission(ctx context.Context, key string) (*models.AssessmentSubmission, error) {
	var submissionID string
	if err := s.cache.Get(ctx, key, &submissionID); err != nil || submissionID == "" {
		return nil, ErrDuplicateSubmission
	}

	submission, err := s.repo.Submission().GetByID(ctx, submissionID)
	if err != nil {
		return nil, ErrDuplicateSubmission
	}

	s.logger.Info("Idempotent replay served", "submission_id", submission.ID)
	return submission, nil
}

// releaseIdempotencyKey frees a reserved key after a failed submit so the
// client can retry with the same key. Only committed submissions keep their
// key reserved.
func (s *submissionService) releaseIdempotencyKey(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to release idempotency key", "key", key, "error", err)
	}
}

func (s *submissionService) SubmitDraft(ctx context.Context, draft *session.Draft) (*models.AssessmentSubmission, error) {
	result := grading.Score(draft.Questions, draft.Answers)

	questionIDs := make([]string, len(draft.Questions))
	for i, q := range draft.Questions {
		questionIDs[i] = q.ID
	}

	now := time.Now()
	startedAt := draft.StartedAt
	submission := &models.AssessmentSubmission{
		AssessmentID:      draft.AssessmentID,
		CandidateID:       draft.CandidateID,
		ApplicationID:     draft.ApplicationID,
		SelectedQuestions: questionIDs,
		Answers:           draft.Answers,
		Score:             result.Score,
		MaxScore:          result.MaxScore,
		Percentage:        result.Percentage,
		CategoryScores:    result.CategoryScores,
		TimeSpent:         draft.TimeSpent,
		Status:            models.SubmissionGraded,
		StartedAt:         &startedAt,
		SubmittedAt:       &now,
		GradedAt:          &now,
	}

	if err := s.repo.Submission().Create(ctx, submission); err != nil {
		s.logger.Error("Failed to persist session draft",
			"assessment_id", draft.AssessmentID,
			"candidate_id", draft.CandidateID,
			"error", err)
		return nil, err
	}

	s.publishSubmissionEvents(ctx, submission, draft.AutoSubmitted)

	s.logger.Info("Session submission graded",
		"submission_id", submission.ID,
		"score", submission.Score,
		"max_score", submission.MaxScore,
		"auto_submitted", draft.AutoSubmitted)

	return submission, nil
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*models.AssessmentSubmission, error) {
	submission, err := s.repo.Submission().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) List(ctx context.Context, filters repositories.SubmissionFilters) ([]*models.AssessmentSubmission, int64, error) {
	return s.repo.Submission().List(ctx, filters)
}

func (s *submissionService) GetByCandidate(ctx context.Context, candidateID string) ([]*models.AssessmentSubmission, error) {
	return s.repo.Submission().GetByCandidate(ctx, candidateID)
}

// publishSubmissionEvents emits submitted and graded events. Delivery is best
// effort; the submission is already durable.
func (s *submissionService) publishSubmissionEvents(ctx context.Context, submission *models.AssessmentSubmission, autoSubmitted bool) {
	passed := false
	if assessment, err := s.repo.Assessment().GetByID(ctx, submission.AssessmentID); err == nil {
		passed = submission.Percentage >= assessment.PassingScore
	}

	for _, event := range []*events.RecruitingEvent{
		events.NewSubmissionSubmittedEvent(submission, autoSubmitted),
		events.NewSubmissionGradedEvent(submission, passed),
	} {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish submission event",
				"submission_id", submission.ID,
				"event_type", event.Type,
				"error", err)
		}
	}
}
