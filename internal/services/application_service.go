package services

import (
	"context"
	"log/slog"

	"github.com/talentflow/ats-service/internal/events"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
)

// ApplicationService manages the candidate pipeline
type ApplicationService interface {
	Create(ctx context.Context, req *CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	GetByJob(ctx context.Context, jobID string) ([]*models.Application, error)
	GetByCandidate(ctx context.Context, candidateID string) ([]*models.Application, error)
	Update(ctx context.Context, id string, req *UpdateApplicationRequest) (*models.Application, error)
}

type CreateApplicationRequest struct {
	JobID       string  `json:"jobId" validate:"required"`
	CandidateID string  `json:"candidateId" validate:"required"`
	Notes       *string `json:"notes"`
}

type UpdateApplicationRequest struct {
	Status *models.ApplicationStatus `json:"status" validate:"omitempty,oneof=applied screening assessment interview offer hired rejected"`
	Stage  *models.ApplicationStage  `json:"stage" validate:"omitempty,application_stage"`
	Score  *int                      `json:"score" validate:"omitempty,min=0,max=100"`
	Notes  *string                   `json:"notes"`
}

type applicationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewApplicationService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ApplicationService {
	return &applicationService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *applicationService) Create(ctx context.Context, req *CreateApplicationRequest) (*models.Application, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	if _, err := s.repo.Job().GetByID(ctx, req.JobID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Candidate().GetByID(ctx, req.CandidateID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	application := &models.Application{
		JobID:       req.JobID,
		CandidateID: req.CandidateID,
		Status:      models.ApplicationApplied,
		Stage:       models.StageReview,
		Notes:       req.Notes,
	}

	if err := s.repo.Application().Create(ctx, application); err != nil {
		s.logger.Error("Failed to create application",
			"job_id", req.JobID,
			"candidate_id", req.CandidateID,
			"error", err)
		return nil, err
	}

	s.logger.Info("Application created", "application_id", application.ID)
	return application, nil
}

func (s *applicationService) GetByID(ctx context.Context, id string) (*models.Application, error) {
	application, err := s.repo.Application().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return application, nil
}

func (s *applicationService) List(ctx context.Context) ([]*models.Application, error) {
	return s.repo.Application().List(ctx)
}

func (s *applicationService) GetByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	return s.repo.Application().GetByJob(ctx, jobID)
}

func (s *applicationService) GetByCandidate(ctx context.Context, candidateID string) ([]*models.Application, error) {
	return s.repo.Application().GetByCandidate(ctx, candidateID)
}

func (s *applicationService) Update(ctx context.Context, id string, req *UpdateApplicationRequest) (*models.Application, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	application, err := s.repo.Application().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	previousStage := application.Stage

	if req.Status != nil {
		application.Status = *req.Status
	}
	if req.Stage != nil {
		application.Stage = *req.Stage
	}
	if req.Score != nil {
		application.Score = req.Score
	}
	if req.Notes != nil {
		application.Notes = req.Notes
	}

	if err := s.repo.Application().Update(ctx, application); err != nil {
		s.logger.Error("Failed to update application", "application_id", id, "error", err)
		return nil, err
	}

	if application.Stage != previousStage {
		// Event delivery is best effort; a broker outage must not fail the update.
		event := events.NewApplicationStageChangedEvent(application, previousStage)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish stage change event",
				"application_id", application.ID,
				"error", err)
		}
	}

	return application, nil
}
