package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/talentflow/ats-service/internal/events"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
)

// InterviewService manages interview panels and scheduled interviews
type InterviewService interface {
	CreatePanel(ctx context.Context, req *CreatePanelRequest) (*models.InterviewPanel, error)
	GetPanel(ctx context.Context, id string) (*models.InterviewPanel, error)
	ListPanels(ctx context.Context) ([]*models.InterviewPanel, error)
	GetPanelsByJob(ctx context.Context, jobID string) ([]*models.InterviewPanel, error)
	UpdatePanel(ctx context.Context, id string, req *UpdatePanelRequest) (*models.InterviewPanel, error)
	DeletePanel(ctx context.Context, id string) error

	Schedule(ctx context.Context, req *ScheduleInterviewRequest) (*models.Interview, error)
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	List(ctx context.Context) ([]*models.Interview, error)
	GetByApplication(ctx context.Context, applicationID string) ([]*models.Interview, error)
	GetUpcoming(ctx context.Context) ([]*models.Interview, error)
	Update(ctx context.Context, id string, req *UpdateInterviewRequest) (*models.Interview, error)
}

type CreatePanelRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  *string  `json:"description"`
	Interviewers []string `json:"interviewers"`
	JobID        *string  `json:"jobId"`
}

type UpdatePanelRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=200"`
	Description  *string  `json:"description"`
	Interviewers []string `json:"interviewers"`
	JobID        *string  `json:"jobId"`
}

type ScheduleInterviewRequest struct {
	ApplicationID string               `json:"applicationId" validate:"required"`
	PanelID       *string              `json:"panelId"`
	ScheduledAt   time.Time            `json:"scheduledAt" validate:"required"`
	Duration      int                  `json:"duration" validate:"omitempty,min=15,max=480"`
	Type          models.InterviewType `json:"type" validate:"omitempty,oneof=technical hr behavioral final"`
}

type UpdateInterviewRequest struct {
	ScheduledAt      *time.Time              `json:"scheduledAt"`
	Duration         *int                    `json:"duration" validate:"omitempty,min=15,max=480"`
	Status           *models.InterviewStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Feedback         *string                 `json:"feedback"`
	Score            *int                    `json:"score" validate:"omitempty,min=0,max=100"`
	InterviewerNotes map[string]string       `json:"interviewerNotes"`
}

type interviewService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewInterviewService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) InterviewService {
	return &interviewService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// ===== PANELS =====

func (s *interviewService) CreatePanel(ctx context.Context, req *CreatePanelRequest) (*models.InterviewPanel, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	panel := &models.InterviewPanel{
		Name:         req.Name,
		Description:  req.Description,
		Interviewers: req.Interviewers,
		JobID:        req.JobID,
	}

	if err := s.repo.InterviewPanel().Create(ctx, panel); err != nil {
		s.logger.Error("Failed to create interview panel", "name", req.Name, "error", err)
		return nil, err
	}

	return panel, nil
}

func (s *interviewService) GetPanel(ctx context.Context, id string) (*models.InterviewPanel, error) {
	panel, err := s.repo.InterviewPanel().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPanelNotFound
		}
		return nil, err
	}
	return panel, nil
}

func (s *interviewService) ListPanels(ctx context.Context) ([]*models.InterviewPanel, error) {
	return s.repo.InterviewPanel().List(ctx)
}

func (s *interviewService) GetPanelsByJob(ctx context.Context, jobID string) ([]*models.InterviewPanel, error) {
	return s.repo.InterviewPanel().GetByJob(ctx, jobID)
}

func (s *interviewService) UpdatePanel(ctx context.Context, id string, req *UpdatePanelRequest) (*models.InterviewPanel, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	panel, err := s.repo.InterviewPanel().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPanelNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		panel.Name = *req.Name
	}
	if req.Description != nil {
		panel.Description = req.Description
	}
	if req.Interviewers != nil {
		panel.Interviewers = req.Interviewers
	}
	if req.JobID != nil {
		panel.JobID = req.JobID
	}

	if err := s.repo.InterviewPanel().Update(ctx, panel); err != nil {
		return nil, err
	}
	return panel, nil
}

func (s *interviewService) DeletePanel(ctx context.Context, id string) error {
	if err := s.repo.InterviewPanel().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrPanelNotFound
		}
		return err
	}
	return nil
}

// ===== INTERVIEWS =====

func (s *interviewService) Schedule(ctx context.Context, req *ScheduleInterviewRequest) (*models.Interview, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	if _, err := s.repo.Application().GetByID(ctx, req.ApplicationID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	duration := req.Duration
	if duration == 0 {
		duration = 60
	}
	interviewType := req.Type
	if interviewType == "" {
		interviewType = models.InterviewTechnical
	}

	interview := &models.Interview{
		ApplicationID: req.ApplicationID,
		PanelID:       req.PanelID,
		ScheduledAt:   req.ScheduledAt,
		Duration:      duration,
		Type:          interviewType,
		Status:        models.InterviewScheduled,
	}

	if err := s.repo.Interview().Create(ctx, interview); err != nil {
		s.logger.Error("Failed to schedule interview",
			"application_id", req.ApplicationID,
			"error", err)
		return nil, err
	}

	event := events.NewInterviewScheduledEvent(interview)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish interview scheduled event",
			"interview_id", interview.ID,
			"error", err)
	}

	s.logger.Info("Interview scheduled",
		"interview_id", interview.ID,
		"scheduled_at", interview.ScheduledAt)
	return interview, nil
}

func (s *interviewService) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	interview, err := s.repo.Interview().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return interview, nil
}

func (s *interviewService) List(ctx context.Context) ([]*models.Interview, error) {
	return s.repo.Interview().List(ctx)
}

func (s *interviewService) GetByApplication(ctx context.Context, applicationID string) ([]*models.Interview, error) {
	return s.repo.Interview().GetByApplication(ctx, applicationID)
}

func (s *interviewService) GetUpcoming(ctx context.Context) ([]*models.Interview, error) {
	return s.repo.Interview().GetUpcoming(ctx)
}

func (s *interviewService) Update(ctx context.Context, id string, req *UpdateInterviewRequest) (*models.Interview, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	interview, err := s.repo.Interview().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	if req.ScheduledAt != nil {
		interview.ScheduledAt = *req.ScheduledAt
	}
	if req.Duration != nil {
		interview.Duration = *req.Duration
	}
	if req.Status != nil {
		interview.Status = *req.Status
	}
	if req.Feedback != nil {
		interview.Feedback = req.Feedback
	}
	if req.Score != nil {
		interview.Score = req.Score
	}
	if req.InterviewerNotes != nil {
		interview.InterviewerNotes = req.InterviewerNotes
	}

	if err := s.repo.Interview().Update(ctx, interview); err != nil {
		s.logger.Error("Failed to update interview", "interview_id", id, "error", err)
		return nil, err
	}

	return interview, nil
}
