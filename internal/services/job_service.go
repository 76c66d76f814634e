package services

import (
	"context"
	"log/slog"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
)

// JobService manages job postings
type JobService interface {
	Create(ctx context.Context, req *CreateJobRequest, creatorID string) (*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context) ([]*models.Job, error)
	GetByCreator(ctx context.Context, creatorID string) ([]*models.Job, error)
	Update(ctx context.Context, id string, req *UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type CreateJobRequest struct {
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Department  string           `json:"department" validate:"required,max=100"`
	Location    string           `json:"location" validate:"required,max=200"`
	Experience  string           `json:"experience" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Skills      string           `json:"skills" validate:"required"`
	Salary      *string          `json:"salary"`
	Status      models.JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
}

type UpdateJobRequest struct {
	Title       *string           `json:"title" validate:"omitempty,min=1,max=200"`
	Department  *string           `json:"department" validate:"omitempty,max=100"`
	Location    *string           `json:"location" validate:"omitempty,max=200"`
	Experience  *string           `json:"experience"`
	Description *string           `json:"description"`
	Skills      *string           `json:"skills"`
	Salary      *string           `json:"salary"`
	Status      *models.JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
}

type jobService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewJobService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) JobService {
	return &jobService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *jobService) Create(ctx context.Context, req *CreateJobRequest, creatorID string) (*models.Job, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	status := req.Status
	if status == "" {
		status = models.JobActive
	}

	job := &models.Job{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Experience:  req.Experience,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
		Status:      status,
		CreatedBy:   creatorID,
	}

	if err := s.repo.Job().Create(ctx, job); err != nil {
		s.logger.Error("Failed to create job", "title", req.Title, "error", err)
		return nil, err
	}

	s.logger.Info("Job created", "job_id", job.ID, "title", job.Title)
	return job, nil
}

func (s *jobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.repo.Job().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context) ([]*models.Job, error) {
	return s.repo.Job().List(ctx)
}

func (s *jobService) GetByCreator(ctx context.Context, creatorID string) ([]*models.Job, error) {
	return s.repo.Job().GetByCreator(ctx, creatorID)
}

func (s *jobService) Update(ctx context.Context, id string, req *UpdateJobRequest) (*models.Job, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	job, err := s.repo.Job().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.repo.Job().Update(ctx, job); err != nil {
		s.logger.Error("Failed to update job", "job_id", id, "error", err)
		return nil, err
	}

	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Job().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrJobNotFound
		}
		return err
	}
	s.logger.Info("Job deleted", "job_id", id)
	return nil
}
