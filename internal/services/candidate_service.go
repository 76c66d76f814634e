package services

import (
	"context"
	"log/slog"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
)

// CandidateService manages candidate profiles
type CandidateService interface {
	Create(ctx context.Context, req *CreateCandidateRequest) (*models.Candidate, error)
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	List(ctx context.Context) ([]*models.Candidate, error)
	Update(ctx context.Context, id string, req *UpdateCandidateRequest) (*models.Candidate, error)
}

type CreateCandidateRequest struct {
	Name       string   `json:"name" validate:"required,max=200"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      *string  `json:"phone"`
	Resume     *string  `json:"resume"`
	Skills     []string `json:"skills"`
	Experience *string  `json:"experience"`
	Education  *string  `json:"education"`
}

type UpdateCandidateRequest struct {
	Name       *string                 `json:"name" validate:"omitempty,max=200"`
	Phone      *string                 `json:"phone"`
	Resume     *string                 `json:"resume"`
	Skills     []string                `json:"skills"`
	Experience *string                 `json:"experience"`
	Education  *string                 `json:"education"`
	Status     *models.CandidateStatus `json:"status" validate:"omitempty,oneof=new screening interview offer hired rejected"`
}

type candidateService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCandidateService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) CandidateService {
	return &candidateService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *candidateService) Create(ctx context.Context, req *CreateCandidateRequest) (*models.Candidate, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	if existing, err := s.repo.Candidate().GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrCandidateDuplicateEmail
	}

	candidate := &models.Candidate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Resume:     req.Resume,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		Status:     models.CandidateNew,
	}

	if err := s.repo.Candidate().Create(ctx, candidate); err != nil {
		s.logger.Error("Failed to create candidate", "email", req.Email, "error", err)
		return nil, err
	}

	s.logger.Info("Candidate created", "candidate_id", candidate.ID)
	return candidate, nil
}

func (s *candidateService) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	candidate, err := s.repo.Candidate().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return candidate, nil
}

func (s *candidateService) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	candidate, err := s.repo.Candidate().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return candidate, nil
}

func (s *candidateService) List(ctx context.Context) ([]*models.Candidate, error) {
	return s.repo.Candidate().List(ctx)
}

func (s *candidateService) Update(ctx context.Context, id string, req *UpdateCandidateRequest) (*models.Candidate, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	candidate, err := s.repo.Candidate().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Phone != nil {
		candidate.Phone = req.Phone
	}
	if req.Resume != nil {
		candidate.Resume = req.Resume
	}
	if req.Skills != nil {
		candidate.Skills = req.Skills
	}
	if req.Experience != nil {
		candidate.Experience = req.Experience
	}
	if req.Education != nil {
		candidate.Education = req.Education
	}
	if req.Status != nil {
		candidate.Status = *req.Status
	}

	if err := s.repo.Candidate().Update(ctx, candidate); err != nil {
		s.logger.Error("Failed to update candidate", "candidate_id", id, "error", err)
		return nil, err
	}

	return candidate, nil
}
