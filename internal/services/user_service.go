package services

import (
	"context"
	"log/slog"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/validator"
)

// UserService manages internal ATS user accounts
type UserService interface {
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type CreateUserRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=100"`
	Role     models.UserRole `json:"role" validate:"omitempty,user_role"`
	Name     string          `json:"name" validate:"required,max=200"`
	Email    string          `json:"email" validate:"required,email"`
}

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleHR
	}

	user := &models.User{
		Username: req.Username,
		Role:     role,
		Name:     req.Name,
		Email:    req.Email,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", "username", req.Username, "error", err)
		return nil, err
	}

	s.logger.Info("User created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.User().GetByUsername(ctx, username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
