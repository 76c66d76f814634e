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

// OfferService manages offer letters
type OfferService interface {
	Create(ctx context.Context, req *CreateOfferRequest) (*models.OfferLetter, error)
	GetByID(ctx context.Context, id string) (*models.OfferLetter, error)
	GetByApplication(ctx context.Context, applicationID string) (*models.OfferLetter, error)
	List(ctx context.Context) ([]*models.OfferLetter, error)
	Update(ctx context.Context, id string, req *UpdateOfferRequest) (*models.OfferLetter, error)
	Send(ctx context.Context, id string) (*models.OfferLetter, error)
}

type CreateOfferRequest struct {
	ApplicationID string     `json:"applicationId" validate:"required"`
	Title         string     `json:"title" validate:"required,max=200"`
	Salary        string     `json:"salary" validate:"required,max=100"`
	StartDate     *time.Time `json:"startDate"`
	Template      *string    `json:"template"`
	CustomContent *string    `json:"customContent"`
}

type UpdateOfferRequest struct {
	Title         *string             `json:"title" validate:"omitempty,max=200"`
	Salary        *string             `json:"salary" validate:"omitempty,max=100"`
	StartDate     *time.Time          `json:"startDate"`
	Template      *string             `json:"template"`
	CustomContent *string             `json:"customContent"`
	Status        *models.OfferStatus `json:"status" validate:"omitempty,oneof=draft sent accepted rejected withdrawn"`
}

type offerService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewOfferService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) OfferService {
	return &offerService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *offerService) Create(ctx context.Context, req *CreateOfferRequest) (*models.OfferLetter, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	if _, err := s.repo.Application().GetByID(ctx, req.ApplicationID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	// One offer per application.
	if existing, err := s.repo.Offer().GetByApplication(ctx, req.ApplicationID); err == nil && existing != nil {
		return nil, ErrOfferExists
	}

	offer := &models.OfferLetter{
		ApplicationID: req.ApplicationID,
		Title:         req.Title,
		Salary:        req.Salary,
		StartDate:     req.StartDate,
		Template:      req.Template,
		CustomContent: req.CustomContent,
		Status:        models.OfferDraft,
	}

	if err := s.repo.Offer().Create(ctx, offer); err != nil {
		s.logger.Error("Failed to create offer", "application_id", req.ApplicationID, "error", err)
		return nil, err
	}

	s.logger.Info("Offer created", "offer_id", offer.ID)
	return offer, nil
}

func (s *offerService) GetByID(ctx context.Context, id string) (*models.OfferLetter, error) {
	offer, err := s.repo.Offer().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *offerService) GetByApplication(ctx context.Context, applicationID string) (*models.OfferLetter, error) {
	offer, err := s.repo.Offer().GetByApplication(ctx, applicationID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *offerService) List(ctx context.Context) ([]*models.OfferLetter, error) {
	return s.repo.Offer().List(ctx)
}

func (s *offerService) Update(ctx context.Context, id string, req *UpdateOfferRequest) (*models.OfferLetter, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	offer, err := s.repo.Offer().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Salary != nil {
		offer.Salary = *req.Salary
	}
	if req.StartDate != nil {
		offer.StartDate = req.StartDate
	}
	if req.Template != nil {
		offer.Template = req.Template
	}
	if req.CustomContent != nil {
		offer.CustomContent = req.CustomContent
	}
	if req.Status != nil {
		if *req.Status == models.OfferAccepted || *req.Status == models.OfferRejected {
			now := time.Now()
			offer.RespondedAt = &now
		}
		offer.Status = *req.Status
	}

	if err := s.repo.Offer().Update(ctx, offer); err != nil {
		s.logger.Error("Failed to update offer", "offer_id", id, "error", err)
		return nil, err
	}

	return offer, nil
}

// Send transitions a draft offer to sent and emits the offer.sent event.
func (s *offerService) Send(ctx context.Context, id string) (*models.OfferLetter, error) {
	offer, err := s.repo.Offer().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	if offer.Status != models.OfferDraft {
		return nil, ErrOfferNotSendable
	}

	now := time.Now()
	offer.Status = models.OfferSent
	offer.SentAt = &now

	if err := s.repo.Offer().Update(ctx, offer); err != nil {
		s.logger.Error("Failed to send offer", "offer_id", id, "error", err)
		return nil, err
	}

	event := events.NewOfferSentEvent(offer)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish offer sent event", "offer_id", offer.ID, "error", err)
	}

	s.logger.Info("Offer sent", "offer_id", offer.ID)
	return offer, nil
}
