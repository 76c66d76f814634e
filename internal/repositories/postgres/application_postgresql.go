package postgres

import (
	"context"
	"time"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type ApplicationPostgreSQL struct {
	db *gorm.DB
}

func NewApplicationPostgreSQL(db *gorm.DB) repositories.ApplicationRepository {
	return &ApplicationPostgreSQL{db: db}
}

func (a *ApplicationPostgreSQL) Create(ctx context.Context, application *models.Application) error {
	return a.db.WithContext(ctx).Create(application).Error
}

func (a *ApplicationPostgreSQL) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := a.db.WithContext(ctx).
		Preload("Job").
		Preload("Candidate").
		First(&application, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (a *ApplicationPostgreSQL) List(ctx context.Context) ([]*models.Application, error) {
	var applications []*models.Application
	err := a.db.WithContext(ctx).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (a *ApplicationPostgreSQL) GetByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	var applications []*models.Application
	err := a.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (a *ApplicationPostgreSQL) GetByCandidate(ctx context.Context, candidateID string) ([]*models.Application, error) {
	var applications []*models.Application
	err := a.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (a *ApplicationPostgreSQL) Update(ctx context.Context, application *models.Application) error {
	application.UpdatedAt = time.Now()
	return a.db.WithContext(ctx).Save(application).Error
}
