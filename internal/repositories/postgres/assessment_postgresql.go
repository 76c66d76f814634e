package postgres

import (
	"context"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type AssessmentPostgreSQL struct {
	db *gorm.DB
}

func NewAssessmentPostgreSQL(db *gorm.DB) repositories.AssessmentRepository {
	return &AssessmentPostgreSQL{db: db}
}

func (a *AssessmentPostgreSQL) Create(ctx context.Context, assessment *models.Assessment) error {
	return a.db.WithContext(ctx).Create(assessment).Error
}

func (a *AssessmentPostgreSQL) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := a.db.WithContext(ctx).First(&assessment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (a *AssessmentPostgreSQL) List(ctx context.Context) ([]*models.Assessment, error) {
	var assessments []*models.Assessment
	err := a.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (a *AssessmentPostgreSQL) GetByJob(ctx context.Context, jobID string) ([]*models.Assessment, error) {
	var assessments []*models.Assessment
	err := a.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (a *AssessmentPostgreSQL) Update(ctx context.Context, assessment *models.Assessment) error {
	return a.db.WithContext(ctx).Save(assessment).Error
}

func (a *AssessmentPostgreSQL) Delete(ctx context.Context, id string) error {
	result := a.db.WithContext(ctx).Delete(&models.Assessment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
