package postgres

import (
	"context"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type JobPostgreSQL struct {
	db *gorm.DB
}

func NewJobPostgreSQL(db *gorm.DB) repositories.JobRepository {
	return &JobPostgreSQL{db: db}
}

func (j *JobPostgreSQL) Create(ctx context.Context, job *models.Job) error {
	return j.db.WithContext(ctx).Create(job).Error
}

func (j *JobPostgreSQL) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := j.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *JobPostgreSQL) List(ctx context.Context) ([]*models.Job, error) {
	var jobs []*models.Job
	err := j.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (j *JobPostgreSQL) GetByCreator(ctx context.Context, creatorID string) ([]*models.Job, error) {
	var jobs []*models.Job
	err := j.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (j *JobPostgreSQL) Update(ctx context.Context, job *models.Job) error {
	return j.db.WithContext(ctx).Save(job).Error
}

func (j *JobPostgreSQL) Delete(ctx context.Context, id string) error {
	result := j.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
