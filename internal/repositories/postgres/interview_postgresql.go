package postgres

import (
	"context"
	"time"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type InterviewPanelPostgreSQL struct {
	db *gorm.DB
}

func NewInterviewPanelPostgreSQL(db *gorm.DB) repositories.InterviewPanelRepository {
	return &InterviewPanelPostgreSQL{db: db}
}

func (p *InterviewPanelPostgreSQL) Create(ctx context.Context, panel *models.InterviewPanel) error {
	return p.db.WithContext(ctx).Create(panel).Error
}

func (p *InterviewPanelPostgreSQL) GetByID(ctx context.Context, id string) (*models.InterviewPanel, error) {
	var panel models.InterviewPanel
	if err := p.db.WithContext(ctx).First(&panel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &panel, nil
}

func (p *InterviewPanelPostgreSQL) List(ctx context.Context) ([]*models.InterviewPanel, error) {
	var panels []*models.InterviewPanel
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&panels).Error
	return panels, err
}

func (p *InterviewPanelPostgreSQL) GetByJob(ctx context.Context, jobID string) ([]*models.InterviewPanel, error) {
	var panels []*models.InterviewPanel
	err := p.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&panels).Error
	return panels, err
}

func (p *InterviewPanelPostgreSQL) Update(ctx context.Context, panel *models.InterviewPanel) error {
	return p.db.WithContext(ctx).Save(panel).Error
}

func (p *InterviewPanelPostgreSQL) Delete(ctx context.Context, id string) error {
	result := p.db.WithContext(ctx).Delete(&models.InterviewPanel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type InterviewPostgreSQL struct {
	db *gorm.DB
}

func NewInterviewPostgreSQL(db *gorm.DB) repositories.InterviewRepository {
	return &InterviewPostgreSQL{db: db}
}

func (i *InterviewPostgreSQL) Create(ctx context.Context, interview *models.Interview) error {
	return i.db.WithContext(ctx).Create(interview).Error
}

func (i *InterviewPostgreSQL) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	var interview models.Interview
	err := i.db.WithContext(ctx).
		Preload("Panel").
		First(&interview, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (i *InterviewPostgreSQL) List(ctx context.Context) ([]*models.Interview, error) {
	var interviews []*models.Interview
	err := i.db.WithContext(ctx).
		Order("scheduled_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (i *InterviewPostgreSQL) GetByApplication(ctx context.Context, applicationID string) ([]*models.Interview, error) {
	var interviews []*models.Interview
	err := i.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("scheduled_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (i *InterviewPostgreSQL) GetUpcoming(ctx context.Context) ([]*models.Interview, error) {
	var interviews []*models.Interview
	err := i.db.WithContext(ctx).
		Where("status = ? AND scheduled_at > ?", models.InterviewScheduled, time.Now()).
		Order("scheduled_at ASC").
		Find(&interviews).Error
	return interviews, err
}

func (i *InterviewPostgreSQL) Update(ctx context.Context, interview *models.Interview) error {
	return i.db.WithContext(ctx).Save(interview).Error
}
