package postgres

import (
	"context"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type SubmissionPostgreSQL struct {
	db *gorm.DB
}

func NewSubmissionPostgreSQL(db *gorm.DB) repositories.SubmissionRepository {
	return &SubmissionPostgreSQL{db: db}
}

func (s *SubmissionPostgreSQL) Create(ctx context.Context, submission *models.AssessmentSubmission) error {
	return s.db.WithContext(ctx).Create(submission).Error
}

func (s *SubmissionPostgreSQL) GetByID(ctx context.Context, id string) (*models.AssessmentSubmission, error) {
	var submission models.AssessmentSubmission
	err := s.db.WithContext(ctx).
		Preload("Assessment").
		First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *SubmissionPostgreSQL) List(ctx context.Context, filters repositories.SubmissionFilters) ([]*models.AssessmentSubmission, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.AssessmentSubmission{})

	if filters.AssessmentID != nil {
		query = query.Where("assessment_id = ?", *filters.AssessmentID)
	}
	if filters.CandidateID != nil {
		query = query.Where("candidate_id = ?", *filters.CandidateID)
	}
	if filters.ApplicationID != nil {
		query = query.Where("application_id = ?", *filters.ApplicationID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var submissions []*models.AssessmentSubmission
	err := query.Order("started_at DESC").Find(&submissions).Error
	return submissions, total, err
}

func (s *SubmissionPostgreSQL) GetByCandidate(ctx context.Context, candidateID string) ([]*models.AssessmentSubmission, error) {
	var submissions []*models.AssessmentSubmission
	err := s.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("started_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (s *SubmissionPostgreSQL) Update(ctx context.Context, submission *models.AssessmentSubmission) error {
	return s.db.WithContext(ctx).Save(submission).Error
}
