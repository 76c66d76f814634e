package postgres

import (
	"context"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type CandidatePostgreSQL struct {
	db *gorm.DB
}

func NewCandidatePostgreSQL(db *gorm.DB) repositories.CandidateRepository {
	return &CandidatePostgreSQL{db: db}
}

func (c *CandidatePostgreSQL) Create(ctx context.Context, candidate *models.Candidate) error {
	return c.db.WithContext(ctx).Create(candidate).Error
}

func (c *CandidatePostgreSQL) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := c.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (c *CandidatePostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := c.db.WithContext(ctx).First(&candidate, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (c *CandidatePostgreSQL) List(ctx context.Context) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	err := c.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&candidates).Error
	return candidates, err
}

func (c *CandidatePostgreSQL) Update(ctx context.Context, candidate *models.Candidate) error {
	return c.db.WithContext(ctx).Save(candidate).Error
}
