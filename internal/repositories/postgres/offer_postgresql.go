package postgres

import (
	"context"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type OfferPostgreSQL struct {
	db *gorm.DB
}

func NewOfferPostgreSQL(db *gorm.DB) repositories.OfferRepository {
	return &OfferPostgreSQL{db: db}
}

func (o *OfferPostgreSQL) Create(ctx context.Context, offer *models.OfferLetter) error {
	return o.db.WithContext(ctx).Create(offer).Error
}

func (o *OfferPostgreSQL) GetByID(ctx context.Context, id string) (*models.OfferLetter, error) {
	var offer models.OfferLetter
	if err := o.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (o *OfferPostgreSQL) GetByApplication(ctx context.Context, applicationID string) (*models.OfferLetter, error) {
	var offer models.OfferLetter
	if err := o.db.WithContext(ctx).First(&offer, "application_id = ?", applicationID).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (o *OfferPostgreSQL) List(ctx context.Context) ([]*models.OfferLetter, error) {
	var offers []*models.OfferLetter
	err := o.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}

func (o *OfferPostgreSQL) Update(ctx context.Context, offer *models.OfferLetter) error {
	return o.db.WithContext(ctx).Save(offer).Error
}
