package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfferStatus string

const (
	OfferDraft     OfferStatus = "draft"
	OfferSent      OfferStatus = "sent"
	OfferAccepted  OfferStatus = "accepted"
	OfferRejected  OfferStatus = "rejected"
	OfferWithdrawn OfferStatus = "withdrawn"
)

type OfferLetter struct {
	ID            string      `json:"id" gorm:"primaryKey;size:36"`
	ApplicationID string      `json:"applicationId" gorm:"not null;size:36;uniqueIndex" validate:"required"`
	Title         string      `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Salary        string      `json:"salary" gorm:"not null;size:100" validate:"required"`
	StartDate     *time.Time  `json:"startDate"`
	Template      *string     `json:"template" gorm:"type:text"`
	CustomContent *string     `json:"customContent" gorm:"type:text"`
	Status        OfferStatus `json:"status" gorm:"not null;default:draft;index" validate:"omitempty,oneof=draft sent accepted rejected withdrawn"`
	SentAt        *time.Time  `json:"sentAt"`
	RespondedAt   *time.Time  `json:"respondedAt"`

	CreatedAt time.Time `json:"createdAt"`

	Application *Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
}

func (OfferLetter) TableName() string {
	return "offer_letters"
}

func (o *OfferLetter) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
