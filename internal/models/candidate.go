package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CandidateStatus string

const (
	CandidateNew       CandidateStatus = "new"
	CandidateScreening CandidateStatus = "screening"
	CandidateInterview CandidateStatus = "interview"
	CandidateOffer     CandidateStatus = "offer"
	CandidateHired     CandidateStatus = "hired"
	CandidateRejected  CandidateStatus = "rejected"
)

type Candidate struct {
	ID     string  `json:"id" gorm:"primaryKey;size:36"`
	Name   string  `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email  string  `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	Phone  *string `json:"phone" gorm:"size:50"`
	Resume *string `json:"resume" gorm:"type:text"`

	// Parsed skill labels, free text.
	Skills     datatypes.JSONSlice[string] `json:"skills" gorm:"type:jsonb"`
	Experience *string                     `json:"experience" gorm:"size:200"`
	Education  *string                     `json:"education" gorm:"size:200"`
	Status     CandidateStatus             `json:"status" gorm:"not null;default:new;index" validate:"omitempty,oneof=new screening interview offer hired rejected"`

	CreatedAt time.Time `json:"createdAt"`

	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:CandidateID"`
}

func (Candidate) TableName() string {
	return "candidates"
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
