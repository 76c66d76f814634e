package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationApplied    ApplicationStatus = "applied"
	ApplicationScreening  ApplicationStatus = "screening"
	ApplicationAssessment ApplicationStatus = "assessment"
	ApplicationInterview  ApplicationStatus = "interview"
	ApplicationOffer      ApplicationStatus = "offer"
	ApplicationHired      ApplicationStatus = "hired"
	ApplicationRejected   ApplicationStatus = "rejected"
)

type ApplicationStage string

const (
	StageReview     ApplicationStage = "review"
	StageAssessment ApplicationStage = "assessment"
	StageInterview  ApplicationStage = "interview"
	StageOffer      ApplicationStage = "offer"
)

type Application struct {
	ID          string            `json:"id" gorm:"primaryKey;size:36"`
	JobID       string            `json:"jobId" gorm:"not null;size:36;index" validate:"required"`
	CandidateID string            `json:"candidateId" gorm:"not null;size:36;index" validate:"required"`
	Status      ApplicationStatus `json:"status" gorm:"not null;default:applied;index" validate:"omitempty,oneof=applied screening assessment interview offer hired rejected"`
	Stage       ApplicationStage  `json:"stage" gorm:"not null;default:review;index" validate:"omitempty,oneof=review assessment interview offer"`
	Score       *int              `json:"score" validate:"omitempty,min=0,max=100"`
	Notes       *string           `json:"notes" gorm:"type:text"`

	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Job       *Job       `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Candidate *Candidate `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
}

func (Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
