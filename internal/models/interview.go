package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InterviewType string

const (
	InterviewTechnical  InterviewType = "technical"
	InterviewHR         InterviewType = "hr"
	InterviewBehavioral InterviewType = "behavioral"
	InterviewFinal      InterviewType = "final"
)

type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
	InterviewRescheduled InterviewStatus = "rescheduled"
)

type InterviewPanel struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	Name        string  `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description *string `json:"description" gorm:"type:text"`

	// User IDs of the panel members.
	Interviewers datatypes.JSONSlice[string] `json:"interviewers" gorm:"type:jsonb"`
	JobID        *string                     `json:"jobId" gorm:"size:36;index"`

	CreatedAt time.Time `json:"createdAt"`
}

func (InterviewPanel) TableName() string {
	return "interview_panels"
}

func (p *InterviewPanel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Interview struct {
	ID            string          `json:"id" gorm:"primaryKey;size:36"`
	ApplicationID string          `json:"applicationId" gorm:"not null;size:36;index" validate:"required"`
	PanelID       *string         `json:"panelId" gorm:"size:36;index"`
	ScheduledAt   time.Time       `json:"scheduledAt" gorm:"not null;index" validate:"required"`
	Duration      int             `json:"duration" gorm:"default:60" validate:"omitempty,min=15,max=480"`
	Type          InterviewType   `json:"type" gorm:"not null;default:technical" validate:"omitempty,oneof=technical hr behavioral final"`
	Status        InterviewStatus `json:"status" gorm:"not null;default:scheduled;index" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Feedback      *string         `json:"feedback" gorm:"type:text"`
	Score         *int            `json:"score" validate:"omitempty,min=0,max=100"`

	// Free-form notes keyed by interviewer user ID.
	InterviewerNotes map[string]string `json:"interviewerNotes" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"createdAt"`

	Application *Application    `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	Panel       *InterviewPanel `json:"panel,omitempty" gorm:"foreignKey:PanelID"`
}

func (Interview) TableName() string {
	return "interviews"
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
