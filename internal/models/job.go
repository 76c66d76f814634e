package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
	JobDraft  JobStatus = "draft"
)

type Job struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Department  string    `json:"department" gorm:"not null;size:100" validate:"required,max=100"`
	Location    string    `json:"location" gorm:"not null;size:200" validate:"required,max=200"`
	Experience  string    `json:"experience" gorm:"not null;size:100" validate:"required"`
	Description string    `json:"description" gorm:"not null;type:text" validate:"required"`
	Skills      string    `json:"skills" gorm:"not null;type:text" validate:"required"`
	Salary      *string   `json:"salary" gorm:"size:100"`
	Status      JobStatus `json:"status" gorm:"not null;default:active;index" validate:"omitempty,oneof=active closed draft"`
	CreatedBy   string    `json:"createdBy" gorm:"not null;size:36;index" validate:"required"`

	CreatedAt time.Time `json:"createdAt"`

	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:JobID"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
