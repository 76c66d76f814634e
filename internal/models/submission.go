package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionPending    SubmissionStatus = "pending"
	SubmissionInProgress SubmissionStatus = "in_progress"
	SubmissionSubmitted  SubmissionStatus = "submitted"
	SubmissionGraded     SubmissionStatus = "graded"
)

// AssessmentSubmission is the persisted record of one candidate's completed or
// auto-submitted attempt. It references exactly one assessment and one
// application, fixed at creation. SelectedQuestions holds the questions that
// were actually presented, which may be fewer than the assessment asked for
// when the bank ran short.
type AssessmentSubmission struct {
	ID            string `json:"id" gorm:"primaryKey;size:36"`
	AssessmentID  string `json:"assessmentId" gorm:"not null;size:36;index" validate:"required"`
	CandidateID   string `json:"candidateId" gorm:"not null;size:36;index" validate:"required"`
	ApplicationID string `json:"applicationId" gorm:"not null;size:36;index" validate:"required"`

	SelectedQuestions datatypes.JSONSlice[string] `json:"selectedQuestions" gorm:"type:jsonb"`
	Answers           AnswerMap                   `json:"answers" gorm:"type:jsonb;serializer:json"`
	Score             int                         `json:"score"`
	MaxScore          int                         `json:"maxScore"`
	Percentage        int                         `json:"percentage"`

	// Per-category percentage of correctly answered questions.
	CategoryScores map[string]int `json:"categoryScores" gorm:"type:jsonb;serializer:json"`
	TimeSpent      int            `json:"timeSpent"`
	Flagged        bool           `json:"flagged" gorm:"default:false"`

	Status      SubmissionStatus `json:"status" gorm:"not null;default:pending;index" validate:"omitempty,oneof=pending in_progress submitted graded"`
	StartedAt   *time.Time       `json:"startedAt"`
	SubmittedAt *time.Time       `json:"submittedAt"`
	GradedAt    *time.Time       `json:"gradedAt"`

	Assessment  *Assessment  `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	Candidate   *Candidate   `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	Application *Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
}

func (AssessmentSubmission) TableName() string {
	return "assessment_submissions"
}

func (s *AssessmentSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
