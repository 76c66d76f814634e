package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssessmentType string

const (
	// AssessmentAuto draws questions from the bank by category/difficulty filter.
	AssessmentAuto AssessmentType = "auto"
	// AssessmentManual uses the fixed embedded question list.
	AssessmentManual AssessmentType = "manual"
	// AssessmentHybrid is accepted for compatibility; it behaves like auto.
	AssessmentHybrid AssessmentType = "hybrid"
)

// Assessment is the configurable template from which one candidate's concrete
// question set is drawn. The realized set is a per-session snapshot; drawing
// again later may yield different questions, which is intentional.
type Assessment struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Title       string         `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description *string        `json:"description" gorm:"type:text"`
	Type        AssessmentType `json:"type" gorm:"not null;default:auto" validate:"omitempty,oneof=auto manual hybrid"`

	// Question bank filter. Empty categories means all categories; empty
	// difficulty means all three levels.
	Categories         datatypes.JSONSlice[string]          `json:"categories" gorm:"type:jsonb"`
	Difficulty         datatypes.JSONSlice[DifficultyLevel] `json:"difficulty" gorm:"type:jsonb"`
	QuestionCount      int                                  `json:"questionCount" gorm:"default:20" validate:"omitempty,min=1,max=200"`
	RandomizeQuestions bool                                 `json:"randomizeQuestions" gorm:"default:true"`
	ShuffleOptions     bool                                 `json:"shuffleOptions" gorm:"default:true"`

	// Fixed question IDs for manual assessments.
	Questions datatypes.JSONSlice[string] `json:"questions" gorm:"type:jsonb"`

	TimeLimit       int  `json:"timeLimit" gorm:"default:60" validate:"omitempty,min=1,max=480"`
	PassingScore    int  `json:"passingScore" gorm:"default:70" validate:"omitempty,min=0,max=100"`
	AllowReview     bool `json:"allowReview" gorm:"default:true"`
	ShowResults     bool `json:"showResults" gorm:"default:true"`
	PreventCheating bool `json:"preventCheating" gorm:"default:true"`

	JobID     *string `json:"jobId" gorm:"size:36;index"`
	CreatedBy string  `json:"createdBy" gorm:"not null;size:36;index" validate:"required"`

	CreatedAt time.Time `json:"createdAt"`

	Job         *Job                   `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Submissions []AssessmentSubmission `json:"submissions,omitempty" gorm:"foreignKey:AssessmentID"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AllowedDifficulties returns the assessment's difficulty filter, defaulting
// to all levels when unset.
func (a *Assessment) AllowedDifficulties() []DifficultyLevel {
	if len(a.Difficulty) == 0 {
		return AllDifficulties
	}
	return a.Difficulty
}
