package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionMCQ    QuestionType = "mcq"
	QuestionCoding QuestionType = "coding"
	QuestionEssay  QuestionType = "essay"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// AllDifficulties is the default difficulty filter when an assessment
// does not restrict difficulty.
var AllDifficulties = []DifficultyLevel{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is one reusable entry of the question bank. Questions referenced by a
// submitted assessment should be treated as immutable; edits are expected to be
// new rows rather than in-place rewrites.
type Question struct {
	ID         string          `json:"id" gorm:"primaryKey;size:36"`
	Question   string          `json:"question" gorm:"not null;type:text" validate:"required"`
	Type       QuestionType    `json:"type" gorm:"not null;default:mcq;index" validate:"omitempty,oneof=mcq coding essay"`
	Category   string          `json:"category" gorm:"not null;size:100;index" validate:"required,max=100"`
	Difficulty DifficultyLevel `json:"difficulty" gorm:"not null;default:medium;index" validate:"omitempty,oneof=easy medium hard"`

	// Ordered option labels for single-choice questions.
	Options       datatypes.JSONSlice[string] `json:"options" gorm:"type:jsonb"`
	CorrectAnswer AnswerValue                 `json:"correctAnswer" gorm:"type:jsonb;serializer:json"`
	Explanation   *string                     `json:"explanation" gorm:"type:text"`
	Points        int                         `json:"points" gorm:"default:1" validate:"omitempty,min=1"`
	Tags          datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	CreatedBy     string                      `json:"createdBy" gorm:"not null;size:36;index" validate:"required"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Question) TableName() string {
	return "question_bank"
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// PointsOrDefault returns the question's point value, defaulting to 1 when unset.
func (q *Question) PointsOrDefault() int {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}
