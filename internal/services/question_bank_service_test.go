package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/selection"
	"github.com/talentflow/ats-service/internal/validator"
)

func newQuestionBankService(repo *MockRepository, seed int64) QuestionBankService {
	return NewQuestionBankService(repo, testLogger(), validator.New(), selection.New(rand.NewSource(seed)))
}

func bankQuestion(id, category string, difficulty models.DifficultyLevel) *models.Question {
	return &models.Question{
		ID:            id,
		Question:      "What does " + id + " do?",
		Type:          models.QuestionMCQ,
		Category:      category,
		Difficulty:    difficulty,
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: models.ChoiceAnswer(0),
		Points:        1,
		CreatedBy:     "hr-1",
	}
}

func TestQuestionBankService_Create(t *testing.T) {
	tests := []struct {
		name        string
		request     *CreateQuestionRequest
		setupMocks  func(*MockQuestionRepository)
		expectError bool
	}{
		{
			name: "successful creation with defaults",
			request: &CreateQuestionRequest{
				Question:      "What is a goroutine?",
				Category:      "golang",
				Options:       []string{"a thread", "a lightweight thread", "a process"},
				CorrectAnswer: models.ChoiceAnswer(1),
			},
			setupMocks: func(questionRepo *MockQuestionRepository) {
				questionRepo.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
					return q.Type == models.QuestionMCQ &&
						q.Difficulty == models.DifficultyMedium &&
						q.Points == 1 &&
						q.CreatedBy == "hr-1"
				})).Return(nil)
			},
			expectError: false,
		},
		{
			name: "missing category fails validation",
			request: &CreateQuestionRequest{
				Question:      "Orphan question",
				Options:       []string{"a", "b"},
				CorrectAnswer: models.ChoiceAnswer(0),
			},
			setupMocks:  func(questionRepo *MockQuestionRepository) {},
			expectError: true,
		},
		{
			name: "correct answer out of range fails validation",
			request: &CreateQuestionRequest{
				Question:      "Pick one",
				Category:      "golang",
				Options:       []string{"a", "b"},
				CorrectAnswer: models.ChoiceAnswer(5),
			},
			setupMocks:  func(questionRepo *MockQuestionRepository) {},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo := &MockQuestionRepository{}
			tt.setupMocks(questionRepo)

			service := newQuestionBankService(&MockRepository{questionRepo: questionRepo}, 1)
			question, err := service.Create(context.Background(), tt.request, "hr-1")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, question)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, question)
				assert.Equal(t, tt.request.Question, question.Question)
			}

			questionRepo.AssertExpectations(t)
		})
	}
}

func TestQuestionBankService_GenerateQuestionSet_Manual(t *testing.T) {
	fixed := []*models.Question{
		bankQuestion("q1", "golang", models.DifficultyEasy),
		bankQuestion("q2", "golang", models.DifficultyHard),
	}

	questionRepo := &MockQuestionRepository{}
	questionRepo.On("GetByIDs", mock.Anything, []string{"q1", "q2"}).Return(fixed, nil)

	service := newQuestionBankService(&MockRepository{questionRepo: questionRepo}, 1)

	assessment := &models.Assessment{
		ID:        "a1",
		Type:      models.AssessmentManual,
		Questions: []string{"q1", "q2"},
	}

	selected, err := service.GenerateQuestionSet(context.Background(), assessment)

	assert.NoError(t, err)
	assert.Equal(t, fixed, selected)
	questionRepo.AssertExpectations(t)
}

func TestQuestionBankService_GenerateQuestionSet_Auto(t *testing.T) {
	pool := []*models.Question{
		bankQuestion("q1", "golang", models.DifficultyEasy),
		bankQuestion("q2", "golang", models.DifficultyMedium),
		bankQuestion("q3", "golang", models.DifficultyHard),
		bankQuestion("q4", "golang", models.DifficultyEasy),
		bankQuestion("q5", "golang", models.DifficultyMedium),
	}

	questionRepo := &MockQuestionRepository{}
	questionRepo.On("List", mock.Anything, mock.MatchedBy(func(f repositories.QuestionFilters) bool {
		return len(f.Categories) == 1 && f.Categories[0] == "golang"
	})).Return(pool, int64(len(pool)), nil)

	service := newQuestionBankService(&MockRepository{questionRepo: questionRepo}, 42)

	assessment := &models.Assessment{
		ID:            "a1",
		Type:          models.AssessmentAuto,
		Categories:    []string{"golang"},
		QuestionCount: 3,
	}

	selected, err := service.GenerateQuestionSet(context.Background(), assessment)

	assert.NoError(t, err)
	assert.Len(t, selected, 3)

	// No duplicates in the sample.
	seen := map[string]bool{}
	for _, q := range selected {
		assert.False(t, seen[q.ID], "question %s drawn twice", q.ID)
		seen[q.ID] = true
	}
	questionRepo.AssertExpectations(t)
}

func TestQuestionBankService_GenerateQuestionSet_ShortPool(t *testing.T) {
	pool := []*models.Question{
		bankQuestion("q1", "sql", models.DifficultyEasy),
		bankQuestion("q2", "sql", models.DifficultyMedium),
	}

	questionRepo := &MockQuestionRepository{}
	questionRepo.On("List", mock.Anything, mock.Anything).Return(pool, int64(len(pool)), nil)

	service := newQuestionBankService(&MockRepository{questionRepo: questionRepo}, 7)

	assessment := &models.Assessment{
		ID:            "a1",
		Type:          models.AssessmentAuto,
		Categories:    []string{"sql"},
		QuestionCount: 10,
	}

	// A bank smaller than the requested count yields a short set, not an error.
	selected, err := service.GenerateQuestionSet(context.Background(), assessment)

	assert.NoError(t, err)
	assert.Len(t, selected, 2)
}

func TestQuestionBankService_GenerateQuestionSet_HybridBehavesLikeAuto(t *testing.T) {
	pool := []*models.Question{bankQuestion("q1", "golang", models.DifficultyEasy)}

	questionRepo := &MockQuestionRepository{}
	questionRepo.On("List", mock.Anything, mock.Anything).Return(pool, int64(1), nil)

	service := newQuestionBankService(&MockRepository{questionRepo: questionRepo}, 7)

	assessment := &models.Assessment{
		ID:            "a1",
		Type:          models.AssessmentHybrid,
		QuestionCount: 1,
	}

	selected, err := service.GenerateQuestionSet(context.Background(), assessment)

	assert.NoError(t, err)
	assert.Len(t, selected, 1)
	questionRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
