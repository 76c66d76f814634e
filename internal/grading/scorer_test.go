package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentflow/ats-service/internal/models"
)

func question(id, category string, points, correct int) *models.Question {
	return &models.Question{
		ID:            id,
		Question:      "q",
		Category:      category,
		Points:        points,
		CorrectAnswer: models.ChoiceAnswer(correct),
	}
}

func TestScoreKnownBreakdown(t *testing.T) {
	questions := []*models.Question{
		question("q1", "HTML", 1, 0),
		question("q2", "CSS", 2, 1),
	}
	answers := models.AnswerMap{
		"q1": models.ChoiceAnswer(0),
		"q2": models.ChoiceAnswer(0),
	}

	res := Score(questions, answers)

	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 3, res.MaxScore)
	assert.Equal(t, 33, res.Percentage)
	assert.Equal(t, map[string]int{"HTML": 100, "CSS": 0}, res.CategoryScores)
}

func TestScoreEmptyAnswers(t *testing.T) {
	questions := []*models.Question{
		question("q1", "Go", 2, 1),
		question("q2", "Go", 3, 0),
	}

	res := Score(questions, models.AnswerMap{})

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 5, res.MaxScore)
	assert.Equal(t, 0, res.Percentage)
	assert.Equal(t, map[string]int{"Go": 0}, res.CategoryScores)
}

func TestScoreAllCorrectIsHundredPercent(t *testing.T) {
	questions := []*models.Question{
		question("q1", "Go", 1, 2),
		question("q2", "SQL", 4, 0),
	}
	answers := models.AnswerMap{
		"q1": models.ChoiceAnswer(2),
		"q2": models.ChoiceAnswer(0),
	}

	res := Score(questions, answers)

	assert.Equal(t, res.MaxScore, res.Score)
	assert.Equal(t, 100, res.Percentage)
	assert.Equal(t, map[string]int{"Go": 100, "SQL": 100}, res.CategoryScores)
}

func TestScoreNeverExceedsMax(t *testing.T) {
	questions := []*models.Question{
		question("q1", "Go", 1, 0),
		question("q2", "Go", 1, 1),
	}
	answers := models.AnswerMap{
		"q1": models.ChoiceAnswer(0),
		"q2": models.ChoiceAnswer(1),
		// Answer for a question that was never presented.
		"q3": models.ChoiceAnswer(0),
	}

	res := Score(questions, answers)
	assert.LessOrEqual(t, res.Score, res.MaxScore)
	assert.Equal(t, 2, res.Score)
}

func TestScoreMalformedAnswerIsIncorrect(t *testing.T) {
	questions := []*models.Question{question("q1", "Go", 1, 0)}
	answers := models.AnswerMap{
		// Zero-value AnswerValue, as produced by unparseable JSON.
		"q1": {},
	}

	res := Score(questions, answers)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 1, res.MaxScore)
}

func TestScoreDefaultsPointsToOne(t *testing.T) {
	questions := []*models.Question{
		{ID: "q1", Category: "Go", CorrectAnswer: models.ChoiceAnswer(0)},
	}
	res := Score(questions, models.AnswerMap{"q1": models.ChoiceAnswer(0)})
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 1, res.MaxScore)
}

func TestScoreIsDeterministic(t *testing.T) {
	questions := []*models.Question{
		question("q1", "HTML", 1, 0),
		question("q2", "CSS", 2, 1),
		question("q3", "JS", 3, 2),
	}
	answers := models.AnswerMap{
		"q1": models.ChoiceAnswer(0),
		"q3": models.ChoiceAnswer(1),
	}

	first := Score(questions, answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(questions, answers))
	}
}

func TestScoreEmptyQuestionSet(t *testing.T) {
	res := Score(nil, models.AnswerMap{"q1": models.ChoiceAnswer(0)})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.MaxScore)
	assert.Equal(t, 0, res.Percentage)
	assert.Empty(t, res.CategoryScores)
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 13, Percentage(1, 8)) // 12.5 rounds up
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, 0))
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(Result{Percentage: 70}, 70))
	assert.True(t, Passed(Result{Percentage: 90}, 70))
	assert.False(t, Passed(Result{Percentage: 69}, 70))
}
