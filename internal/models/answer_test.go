package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnswerValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  AnswerValue
	}{
		{"option index", `2`, ChoiceAnswer(2)},
		{"zero index", `0`, ChoiceAnswer(0)},
		{"string is invalid", `"2"`, AnswerValue{}},
		{"fractional number is invalid", `1.5`, AnswerValue{}},
		{"object is invalid", `{"choice":1}`, AnswerValue{}},
		{"null is invalid", `null`, AnswerValue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v AnswerValue
			// Malformed answers never error; they score zero instead.
			err := json.Unmarshal([]byte(tt.input), &v)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAnswerValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ChoiceAnswer(3))
	assert.NoError(t, err)
	assert.Equal(t, `3`, string(data))

	data, err = json.Marshal(AnswerValue{})
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestAnswerValue_Equals(t *testing.T) {
	assert.True(t, ChoiceAnswer(1).Equals(ChoiceAnswer(1)))
	assert.False(t, ChoiceAnswer(1).Equals(ChoiceAnswer(2)))

	// Invalid values never compare equal, not even to each other.
	assert.False(t, AnswerValue{}.Equals(AnswerValue{}))
	assert.False(t, AnswerValue{}.Equals(ChoiceAnswer(0)))
}

func TestAssessmentSubmission_WireFormat(t *testing.T) {
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	submitted := started.Add(20 * time.Minute)

	submission := AssessmentSubmission{
		ID:                "s1",
		AssessmentID:      "a1",
		CandidateID:       "c1",
		ApplicationID:     "app1",
		SelectedQuestions: []string{"q1", "q2"},
		Answers: AnswerMap{
			"q1": ChoiceAnswer(0),
			"q2": ChoiceAnswer(2),
		},
		Score:          1,
		MaxScore:       2,
		Percentage:     50,
		CategoryScores: map[string]int{"golang": 50},
		TimeSpent:      1200,
		Status:         SubmissionGraded,
		StartedAt:      &started,
		SubmittedAt:    &submitted,
		GradedAt:       &submitted,
	}

	data, err := json.Marshal(submission)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "a1", decoded["assessmentId"])
	assert.Equal(t, "c1", decoded["candidateId"])
	assert.Equal(t, "app1", decoded["applicationId"])
	assert.Equal(t, []interface{}{"q1", "q2"}, decoded["selectedQuestions"])
	assert.Equal(t, float64(1), decoded["score"])
	assert.Equal(t, float64(2), decoded["maxScore"])
	assert.Equal(t, float64(50), decoded["percentage"])
	assert.Equal(t, float64(1200), decoded["timeSpent"])
	assert.Equal(t, "graded", decoded["status"])

	// Answers persist as bare option indexes keyed by question ID.
	answers, ok := decoded["answers"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(0), answers["q1"])
	assert.Equal(t, float64(2), answers["q2"])

	// Round trip preserves the tagged answer values.
	var back AssessmentSubmission
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, submission.Answers, back.Answers)
}
