// Package grading scores completed assessment attempts. Scoring is a pure
// function of the presented questions and the candidate's answers: identical
// inputs always produce identical results, and no well-typed input raises an
// error.
package grading

import (
	"math"

	"github.com/talentflow/ats-service/internal/models"
)

// Result is the computed outcome of one attempt.
type Result struct {
	Score      int            `json:"score"`
	MaxScore   int            `json:"maxScore"`
	Percentage int            `json:"percentage"`
	// Percentage of correctly answered questions per category. Categories
	// with no presented questions are absent.
	CategoryScores map[string]int `json:"categoryScores"`
}

// Score grades the presented question set against the candidate's answers.
// Every question contributes its point value (default 1) to MaxScore; only an
// answer exactly equal to the question's correct answer earns points. Missing
// or malformed answers score zero. This routine is the single authority for
// rounding: any client-side preview must agree with it.
func Score(questions []*models.Question, answers models.AnswerMap) Result {
	res := Result{CategoryScores: map[string]int{}}

	type categoryTally struct {
		correct int
		total   int
	}
	byCategory := map[string]*categoryTally{}

	for _, q := range questions {
		points := q.PointsOrDefault()
		res.MaxScore += points

		tally := byCategory[q.Category]
		if tally == nil {
			tally = &categoryTally{}
			byCategory[q.Category] = tally
		}
		tally.total++

		given, ok := answers[q.ID]
		if ok && given.Equals(q.CorrectAnswer) {
			res.Score += points
			tally.correct++
		}
	}

	res.Percentage = Percentage(res.Score, res.MaxScore)
	for category, tally := range byCategory {
		res.CategoryScores[category] = Percentage(tally.correct, tally.total)
	}

	return res
}

// Percentage returns round(100 * part / total) with halves rounded up, or 0
// when total is zero.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Passed reports whether a result clears the given passing-score threshold.
func Passed(r Result, passingScore int) bool {
	return r.Percentage >= passingScore
}
