package models

import (
	"bytes"
	"encoding/json"
)

// AnswerKind discriminates the closed set of answer-value variants. Question
// options and candidate answers arrive as untyped JSON; parsing them into a
// tagged value keeps scoring equality type-safe instead of relying on
// incidental coercion.
type AnswerKind int

const (
	// AnswerInvalid marks a value whose JSON shape matched no known variant.
	// It never compares equal to anything, so malformed answers score zero
	// without raising an error.
	AnswerInvalid AnswerKind = iota

	// AnswerChoiceIndex is an index into a single-choice question's options.
	AnswerChoiceIndex
)

// AnswerValue is a tagged answer variant. The zero value is invalid.
type AnswerValue struct {
	Kind   AnswerKind
	Choice int
}

// ChoiceAnswer builds a single-choice answer pointing at the given option index.
func ChoiceAnswer(index int) AnswerValue {
	return AnswerValue{Kind: AnswerChoiceIndex, Choice: index}
}

// Equals reports exact, type-sensitive equality. Invalid values are never
// equal, not even to each other.
func (v AnswerValue) Equals(other AnswerValue) bool {
	if v.Kind == AnswerInvalid || other.Kind == AnswerInvalid {
		return false
	}
	return v.Kind == other.Kind && v.Choice == other.Choice
}

// Valid reports whether the value carries a recognized variant.
func (v AnswerValue) Valid() bool {
	return v.Kind != AnswerInvalid
}

// MarshalJSON writes a choice answer as its bare option index, matching the
// persisted submission wire format. Invalid values marshal as null.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Kind == AnswerChoiceIndex {
		return json.Marshal(v.Choice)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts an integer option index. Any other shape (string,
// float with fraction, object, null) yields an invalid value rather than an
// error so one malformed answer cannot abort a whole submission.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		*v = AnswerValue{}
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		*v = AnswerValue{}
		return nil
	}
	*v = AnswerValue{Kind: AnswerChoiceIndex, Choice: int(i)}
	return nil
}

// AnswerMap maps question ID to the candidate's answer.
type AnswerMap map[string]AnswerValue
