package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/ats-service/internal/models"
)

// EventType represents different types of recruiting events
type EventType string

const (
	// Submission events
	EventSubmissionSubmitted EventType = "submission.submitted"
	EventSubmissionGraded    EventType = "submission.graded"

	// Application events
	EventApplicationStageChanged EventType = "application.stage_changed"

	// Offer events
	EventOfferSent EventType = "offer.sent"

	// Interview events
	EventInterviewScheduled EventType = "interview.scheduled"
)

// RecruitingEvent is the envelope shared by every published event
type RecruitingEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

const eventSource = "ats-service"

// Submission event payloads

type SubmissionSubmittedEvent struct {
	SubmissionID  string    `json:"submission_id"`
	AssessmentID  string    `json:"assessment_id"`
	CandidateID   string    `json:"candidate_id"`
	ApplicationID string    `json:"application_id"`
	SubmittedAt   time.Time `json:"submitted_at"`
	AutoSubmitted bool      `json:"auto_submitted"`
	TimeSpent     int       `json:"time_spent"` // seconds
}

type SubmissionGradedEvent struct {
	SubmissionID string    `json:"submission_id"`
	AssessmentID string    `json:"assessment_id"`
	CandidateID  string    `json:"candidate_id"`
	GradedAt     time.Time `json:"graded_at"`
	Score        int       `json:"score"`
	MaxScore     int       `json:"max_score"`
	Percentage   int       `json:"percentage"`
	Passed       bool      `json:"passed"`
}

// Application event payload

type ApplicationStageChangedEvent struct {
	ApplicationID string                  `json:"application_id"`
	JobID         string                  `json:"job_id"`
	CandidateID   string                  `json:"candidate_id"`
	FromStage     models.ApplicationStage `json:"from_stage"`
	ToStage       models.ApplicationStage `json:"to_stage"`
	ChangedAt     time.Time               `json:"changed_at"`
}

// Offer event payload

type OfferSentEvent struct {
	OfferID       string    `json:"offer_id"`
	ApplicationID string    `json:"application_id"`
	Title         string    `json:"title"`
	SentAt        time.Time `json:"sent_at"`
}

// Interview event payload

type InterviewScheduledEvent struct {
	InterviewID   string    `json:"interview_id"`
	ApplicationID string    `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Duration      int       `json:"duration"` // minutes
}

// Event factory functions

func NewSubmissionSubmittedEvent(submission *models.AssessmentSubmission, autoSubmitted bool) *RecruitingEvent {
	submittedAt := time.Now()
	if submission.SubmittedAt != nil {
		submittedAt = *submission.SubmittedAt
	}
	return newEvent(EventSubmissionSubmitted, SubmissionSubmittedEvent{
		SubmissionID:  submission.ID,
		AssessmentID:  submission.AssessmentID,
		CandidateID:   submission.CandidateID,
		ApplicationID: submission.ApplicationID,
		SubmittedAt:   submittedAt,
		AutoSubmitted: autoSubmitted,
		TimeSpent:     submission.TimeSpent,
	})
}

func NewSubmissionGradedEvent(submission *models.AssessmentSubmission, passed bool) *RecruitingEvent {
	gradedAt := time.Now()
	if submission.GradedAt != nil {
		gradedAt = *submission.GradedAt
	}
	return newEvent(EventSubmissionGraded, SubmissionGradedEvent{
		SubmissionID: submission.ID,
		AssessmentID: submission.AssessmentID,
		CandidateID:  submission.CandidateID,
		GradedAt:     gradedAt,
		Score:        submission.Score,
		MaxScore:     submission.MaxScore,
		Percentage:   submission.Percentage,
		Passed:       passed,
	})
}

func NewApplicationStageChangedEvent(application *models.Application, from models.ApplicationStage) *RecruitingEvent {
	return newEvent(EventApplicationStageChanged, ApplicationStageChangedEvent{
		ApplicationID: application.ID,
		JobID:         application.JobID,
		CandidateID:   application.CandidateID,
		FromStage:     from,
		ToStage:       application.Stage,
		ChangedAt:     time.Now(),
	})
}

func NewOfferSentEvent(offer *models.OfferLetter) *RecruitingEvent {
	sentAt := time.Now()
	if offer.SentAt != nil {
		sentAt = *offer.SentAt
	}
	return newEvent(EventOfferSent, OfferSentEvent{
		OfferID:       offer.ID,
		ApplicationID: offer.ApplicationID,
		Title:         offer.Title,
		SentAt:        sentAt,
	})
}

func NewInterviewScheduledEvent(interview *models.Interview) *RecruitingEvent {
	return newEvent(EventInterviewScheduled, InterviewScheduledEvent{
		InterviewID:   interview.ID,
		ApplicationID: interview.ApplicationID,
		ScheduledAt:   interview.ScheduledAt,
		Duration:      interview.Duration,
	})
}

func newEvent(eventType EventType, data interface{}) *RecruitingEvent {
	return &RecruitingEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data:      data,
	}
}
