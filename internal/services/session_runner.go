package services

import (
	"log/slog"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/session"
)

// NewSessionController binds a timed session controller to the submission
// service: the controller owns the countdown and answer collection, and its
// submit callback persists through SubmitDraft so grading and events are
// identical to direct API submissions.
func NewSessionController(
	service SubmissionService,
	assessment *models.Assessment,
	questions []*models.Question,
	candidateID, applicationID string,
	logger *slog.Logger,
) (*session.Controller, error) {
	return session.New(session.Config{
		Assessment:    assessment,
		Questions:     questions,
		CandidateID:   candidateID,
		ApplicationID: applicationID,
		Logger:        logger,
		Submit:        service.SubmitDraft,
	})
}
