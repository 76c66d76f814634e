package services

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/talentflow/ats-service/internal/cache"
	"github.com/talentflow/ats-service/internal/events"
	"github.com/talentflow/ats-service/internal/repositories"
	"github.com/talentflow/ats-service/internal/selection"
	"github.com/talentflow/ats-service/internal/validator"
)

// ServiceManager wires every service against shared infrastructure.
type ServiceManager struct {
	User         UserService
	Job          JobService
	Candidate    CandidateService
	Application  ApplicationService
	Interview    InterviewService
	QuestionBank QuestionBankService
	Assessment   AssessmentService
	Submission   SubmissionService
	Offer        OfferService
	Dashboard    DashboardService
	ImportExport ImportExportService
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) *ServiceManager {
	selector := selection.New(rand.NewSource(time.Now().UnixNano()))
	questionBank := NewQuestionBankService(repo, logger, v, selector)

	return &ServiceManager{
		User:         NewUserService(repo, logger, v),
		Job:          NewJobService(repo, logger, v),
		Candidate:    NewCandidateService(repo, logger, v),
		Application:  NewApplicationService(repo, logger, v, publisher),
		Interview:    NewInterviewService(repo, logger, v, publisher),
		QuestionBank: questionBank,
		Assessment:   NewAssessmentService(repo, logger, v),
		Submission:   NewSubmissionService(repo, questionBank, cacheService, logger, v, publisher),
		Offer:        NewOfferService(repo, logger, v, publisher),
		Dashboard:    NewDashboardService(repo, cacheService, logger),
		ImportExport: NewImportExportService(repo, logger, v),
	}
}
