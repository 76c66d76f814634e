package repositories

import (
	"context"
	"errors"

	"github.com/talentflow/ats-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type QuestionFilters struct {
	Categories   []string                 `json:"categories"`
	Difficulties []models.DifficultyLevel `json:"difficulties"`
	Type         *models.QuestionType     `json:"type"`
	CreatedBy    *string                  `json:"created_by"`
	Limit        int                      `json:"limit"`
	Offset       int                      `json:"offset"`
}

type SubmissionFilters struct {
	AssessmentID  *string                  `json:"assessment_id"`
	CandidateID   *string                  `json:"candidate_id"`
	ApplicationID *string                  `json:"application_id"`
	Status        *models.SubmissionStatus `json:"status"`
	Limit         int                      `json:"limit"`
	Offset        int                      `json:"offset"`
}

// ===== DASHBOARD =====

type PipelineCounts struct {
	Review     int64 `json:"review"`
	Assessment int64 `json:"assessment"`
	Interview  int64 `json:"interview"`
	Offer      int64 `json:"offer"`
}

type DashboardStats struct {
	ActiveJobs          int64          `json:"activeJobs"`
	TotalCandidates     int64          `json:"totalCandidates"`
	ScheduledInterviews int64          `json:"scheduledInterviews"`
	PendingOffers       int64          `json:"pendingOffers"`
	Pipeline            PipelineCounts `json:"pipeline"`
}

// ===== REPOSITORY INTERFACES =====

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context) ([]*models.Job, error)
	GetByCreator(ctx context.Context, creatorID string) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	List(ctx context.Context) ([]*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	GetByJob(ctx context.Context, jobID string) ([]*models.Application, error)
	GetByCandidate(ctx context.Context, candidateID string) ([]*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
}

type InterviewPanelRepository interface {
	Create(ctx context.Context, panel *models.InterviewPanel) error
	GetByID(ctx context.Context, id string) (*models.InterviewPanel, error)
	List(ctx context.Context) ([]*models.InterviewPanel, error)
	GetByJob(ctx context.Context, jobID string) ([]*models.InterviewPanel, error)
	Update(ctx context.Context, panel *models.InterviewPanel) error
	Delete(ctx context.Context, id string) error
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	List(ctx context.Context) ([]*models.Interview, error)
	GetByApplication(ctx context.Context, applicationID string) ([]*models.Interview, error)
	GetUpcoming(ctx context.Context) ([]*models.Interview, error)
	Update(ctx context.Context, interview *models.Interview) error
}

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	CreateBatch(ctx context.Context, questions []*models.Question) error
	GetByID(ctx context.Context, id string) (*models.Question, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Question, error)
	List(ctx context.Context, filters QuestionFilters) ([]*models.Question, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id string) error
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *models.Assessment) error
	GetByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context) ([]*models.Assessment, error)
	GetByJob(ctx context.Context, jobID string) ([]*models.Assessment, error)
	Update(ctx context.Context, assessment *models.Assessment) error
	Delete(ctx context.Context, id string) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.AssessmentSubmission) error
	GetByID(ctx context.Context, id string) (*models.AssessmentSubmission, error)
	List(ctx context.Context, filters SubmissionFilters) ([]*models.AssessmentSubmission, int64, error)
	GetByCandidate(ctx context.Context, candidateID string) ([]*models.AssessmentSubmission, error)
	Update(ctx context.Context, submission *models.AssessmentSubmission) error
}

type OfferRepository interface {
	Create(ctx context.Context, offer *models.OfferLetter) error
	GetByID(ctx context.Context, id string) (*models.OfferLetter, error)
	GetByApplication(ctx context.Context, applicationID string) (*models.OfferLetter, error)
	List(ctx context.Context) ([]*models.OfferLetter, error)
	Update(ctx context.Context, offer *models.OfferLetter) error
}

type DashboardRepository interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// Repository aggregates access to every entity store.
type Repository interface {
	User() UserRepository
	Job() JobRepository
	Candidate() CandidateRepository
	Application() ApplicationRepository
	InterviewPanel() InterviewPanelRepository
	Interview() InterviewRepository
	Question() QuestionRepository
	Assessment() AssessmentRepository
	Submission() SubmissionRepository
	Offer() OfferRepository
	Dashboard() DashboardRepository
}

// IsNotFoundError reports whether err is the store's record-not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
