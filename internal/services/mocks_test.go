package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CreateBatch(ctx context.Context, questions []*models.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Question, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Question), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssessmentRepository is a mock implementation of AssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) List(ctx context.Context) ([]*models.Assessment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) GetByJob(ctx context.Context, jobID string) ([]*models.Assessment, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]*models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) Update(ctx context.Context, assessment *models.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSubmissionRepository is a mock implementation of SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *models.AssessmentSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id string) (*models.AssessmentSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) List(ctx context.Context, filters repositories.SubmissionFilters) ([]*models.AssessmentSubmission, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.AssessmentSubmission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionRepository) GetByCandidate(ctx context.Context, candidateID string) ([]*models.AssessmentSubmission, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]*models.AssessmentSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, submission *models.AssessmentSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

// MockApplicationRepository is a mock implementation of ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByCandidate(ctx context.Context, candidateID string) ([]*models.Application, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// MockOfferRepository is a mock implementation of OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *models.OfferLetter) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id string) (*models.OfferLetter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OfferLetter), args.Error(1)
}

func (m *MockOfferRepository) GetByApplication(ctx context.Context, applicationID string) (*models.OfferLetter, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OfferLetter), args.Error(1)
}

func (m *MockOfferRepository) List(ctx context.Context) ([]*models.OfferLetter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.OfferLetter), args.Error(1)
}

func (m *MockOfferRepository) Update(ctx context.Context, offer *models.OfferLetter) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

// MockDashboardRepository is a mock implementation of DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Stats(ctx context.Context) (*repositories.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.DashboardStats), args.Error(1)
}

// MockRepository aggregates the entity mocks behind the Repository interface.
// Stores a test does not touch stay nil.
type MockRepository struct {
	questionRepo    *MockQuestionRepository
	assessmentRepo  *MockAssessmentRepository
	submissionRepo  *MockSubmissionRepository
	applicationRepo *MockApplicationRepository
	offerRepo       *MockOfferRepository
	dashboardRepo   *MockDashboardRepository
}

func (m *MockRepository) User() repositories.UserRepository           { return nil }
func (m *MockRepository) Job() repositories.JobRepository             { return nil }
func (m *MockRepository) Candidate() repositories.CandidateRepository { return nil }
func (m *MockRepository) Application() repositories.ApplicationRepository {
	return m.applicationRepo
}
func (m *MockRepository) InterviewPanel() repositories.InterviewPanelRepository { return nil }
func (m *MockRepository) Interview() repositories.InterviewRepository           { return nil }
func (m *MockRepository) Question() repositories.QuestionRepository             { return m.questionRepo }
func (m *MockRepository) Assessment() repositories.AssessmentRepository         { return m.assessmentRepo }
func (m *MockRepository) Submission() repositories.SubmissionRepository         { return m.submissionRepo }
func (m *MockRepository) Offer() repositories.OfferRepository                   { return m.offerRepo }
func (m *MockRepository) Dashboard() repositories.DashboardRepository           { return m.dashboardRepo }

// MockCacheService is a mock implementation of cache.CacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCacheService) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}
