package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/talentflow/ats-service/internal/cache"
	"github.com/talentflow/ats-service/internal/events"
	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/selection"
	"github.com/talentflow/ats-service/internal/session"
	"github.com/talentflow/ats-service/internal/validator"
	"gorm.io/gorm"
)

type submissionFixture struct {
	repo      *MockRepository
	cache     *MockCacheService
	publisher *events.MockEventPublisher
	service   SubmissionService
}

func newSubmissionFixture() *submissionFixture {
	repo := &MockRepository{
		questionRepo:    &MockQuestionRepository{},
		assessmentRepo:  &MockAssessmentRepository{},
		submissionRepo:  &MockSubmissionRepository{},
		applicationRepo: &MockApplicationRepository{},
	}
	cacheService := &MockCacheService{}
	publisher := events.NewMockEventPublisher(testLogger())
	v := validator.New()

	questions := NewQuestionBankService(repo, testLogger(), v, selection.New(rand.NewSource(1)))
	service := NewSubmissionService(repo, questions, cacheService, testLogger(), v, publisher)

	return &submissionFixture{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		service:   service,
	}
}

func TestSubmissionService_Start(t *testing.T) {
	f := newSubmissionFixture()

	assessment := &models.Assessment{
		ID:        "a1",
		Title:     "Backend screen",
		Type:      models.AssessmentManual,
		Questions: []string{"q1", "q2"},
	}
	questions := []*models.Question{
		bankQuestion("q1", "golang", models.DifficultyEasy),
		bankQuestion("q2", "golang", models.DifficultyMedium),
	}

	f.repo.assessmentRepo.On("GetByID", mock.Anything, "a1").Return(assessment, nil)
	f.repo.applicationRepo.On("GetByID", mock.Anything, "app1").Return(&models.Application{ID: "app1"}, nil)
	f.repo.questionRepo.On("GetByIDs", mock.Anything, []string{"q1", "q2"}).Return(questions, nil)
	f.repo.submissionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.AssessmentSubmission) bool {
		return s.Status == models.SubmissionInProgress &&
			len(s.SelectedQuestions) == 2 &&
			s.StartedAt != nil
	})).Return(nil)

	submission, err := f.service.Start(context.Background(), &StartSubmissionRequest{
		AssessmentID:  "a1",
		CandidateID:   "c1",
		ApplicationID: "app1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, submission)
	assert.Equal(t, models.SubmissionInProgress, submission.Status)
	assert.Equal(t, []string{"q1", "q2"}, []string(submission.SelectedQuestions))
	f.repo.submissionRepo.AssertExpectations(t)
}

func TestSubmissionService_Start_EmptyQuestionSet(t *testing.T) {
	f := newSubmissionFixture()

	assessment := &models.Assessment{
		ID:            "a1",
		Type:          models.AssessmentAuto,
		Categories:    []string{"cobol"},
		QuestionCount: 5,
	}

	f.repo.assessmentRepo.On("GetByID", mock.Anything, "a1").Return(assessment, nil)
	f.repo.applicationRepo.On("GetByID", mock.Anything, "app1").Return(&models.Application{ID: "app1"}, nil)
	f.repo.questionRepo.On("List", mock.Anything, mock.Anything).Return([]*models.Question{}, int64(0), nil)

	submission, err := f.service.Start(context.Background(), &StartSubmissionRequest{
		AssessmentID:  "a1",
		CandidateID:   "c1",
		ApplicationID: "app1",
	})

	assert.ErrorIs(t, err, ErrAssessmentNoQuestion)
	assert.Nil(t, submission)
	f.repo.submissionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmissionService_Start_AssessmentNotFound(t *testing.T) {
	f := newSubmissionFixture()

	f.repo.assessmentRepo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	submission, err := f.service.Start(context.Background(), &StartSubmissionRequest{
		AssessmentID:  "missing",
		CandidateID:   "c1",
		ApplicationID: "app1",
	})

	assert.ErrorIs(t, err, ErrAssessmentNotFound)
	assert.Nil(t, submission)
}

func TestSubmissionService_Submit_RecomputesScore(t *testing.T) {
	f := newSubmissionFixture()

	questions := []*models.Question{
		bankQuestion("q1", "golang", models.DifficultyEasy),
		bankQuestion("q2", "golang", models.DifficultyMedium),
		bankQuestion("q3", "sql", models.DifficultyEasy),
	}
	inProgress := &models.AssessmentSubmission{
		ID:                "s1",
		AssessmentID:      "a1",
		CandidateID:       "c1",
		ApplicationID:     "app1",
		SelectedQuestions: []string{"q1", "q2", "q3"},
		Status:            models.SubmissionInProgress,
	}

	f.repo.submissionRepo.On("GetByID", mock.Anything, "s1").Return(inProgress, nil)
	f.repo.questionRepo.On("GetByIDs", mock.Anything, []string{"q1", "q2", "q3"}).Return(questions, nil)
	f.repo.submissionRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.repo.assessmentRepo.On("GetByID", mock.Anything, "a1").Return(&models.Assessment{ID: "a1", PassingScore: 60}, nil)

	// Two of three answers match each question's correct choice (index 0).
	submission, err := f.service.Submit(context.Background(), "s1", &SubmitRequest{
		Answers: models.AnswerMap{
			"q1": models.ChoiceAnswer(0),
			"q2": models.ChoiceAnswer(2),
			"q3": models.ChoiceAnswer(0),
		},
		TimeSpent: 15,
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionGraded, submission.Status)
	assert.Equal(t, 2, submission.Score)
	assert.Equal(t, 3, submission.MaxScore)
	assert.Equal(t, 67, submission.Percentage)
	assert.Equal(t, 50, submission.CategoryScores["golang"])
	assert.Equal(t, 100, submission.CategoryScores["sql"])
	assert.NotNil(t, submission.SubmittedAt)
	assert.NotNil(t, submission.GradedAt)

	published := f.publisher.GetPublishedEvents()
	assert.Len(t, published, 2)
	assert.Equal(t, events.EventSubmissionSubmitted, published[0].Type)
	assert.Equal(t, events.EventSubmissionGraded, published[1].Type)

	graded, ok := published[1].Data.(events.SubmissionGradedEvent)
	assert.True(t, ok)
	assert.True(t, graded.Passed)
}

func TestSubmissionService_Submit_AlreadySubmitted(t *testing.T) {
	f := newSubmissionFixture()

	f.repo.submissionRepo.On("GetByID", mock.Anything, "s1").Return(&models.AssessmentSubmission{
		ID:     "s1",
		Status: models.SubmissionGraded,
	}, nil)

	submission, err := f.service.Submit(context.Background(), "s1", &SubmitRequest{}, "")

	assert.ErrorIs(t, err, ErrSubmissionAlreadySubmitted)
	assert.Nil(t, submission)
	f.repo.submissionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmissionService_Submit_ReplayReturnsOriginal(t *testing.T) {
	f := newSubmissionFixture()

	graded := &models.AssessmentSubmission{
		ID:     "s1",
		Score:  2,
		Status: models.SubmissionGraded,
	}

	f.cache.On("SetNX", mock.Anything, "idempotency:submission:key-1", "s1", idempotencyTTL).
		Return(false, nil)
	f.cache.On("Get", mock.Anything, "idempotency:submission:key-1", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*string) = "s1"
		}).Return(nil)
	f.repo.submissionRepo.On("GetByID", mock.Anything, "s1").Return(graded, nil)

	submission, err := f.service.Submit(context.Background(), "s1", &SubmitRequest{}, "key-1")

	assert.NoError(t, err)
	assert.Equal(t, graded, submission)
	f.repo.submissionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmissionService_Submit_ReplayRecordUnresolvable(t *testing.T) {
	f := newSubmissionFixture()

	f.cache.On("SetNX", mock.Anything, "idempotency:submission:key-1", "s1", idempotencyTTL).
		Return(false, nil)
	f.cache.On("Get", mock.Anything, "idempotency:submission:key-1", mock.Anything).
		Return(cache.ErrCacheMiss)

	submission, err := f.service.Submit(context.Background(), "s1", &SubmitRequest{}, "key-1")

	assert.ErrorIs(t, err, ErrDuplicateSubmission)
	assert.Nil(t, submission)
	f.repo.submissionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmissionService_Submit_FailedWriteReleasesKey(t *testing.T) {
	f := newSubmissionFixture()

	inProgress := &models.AssessmentSubmission{
		ID:                "s1",
		AssessmentID:      "a1",
		SelectedQuestions: []string{"q1"},
		Status:            models.SubmissionInProgress,
	}

	f.cache.On("SetNX", mock.Anything, "idempotency:submission:key-1", "s1", idempotencyTTL).
		Return(true, nil)
	f.cache.On("Delete", mock.Anything, "idempotency:submission:key-1").Return(nil)
	f.repo.submissionRepo.On("GetByID", mock.Anything, "s1").Return(inProgress, nil)
	f.repo.questionRepo.On("GetByIDs", mock.Anything, []string{"q1"}).
		Return([]*models.Question{bankQuestion("q1", "golang", models.DifficultyEasy)}, nil)
	f.repo.submissionRepo.On("Update", mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	submission, err := f.service.Submit(context.Background(), "s1", &SubmitRequest{}, "key-1")

	assert.Error(t, err)
	assert.Nil(t, submission)
	f.cache.AssertCalled(t, "Delete", mock.Anything, "idempotency:submission:key-1")
}

func TestSubmissionService_Submit_CacheDownDoesNotBlock(t *testing.T) {
	f := newSubmissionFixture()

	f.cache.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("connection refused"))

	inProgress := &models.AssessmentSubmission{
		ID:                "s1",
		AssessmentID:      "a1",
		SelectedQuestions: []string{"q1"},
		Status:            models.SubmissionInProgress,
	}
	f.repo.submissionRepo.On("GetByID", mock.Anything, "s1").Return(inProgress, nil)
	f.repo.questionRepo.On("GetByIDs", mock.Anything, []string{"q1"}).
		Return([]*models.Question{bankQuestion("q1", "golang", models.DifficultyEasy)}, nil)
	f.repo.submissionRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.repo.assessmentRepo.On("GetByID", mock.Anything, "a1").Return(&models.Assessment{ID: "a1", PassingScore: 70}, nil)

	submission, err := f.service.Submit(context.Background(), "s1", &SubmitRequest{}, "key-1")

	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionGraded, submission.Status)
}

func TestSubmissionService_SubmitDraft(t *testing.T) {
	f := newSubmissionFixture()

	questions := []*models.Question{
		bankQuestion("q1", "golang", models.DifficultyEasy),
		bankQuestion("q2", "golang", models.DifficultyMedium),
	}

	f.repo.submissionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.AssessmentSubmission) bool {
		return s.Status == models.SubmissionGraded &&
			s.Score == 1 && s.MaxScore == 2 &&
			len(s.SelectedQuestions) == 2
	})).Return(nil)
	f.repo.assessmentRepo.On("GetByID", mock.Anything, "a1").Return(&models.Assessment{ID: "a1", PassingScore: 70}, nil)

	started := time.Now().Add(-10 * time.Minute)
	submission, err := f.service.SubmitDraft(context.Background(), &session.Draft{
		AssessmentID:  "a1",
		CandidateID:   "c1",
		ApplicationID: "app1",
		Questions:     questions,
		Answers: models.AnswerMap{
			"q1": models.ChoiceAnswer(0),
			"q2": models.ChoiceAnswer(1),
		},
		StartedAt:     started,
		TimeSpent:     10,
		AutoSubmitted: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionGraded, submission.Status)
	assert.Equal(t, 10, submission.TimeSpent)
	assert.NotNil(t, submission.GradedAt)

	published := f.publisher.GetPublishedEvents()
	assert.Len(t, published, 2)
	submitted, ok := published[0].Data.(events.SubmissionSubmittedEvent)
	assert.True(t, ok)
	assert.True(t, submitted.AutoSubmitted)
}

func TestSessionControllerPersistsThroughService(t *testing.T) {
	f := newSubmissionFixture()

	questions := []*models.Question{
		bankQuestion("q1", "golang", models.DifficultyEasy),
	}
	assessment := &models.Assessment{ID: "a1", Title: "Backend screen", TimeLimit: 30, PassingScore: 70}

	f.repo.submissionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.repo.assessmentRepo.On("GetByID", mock.Anything, "a1").Return(assessment, nil)

	controller, err := NewSessionController(f.service, assessment, questions, "c1", "app1", testLogger())
	assert.NoError(t, err)

	assert.NoError(t, controller.Start(context.Background()))
	assert.NoError(t, controller.RecordAnswer("q1", models.ChoiceAnswer(0)))

	submission, err := controller.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionGraded, submission.Status)
	assert.Equal(t, 1, submission.Score)
	assert.True(t, controller.State().Terminal())
	f.repo.submissionRepo.AssertExpectations(t)
}

func TestSubmissionService_Submit_NotFound(t *testing.T) {
	f := newSubmissionFixture()

	f.repo.submissionRepo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	submission, err := f.service.Submit(context.Background(), "missing", &SubmitRequest{}, "")

	assert.ErrorIs(t, err, ErrSubmissionNotFound)
	assert.Nil(t, submission)
}
