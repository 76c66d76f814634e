package postgres

import (
	"fmt"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

// Repository is the gorm-backed aggregate store.
type Repository struct {
	db *gorm.DB

	user           repositories.UserRepository
	job            repositories.JobRepository
	candidate      repositories.CandidateRepository
	application    repositories.ApplicationRepository
	interviewPanel repositories.InterviewPanelRepository
	interview      repositories.InterviewRepository
	question       repositories.QuestionRepository
	assessment     repositories.AssessmentRepository
	submission     repositories.SubmissionRepository
	offer          repositories.OfferRepository
	dashboard      repositories.DashboardRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:             db,
		user:           NewUserPostgreSQL(db),
		job:            NewJobPostgreSQL(db),
		candidate:      NewCandidatePostgreSQL(db),
		application:    NewApplicationPostgreSQL(db),
		interviewPanel: NewInterviewPanelPostgreSQL(db),
		interview:      NewInterviewPostgreSQL(db),
		question:       NewQuestionPostgreSQL(db),
		assessment:     NewAssessmentPostgreSQL(db),
		submission:     NewSubmissionPostgreSQL(db),
		offer:          NewOfferPostgreSQL(db),
		dashboard:      NewDashboardPostgreSQL(db),
	}
}

func (r *Repository) User() repositories.UserRepository                     { return r.user }
func (r *Repository) Job() repositories.JobRepository                       { return r.job }
func (r *Repository) Candidate() repositories.CandidateRepository           { return r.candidate }
func (r *Repository) Application() repositories.ApplicationRepository       { return r.application }
func (r *Repository) InterviewPanel() repositories.InterviewPanelRepository { return r.interviewPanel }
func (r *Repository) Interview() repositories.InterviewRepository           { return r.interview }
func (r *Repository) Question() repositories.QuestionRepository             { return r.question }
func (r *Repository) Assessment() repositories.AssessmentRepository         { return r.assessment }
func (r *Repository) Submission() repositories.SubmissionRepository         { return r.submission }
func (r *Repository) Offer() repositories.OfferRepository                   { return r.offer }
func (r *Repository) Dashboard() repositories.DashboardRepository           { return r.dashboard }

// AutoMigrate creates or updates the full relational schema.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
		&models.InterviewPanel{},
		&models.Interview{},
		&models.Question{},
		&models.Assessment{},
		&models.AssessmentSubmission{},
		&models.OfferLetter{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
