package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/ats-service/internal/services"
	"github.com/talentflow/ats-service/internal/utils"
)

// HandlerManager aggregates all HTTP handlers for route registration.
type HandlerManager struct {
	User        *UserHandler
	Job         *JobHandler
	Candidate   *CandidateHandler
	Application *ApplicationHandler
	Interview   *InterviewHandler
	Question    *QuestionHandler
	Assessment  *AssessmentHandler
	Submission  *SubmissionHandler
	Offer       *OfferHandler
	Dashboard   *DashboardHandler
}

func NewHandlerManager(sm *services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		User:        NewUserHandler(sm.User, logger),
		Job:         NewJobHandler(sm.Job, logger),
		Candidate:   NewCandidateHandler(sm.Candidate, logger),
		Application: NewApplicationHandler(sm.Application, logger),
		Interview:   NewInterviewHandler(sm.Interview, logger),
		Question:    NewQuestionHandler(sm.QuestionBank, sm.Assessment, sm.ImportExport, logger),
		Assessment:  NewAssessmentHandler(sm.Assessment, logger),
		Submission:  NewSubmissionHandler(sm.Submission, logger),
		Offer:       NewOfferHandler(sm.Offer, logger),
		Dashboard:   NewDashboardHandler(sm.Dashboard, logger),
	}
}

// SetupRoutes registers all API routes on the given engine.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("", hm.User.CreateUser)
		users.GET("/:id", hm.User.GetUser)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.POST("", hm.Job.CreateJob)
		jobs.GET("", hm.Job.ListJobs)
		jobs.GET("/:id", hm.Job.GetJob)
		jobs.PUT("/:id", hm.Job.UpdateJob)
		jobs.DELETE("/:id", hm.Job.DeleteJob)
	}

	candidates := v1.Group("/candidates")
	{
		candidates.POST("", hm.Candidate.CreateCandidate)
		candidates.GET("", hm.Candidate.ListCandidates)
		candidates.GET("/:id", hm.Candidate.GetCandidate)
		candidates.PUT("/:id", hm.Candidate.UpdateCandidate)
	}

	applications := v1.Group("/applications")
	{
		applications.POST("", hm.Application.CreateApplication)
		applications.GET("", hm.Application.ListApplications)
		applications.GET("/:id", hm.Application.GetApplication)
		applications.PUT("/:id", hm.Application.UpdateApplication)
	}

	panels := v1.Group("/interview-panels")
	{
		panels.POST("", hm.Interview.CreatePanel)
		panels.GET("", hm.Interview.ListPanels)
		panels.GET("/:id", hm.Interview.GetPanel)
		panels.PUT("/:id", hm.Interview.UpdatePanel)
		panels.DELETE("/:id", hm.Interview.DeletePanel)
	}

	interviews := v1.Group("/interviews")
	{
		interviews.POST("", hm.Interview.ScheduleInterview)
		interviews.GET("", hm.Interview.ListInterviews)
		interviews.GET("/upcoming", hm.Interview.ListUpcomingInterviews)
		interviews.GET("/:id", hm.Interview.GetInterview)
		interviews.PUT("/:id", hm.Interview.UpdateInterview)
	}

	questions := v1.Group("/question-bank")
	{
		questions.POST("", hm.Question.CreateQuestion)
		questions.POST("/bulk", hm.Question.CreateQuestionsBulk)
		questions.POST("/generate-assessment", hm.Question.GenerateQuestionSet)
		questions.POST("/import", hm.Question.ImportQuestions)
		questions.GET("/export", hm.Question.ExportQuestions)
		questions.GET("", hm.Question.ListQuestions)
		questions.GET("/categories", hm.Question.ListCategories)
		questions.GET("/:id", hm.Question.GetQuestion)
		questions.PUT("/:id", hm.Question.UpdateQuestion)
		questions.DELETE("/:id", hm.Question.DeleteQuestion)
	}

	assessments := v1.Group("/assessments")
	{
		assessments.POST("", hm.Assessment.CreateAssessment)
		assessments.GET("", hm.Assessment.ListAssessments)
		assessments.GET("/:id", hm.Assessment.GetAssessment)
		assessments.PUT("/:id", hm.Assessment.UpdateAssessment)
		assessments.DELETE("/:id", hm.Assessment.DeleteAssessment)
		assessments.GET("/:id/generate-set", hm.Question.GenerateAssessmentSet)
	}

	submissions := v1.Group("/assessment-submissions")
	{
		submissions.POST("/start", hm.Submission.StartSubmission)
		submissions.GET("", hm.Submission.ListSubmissions)
		submissions.GET("/:id", hm.Submission.GetSubmission)
		submissions.POST("/:id/submit", hm.Submission.SubmitSubmission)
		submissions.GET("/candidate/:candidate_id", hm.Submission.GetSubmissionsByCandidate)
	}

	offers := v1.Group("/offers")
	{
		offers.POST("", hm.Offer.CreateOffer)
		offers.GET("", hm.Offer.ListOffers)
		offers.GET("/:id", hm.Offer.GetOffer)
		offers.PUT("/:id", hm.Offer.UpdateOffer)
		offers.POST("/:id/send", hm.Offer.SendOffer)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats", hm.Dashboard.GetStats)
	}
}
