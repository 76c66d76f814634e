// Package session runs one candidate's timed assessment attempt: a countdown
// against the assessment's time limit, answer collection, auto-submit on
// expiry, and best-effort anti-cheat signals. The controller is the only
// stateful piece of the assessment core; the selector and scorer it feeds are
// pure.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/talentflow/ats-service/internal/models"
)

// State is the attempt lifecycle position.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateSubmitting
	StateSubmitted
	StateAutoSubmitted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateAutoSubmitted:
		return "auto_submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the attempt has reached a final state.
func (s State) Terminal() bool {
	return s == StateSubmitted || s == StateAutoSubmitted
}

var (
	ErrAlreadyStarted  = errors.New("session already started")
	ErrNotInProgress   = errors.New("session is not in progress")
	ErrSubmitInFlight  = errors.New("submission already in flight")
	ErrNoQuestions     = errors.New("no questions selected for session")
	ErrSessionFinished = errors.New("session already finished")
)

// Draft is what the controller hands to the persistence callback on submit.
// Partial or empty answers are valid; the scorer treats missing answers as
// incorrect.
type Draft struct {
	AssessmentID  string
	CandidateID   string
	ApplicationID string
	Questions     []*models.Question
	Answers       models.AnswerMap
	StartedAt     time.Time
	TimeSpent     int // minutes
	AutoSubmitted bool
}

// SubmitFunc persists a finished attempt. It is called at most once
// successfully per session; a failed call may be retried manually.
type SubmitFunc func(ctx context.Context, draft *Draft) (*models.AssessmentSubmission, error)

// Display is the best-effort exclusive presentation hook. Errors are logged,
// never fatal, and never block the attempt.
type Display interface {
	EnterFullScreen() error
	ExitFullScreen() error
}

// Config assembles a controller for one attempt.
type Config struct {
	Assessment    *models.Assessment
	Questions     []*models.Question
	CandidateID   string
	ApplicationID string
	Submit        SubmitFunc

	// Optional. Defaults: RealClock, slog.Default, no display.
	Clock   Clock
	Logger  *slog.Logger
	Display Display
}

// Controller drives the NotStarted → InProgress → Submitting → Terminal state
// machine for a single attempt. All exported methods are safe for concurrent
// use; the manual-submit versus timer-expiry race is resolved by a single
// in-flight submission guard.
type Controller struct {
	cfg    Config
	clock  Clock
	logger *slog.Logger

	mu         sync.Mutex
	state      State
	remaining  int // seconds
	answers    models.AnswerMap
	startedAt  time.Time
	submitting bool
	result     *models.AssessmentSubmission
	stopTimer  chan struct{}

	done chan struct{}
}

// New validates the config and returns an unstarted controller. An empty
// question set is a configuration error surfaced to the operator before any
// candidate-facing work begins.
func New(cfg Config) (*Controller, error) {
	if cfg.Assessment == nil {
		return nil, errors.New("session: assessment is required")
	}
	if len(cfg.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if cfg.Submit == nil {
		return nil, errors.New("session: submit callback is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Controller{
		cfg:     cfg,
		clock:   cfg.Clock,
		logger:  cfg.Logger.With("assessment_id", cfg.Assessment.ID, "candidate_id", cfg.CandidateID),
		state:   StateNotStarted,
		answers: models.AnswerMap{},
		done:    make(chan struct{}),
	}, nil
}

// Start moves the attempt to InProgress, initializes the countdown to the
// assessment time limit and begins ticking. If the assessment enforces
// anti-cheat, full-screen entry is attempted best-effort.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateNotStarted {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.state = StateInProgress
	c.remaining = c.cfg.Assessment.TimeLimit * 60
	c.startedAt = c.clock.Now()
	c.stopTimer = make(chan struct{})
	stop := c.stopTimer
	c.mu.Unlock()

	if c.cfg.Assessment.PreventCheating && c.cfg.Display != nil {
		if err := c.cfg.Display.EnterFullScreen(); err != nil {
			c.logger.Warn("full-screen entry denied", "error", err)
		}
	}

	c.logger.Info("assessment session started",
		"time_limit_minutes", c.cfg.Assessment.TimeLimit,
		"question_count", len(c.cfg.Questions))

	go c.countdown(ctx, stop)
	return nil
}

// countdown decrements the remaining-time counter once per second and fires
// auto-submit when it reaches zero. It exits on every path that leaves
// InProgress so a stale timer can never fire a second submission.
func (c *Controller) countdown(ctx context.Context, stop <-chan struct{}) {
	ticker := c.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C():
			c.mu.Lock()
			if c.state != StateInProgress {
				c.mu.Unlock()
				return
			}
			c.remaining--
			expired := c.remaining <= 0
			c.mu.Unlock()

			if expired {
				c.logger.Info("time limit reached, auto-submitting")
				if _, err := c.submit(ctx, true); err != nil {
					c.logger.Error("auto-submit failed, awaiting manual retry", "error", err)
				}
				return
			}
		}
	}
}

// RecordAnswer stores the candidate's answer for a presented question.
func (c *Controller) RecordAnswer(questionID string, answer models.AnswerValue) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateInProgress {
		return ErrNotInProgress
	}
	c.answers[questionID] = answer
	return nil
}

// Submit is the candidate's explicit submit action.
func (c *Controller) Submit(ctx context.Context) (*models.AssessmentSubmission, error) {
	return c.submit(ctx, false)
}

func (c *Controller) submit(ctx context.Context, auto bool) (*models.AssessmentSubmission, error) {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return nil, ErrSessionFinished
	}
	if c.state != StateInProgress && c.state != StateSubmitting {
		c.mu.Unlock()
		return nil, ErrNotInProgress
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.submitting = true
	c.state = StateSubmitting
	if c.stopTimer != nil {
		close(c.stopTimer)
		c.stopTimer = nil
	}

	elapsed := c.clock.Now().Sub(c.startedAt)
	draft := &Draft{
		AssessmentID:  c.cfg.Assessment.ID,
		CandidateID:   c.cfg.CandidateID,
		ApplicationID: c.cfg.ApplicationID,
		Questions:     c.cfg.Questions,
		Answers:       c.copyAnswersLocked(),
		StartedAt:     c.startedAt,
		TimeSpent:     int(elapsed.Round(time.Minute) / time.Minute),
		AutoSubmitted: auto,
	}
	c.mu.Unlock()

	submission, err := c.cfg.Submit(ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Persistence failed: release the guard so the candidate can retry
		// manually. The countdown is not restarted; its zero event already
		// fired or the candidate already chose to submit.
		c.submitting = false
		return nil, fmt.Errorf("submit assessment: %w", err)
	}

	if auto {
		c.state = StateAutoSubmitted
	} else {
		c.state = StateSubmitted
	}
	c.result = submission
	close(c.done)

	if c.cfg.Assessment.PreventCheating && c.cfg.Display != nil {
		if derr := c.cfg.Display.ExitFullScreen(); derr != nil {
			c.logger.Warn("full-screen exit failed", "error", derr)
		}
	}

	c.logger.Info("assessment session finished",
		"state", c.state.String(),
		"answered", len(draft.Answers),
		"score", submission.Score,
		"percentage", submission.Percentage)

	return submission, nil
}

// ReportVisibilityLoss records that the candidate's tab lost visibility.
// Advisory only: it is logged when the assessment enforces anti-cheat and
// never alters scoring.
func (c *Controller) ReportVisibilityLoss() {
	c.mu.Lock()
	inProgress := c.state == StateInProgress
	c.mu.Unlock()
	if inProgress && c.cfg.Assessment.PreventCheating {
		c.logger.Warn("tab visibility lost during assessment")
	}
}

// NavigationGuardActive reports whether leaving the page should prompt a
// loss-of-progress confirmation. The guard drops as soon as a submission is
// in flight or done.
func (c *Controller) NavigationGuardActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateInProgress && !c.submitting
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the countdown value in seconds.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Answers returns a copy of the answers collected so far.
func (c *Controller) Answers() models.AnswerMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyAnswersLocked()
}

// Result returns the persisted submission once the session is terminal.
func (c *Controller) Result() *models.AssessmentSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Done is closed when the session reaches a terminal state.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) copyAnswersLocked() models.AnswerMap {
	out := make(models.AnswerMap, len(c.answers))
	for k, v := range c.answers {
		out[k] = v
	}
	return out
}
