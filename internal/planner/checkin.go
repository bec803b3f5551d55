package planner

import (
	"context"
	"sync"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"go.uber.org/zap"
)

// RequestState is the explicit lifecycle of the check-in request. New
// submissions are only allowed from idle and failed; inFlight rejects them
// outright so two analyses can never race.
type RequestState int

const (
	StateIdle RequestState = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s RequestState) String() string {
	switch s {
	case StateInFlight:
		return "in_flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// sessionStore is what the check-in manager needs from the session state.
type sessionStore interface {
	Profile() model.UserProfile
	Persona() model.Persona
	SetMetrics(m model.WellnessMetrics)
	SetAnalysis(a *model.DayAnalysis)
	ClearAnalysis()
}

// Checkin mediates the one asynchronous operation in the system: the
// planning call. Single-flight by construction.
type Checkin struct {
	logger *zap.SugaredLogger
	client Client
	store  sessionStore
	now    func() time.Time

	mu      sync.Mutex
	state   RequestState
	lastErr error
}

func NewCheckin(logger *zap.SugaredLogger, client Client, store sessionStore, now func() time.Time) *Checkin {
	if now == nil {
		now = time.Now
	}
	return &Checkin{
		logger: logger,
		client: client,
		store:  store,
		now:    now,
	}
}

func (c *Checkin) State() RequestState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit issues exactly one planning call for the given metrics. On success
// the new DayAnalysis replaces the previous one atomically (the store swap
// also resets the accepted-suggestion set). On failure the prior analysis,
// pool and accepted set are untouched.
func (c *Checkin) Submit(ctx context.Context, metrics model.WellnessMetrics) (*model.DayAnalysis, error) {
	c.mu.Lock()
	switch c.state {
	case StateInFlight:
		c.mu.Unlock()
		return nil, model.ErrAnalysisInFlight
	case StateSucceeded:
		c.mu.Unlock()
		return nil, model.ErrCheckinComplete
	}
	c.state = StateInFlight
	c.mu.Unlock()

	resp, err := c.client.AnalyzeDay(ctx, c.store.Profile(), metrics, c.store.Persona())
	if err != nil {
		c.logger.Errorw("planning call failed", "err", err)
		c.mu.Lock()
		c.state = StateFailed
		c.lastErr = err
		c.mu.Unlock()
		return nil, err
	}

	analysis := BuildAnalysis(resp, c.now())
	c.store.SetMetrics(metrics)
	c.store.SetAnalysis(analysis)

	c.mu.Lock()
	c.state = StateSucceeded
	c.lastErr = nil
	c.mu.Unlock()

	c.logger.Infow("day analysis ready",
		"analysis_id", analysis.ID,
		"burnout_level", analysis.BurnoutLevel,
		"schedule_items", len(analysis.Schedule),
		"suggestions", len(analysis.Suggestions),
	)

	return analysis, nil
}

// Reset clears the current analysis and returns the machine to idle so a
// new check-in can be submitted. Rejected while a request is in flight.
func (c *Checkin) Reset() error {
	c.mu.Lock()
	if c.state == StateInFlight {
		c.mu.Unlock()
		return model.ErrAnalysisInFlight
	}
	c.state = StateIdle
	c.lastErr = nil
	c.mu.Unlock()

	c.store.ClearAnalysis()
	return nil
}
