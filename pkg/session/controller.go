package session

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
)

// Controller holds one live session. Dispatch is safe for concurrent use;
// actions are applied one at a time in arrival order.
type Controller struct {
	cfg    config
	engine Engine

	mu    sync.Mutex
	state domain.State
}

// NewController starts a session from the engine's initial state.
func NewController(engine Engine, opts ...Option) *Controller {
	cfg := newConfig(opts)
	if cfg.id == "" {
		cfg.id = cfg.newID()
	}
	return &Controller{
		cfg:    cfg,
		engine: engine,
		state:  engine.Initial(),
	}
}

// ID returns the session id used in lifecycle events.
func (c *Controller) ID() string {
	return c.cfg.id
}

// State returns the current state. It must not be mutated.
func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies one action and commits the result. Hooks run after the
// commit, outside the lock, so they may read State or dispatch again.
func (c *Controller) Dispatch(ctx context.Context, action domain.Action) (domain.State, domain.Outcome, error) {
	if action == nil {
		return c.State(), domain.Outcome{}, domain.ErrNilAction
	}

	start := time.Now()
	c.mu.Lock()
	next, out := c.engine.Apply(ctx, c.state, action)
	c.state = next
	c.mu.Unlock()
	took := time.Since(start)

	c.cfg.logger.DebugContext(ctx, "dispatched",
		"session_id", c.cfg.id,
		"kind", out.Kind,
		"applied", out.Applied,
		"verified", len(out.Verified))
	c.cfg.hooks.Emit(ctx, c.cfg.id, out, took)
	return next, out, nil
}

// Report scores the current progress grid.
func (c *Controller) Report() assessment.Report {
	s := c.State()
	return c.engine.Catalog().Score(s.Progress, s.AssessmentAttempts)
}
