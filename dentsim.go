package dentsim

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/dentsim/internal/runtime"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/ports"
	"github.com/aretw0/dentsim/pkg/seed"
	"github.com/aretw0/dentsim/pkg/session"
)

// Version is the released version of the module.
const Version = "0.1.0"

// Simulator is the high-level entry point for the dentsim library.
// It wraps the internal runtime and hands out sessions bound to it.
type Simulator struct {
	runtime     *runtime.Engine
	runtimeOpts []runtime.EngineOption
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithLifecycleHooks registers observability hooks on every session.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine and sessions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for timestamps and the seed dates.
func WithClock(clock func() time.Time) Option {
	return func(s *Simulator) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithClock(clock))
	}
}

// WithSeed replaces the built-in clinic dataset.
func WithSeed(ds seed.Dataset) Option {
	return func(s *Simulator) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithDataset(ds))
	}
}

// WithCatalog replaces the default assessment catalog.
func WithCatalog(c assessment.Catalog) Option {
	return func(s *Simulator) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithCatalog(c))
	}
}

// WithHistoryDepth caps the undo stack. Zero disables undo.
func WithHistoryDepth(n int) Option {
	return func(s *Simulator) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithHistoryDepth(n))
	}
}

// New initializes a Simulator.
func New(opts ...Option) *Simulator {
	sim := &Simulator{}
	for _, opt := range opts {
		opt(sim)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if sim.logger == nil {
		sim.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runtimeOpts := append([]runtime.EngineOption{runtime.WithLogger(sim.logger)}, sim.runtimeOpts...)
	sim.runtime = runtime.NewEngine(runtimeOpts...)
	return sim
}

// Initial returns a fresh session state.
func (s *Simulator) Initial() domain.State {
	return s.runtime.Initial()
}

// Apply computes the successor of state under action without side effects.
func (s *Simulator) Apply(ctx context.Context, state domain.State, action domain.Action) (domain.State, domain.Outcome) {
	return s.runtime.Apply(ctx, state, action)
}

// Catalog returns the catalog sessions are graded against.
func (s *Simulator) Catalog() assessment.Catalog {
	return s.runtime.Catalog()
}

// NewSession starts a single in-process session.
func (s *Simulator) NewSession(opts ...session.Option) *session.Controller {
	return session.NewController(s, s.sessionOptions(opts)...)
}

// NewManager hosts many sessions over store.
func (s *Simulator) NewManager(store ports.SnapshotStore, opts ...session.Option) *session.Manager {
	return session.NewManager(s, store, s.sessionOptions(opts)...)
}

func (s *Simulator) sessionOptions(opts []session.Option) []session.Option {
	base := []session.Option{
		session.WithLogger(s.logger),
		session.WithLifecycleHooks(s.hooks),
	}
	return append(base, opts...)
}
