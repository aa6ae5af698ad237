package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/dentsim/internal/logging"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/ports"
	"github.com/google/uuid"
)

// Engine is the transition function sessions are driven by.
type Engine interface {
	Initial() domain.State
	Apply(ctx context.Context, s domain.State, a domain.Action) (domain.State, domain.Outcome)
	Catalog() assessment.Catalog
}

type config struct {
	id      string
	newID   func() string
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	locker  ports.DistributedLocker
	lockTTL time.Duration
}

func newConfig(opts []Option) config {
	c := config{
		newID:   uuid.NewString,
		logger:  logging.NewNop(),
		lockTTL: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a Controller or a Manager.
type Option func(*config)

// WithID fixes the id a Controller reports in lifecycle events.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithIDGenerator sets how new session ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(c *config) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithLifecycleHooks registers observability hooks, called after each commit.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLocker enables distributed locking for a Manager.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(c *config) {
		c.locker = locker
	}
}

// WithLockTTL bounds how long a distributed lock survives a crashed holder.
func WithLockTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.lockTTL = ttl
		}
	}
}
