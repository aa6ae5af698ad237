package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager hosts many sessions over a snapshot store. Operations on one
// session are serialized; different sessions proceed in parallel.
// Unused lock entries are reclaimed by reference counting.
type Manager struct {
	cfg    config
	engine Engine
	store  ports.SnapshotStore

	mu    sync.Mutex
	locks map[string]*lockEntry
}

var _ ports.Dispatcher = (*Manager)(nil)

// NewManager creates a Manager.
func NewManager(engine Engine, store ports.SnapshotStore, opts ...Option) *Manager {
	return &Manager{
		cfg:    newConfig(opts),
		engine: engine,
		store:  store,
		locks:  make(map[string]*lockEntry),
	}
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must lock entry.mu and call release after unlocking it.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[sessionID]
	if !ok {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and drops the entry at zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[sessionID]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// WithLock runs fn while holding the session's local lock and, when
// configured, its distributed lock.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.cfg.locker != nil {
		unlock, err := m.cfg.locker.Lock(ctx, sessionID, m.cfg.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.cfg.logger.Warn("failed to release distributed lock, it will expire",
					"session_id", sessionID,
					"err", err)
			}
		}()
	}

	return fn(ctx)
}

// Create starts a new session from the engine's initial state.
func (m *Manager) Create(ctx context.Context) (string, *domain.State, error) {
	id := m.cfg.newID()
	state := m.engine.Initial()
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		if err := m.store.Save(ctx, id, &state); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	m.cfg.logger.InfoContext(ctx, "session created", "session_id", id)
	return id, &state, nil
}

// Load returns the current state of a session.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	var state *domain.State
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		state, err = m.store.Load(ctx, sessionID)
		return err
	})
	return state, err
}

// Dispatch applies an action to a stored session. Identity outcomes are not
// written back.
func (m *Manager) Dispatch(ctx context.Context, sessionID string, action domain.Action) (*domain.State, domain.Outcome, error) {
	if action == nil {
		return nil, domain.Outcome{}, domain.ErrNilAction
	}

	var (
		next domain.State
		out  domain.Outcome
	)
	start := time.Now()
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		current, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		next, out = m.engine.Apply(ctx, *current, action)
		if !out.Applied {
			return nil
		}
		if err := m.store.Save(ctx, sessionID, &next); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			m.cfg.logger.ErrorContext(ctx, "dispatch failed", "session_id", sessionID, "kind", action.Kind(), "err", err)
		}
		return nil, domain.Outcome{}, err
	}

	m.cfg.logger.DebugContext(ctx, "dispatched",
		"session_id", sessionID,
		"kind", out.Kind,
		"applied", out.Applied,
		"verified", len(out.Verified))
	m.cfg.hooks.Emit(ctx, sessionID, out, time.Since(start))
	return &next, out, nil
}

// Report scores a stored session.
func (m *Manager) Report(ctx context.Context, sessionID string) (assessment.Report, error) {
	state, err := m.Load(ctx, sessionID)
	if err != nil {
		return assessment.Report{}, err
	}
	return m.engine.Catalog().Score(state.Progress, state.AssessmentAttempts), nil
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}
