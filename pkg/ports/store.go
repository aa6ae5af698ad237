package ports

import (
	"context"

	"github.com/aretw0/dentsim/pkg/domain"
)

// SnapshotStore keeps the current state of hosted sessions for their lifetime.
// It is not a durable archive: stores may expire idle sessions.
type SnapshotStore interface {
	// Save replaces the snapshot for a session.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load returns the snapshot for a session.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the ids of live sessions.
	List(ctx context.Context) ([]string, error)
}
