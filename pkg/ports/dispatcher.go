package ports

import (
	"context"

	"github.com/aretw0/dentsim/pkg/domain"
)

// Dispatcher applies actions to hosted sessions.
type Dispatcher interface {
	Create(ctx context.Context) (string, *domain.State, error)
	Load(ctx context.Context, sessionID string) (*domain.State, error)
	Dispatch(ctx context.Context, sessionID string, action domain.Action) (*domain.State, domain.Outcome, error)
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]string, error)
}
