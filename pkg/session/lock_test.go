package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/dentsim/pkg/adapters/memory"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/stretchr/testify/assert"
)

type stubEngine struct{}

func (stubEngine) Initial() domain.State { return domain.State{} }
func (stubEngine) Apply(_ context.Context, s domain.State, a domain.Action) (domain.State, domain.Outcome) {
	return s, domain.Outcome{Kind: a.Kind()}
}
func (stubEngine) Catalog() assessment.Catalog { return assessment.DefaultCatalog() }

func TestManager_LockLifecycle(t *testing.T) {
	m := NewManager(stubEngine{}, memory.NewStore())
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_ = m.WithLock(ctx, sid, func(context.Context) error { return nil })
		_ = m.Delete(ctx, sid)
	}

	assert.Empty(t, m.locks, "lock entries must be reclaimed")
}
