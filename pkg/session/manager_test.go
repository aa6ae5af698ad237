package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/dentsim/pkg/adapters/memory"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/ports"
	"github.com/aretw0/dentsim/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore adds latency so lost updates show up when locking is missing.
type slowStore struct {
	*memory.Store
}

func (s slowStore) Load(ctx context.Context, id string) (*domain.State, error) {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Load(ctx, id)
}

func (s slowStore) Save(ctx context.Context, id string, state *domain.State) error {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Save(ctx, id, state)
}

func TestManager_CreateDispatchLoad(t *testing.T) {
	m := session.NewManager(newEngine(), memory.NewStore(), session.WithIDGenerator(func() string { return "s-1" }))
	ctx := context.Background()

	id, initial, err := m.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s-1", id)

	next, out, err := m.Dispatch(ctx, id, domain.AddPatient{Patient: domain.Patient{FirstName: "Test"}})
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Len(t, next.Patients, len(initial.Patients)+1)

	loaded, err := m.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, loaded.Patients, len(initial.Patients)+1)

	report, err := m.Report(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Completed)

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s-1"}, ids)

	require.NoError(t, m.Delete(ctx, id))
	_, err = m.Load(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_UnknownSession(t *testing.T) {
	m := session.NewManager(newEngine(), memory.NewStore())
	_, _, err := m.Dispatch(context.Background(), "nope", domain.Undo{})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, _, err = m.Dispatch(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, domain.ErrNilAction)
}

func TestManager_NoLostUpdates(t *testing.T) {
	m := session.NewManager(newEngine(), slowStore{memory.NewStore()})
	ctx := context.Background()
	id, initial, err := m.Create(ctx)
	require.NoError(t, err)

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := m.Dispatch(ctx, id, domain.AddPatient{Patient: domain.Patient{FirstName: fmt.Sprint(i)}})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	state, err := m.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, state.Patients, len(initial.Patients)+writers)
}

type countingLocker struct {
	mu       sync.Mutex
	locked   int
	unlocked int
}

func (l *countingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	l.locked++
	l.mu.Unlock()
	return func(context.Context) error {
		l.mu.Lock()
		l.unlocked++
		l.mu.Unlock()
		return nil
	}, nil
}

func TestManager_DistributedLocker(t *testing.T) {
	locker := &countingLocker{}
	m := session.NewManager(newEngine(), memory.NewStore(), session.WithLocker(locker))
	ctx := context.Background()

	id, _, err := m.Create(ctx)
	require.NoError(t, err)
	_, _, err = m.Dispatch(ctx, id, domain.EndAssessment{})
	require.NoError(t, err)

	assert.Equal(t, 2, locker.locked)
	assert.Equal(t, 2, locker.unlocked)
}

func TestManager_HooksCarrySessionID(t *testing.T) {
	var got []string
	hooks := domain.LifecycleHooks{
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) { got = append(got, e.SessionID) },
	}
	m := session.NewManager(newEngine(), memory.NewStore(), session.WithLifecycleHooks(hooks))
	ctx := context.Background()

	id, _, err := m.Create(ctx)
	require.NoError(t, err)
	_, _, err = m.Dispatch(ctx, id, domain.RestartAll{})
	require.NoError(t, err)

	assert.Equal(t, []string{id}, got)
}
