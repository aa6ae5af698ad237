package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/dentsim/internal/runtime"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *runtime.Engine {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return runtime.NewEngine(runtime.WithClock(func() time.Time { return now }))
}

func TestController_DispatchCommits(t *testing.T) {
	c := session.NewController(newEngine(), session.WithID("trainee-1"))
	ctx := context.Background()
	before := c.State()

	next, out, err := c.Dispatch(ctx, domain.AddPatient{Patient: domain.Patient{FirstName: "Test"}})
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, next, c.State())
	assert.Len(t, c.State().Patients, len(before.Patients)+1)
	assert.Equal(t, "trainee-1", c.ID())
}

func TestController_NilAction(t *testing.T) {
	c := session.NewController(newEngine())
	_, _, err := c.Dispatch(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNilAction)
}

func TestController_SerializesConcurrentDispatch(t *testing.T) {
	c := session.NewController(newEngine())
	ctx := context.Background()
	seeded := len(c.State().Patients)
	const workers = 20

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := c.Dispatch(ctx, domain.AddPatient{Patient: domain.Patient{FirstName: "Walk-in"}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	patients := c.State().Patients
	require.Len(t, patients, seeded+workers)
	seen := map[int]bool{}
	for _, p := range patients {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestController_HooksAfterCommit(t *testing.T) {
	var (
		c          *session.Controller
		dispatched []domain.Kind
		steps      []domain.Cell
		diags      []domain.DiagnosticCode
		sawCommit  bool
	)
	hooks := domain.LifecycleHooks{
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			dispatched = append(dispatched, e.Outcome.Kind)
			assert.Equal(t, "hooks", e.SessionID)
			if e.Outcome.Kind == domain.KindScheduleAppts {
				sawCommit = c.State().Progress.Done(domain.Cell{Module: 0, Step: 1})
			}
		},
		OnStepVerified: func(_ context.Context, e *domain.StepEvent) {
			steps = append(steps, e.Cell)
		},
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			diags = append(diags, e.Diagnostic.Code)
		},
	}
	c = session.NewController(newEngine(), session.WithID("hooks"), session.WithLifecycleHooks(hooks))
	ctx := context.Background()

	_, _, err := c.Dispatch(ctx, domain.ScheduleAppointments{Appointments: []domain.Appointment{{ID: "x", PatientID: 1, Provider: "Dr. Smith"}}})
	require.NoError(t, err)
	_, _, err = c.Dispatch(ctx, domain.PinAppointment{AppointmentID: "missing"})
	require.NoError(t, err)

	assert.Equal(t, []domain.Kind{domain.KindScheduleAppts, domain.KindPinAppt}, dispatched)
	assert.ElementsMatch(t, []domain.Cell{{Module: 0, Step: 1}, {Module: 0, Step: 2}}, steps)
	assert.Equal(t, []domain.DiagnosticCode{domain.DiagNotFound}, diags)
	assert.True(t, sawCommit, "hooks observe the committed state")
}

func TestController_Report(t *testing.T) {
	c := session.NewController(newEngine())
	ctx := context.Background()

	_, _, _ = c.Dispatch(ctx, domain.StartAssessment{})
	_, _, _ = c.Dispatch(ctx, domain.AddLedgerEntry{PatientID: 1, Entry: domain.LedgerEntry{Payment: 100, Description: "copay"}})

	r := c.Report()
	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 35, r.Total)
	assert.Equal(t, 1, r.Attempts)
	assert.False(t, r.Passed)
}
