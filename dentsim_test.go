package dentsim_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/dentsim"
	"github.com/aretw0/dentsim/pkg/adapters/memory"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/codec"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newSimulator(opts ...dentsim.Option) *dentsim.Simulator {
	return dentsim.New(append([]dentsim.Option{dentsim.WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func TestFacade_Session(t *testing.T) {
	var steps []domain.Cell
	sim := newSimulator(dentsim.WithLifecycleHooks(domain.LifecycleHooks{
		OnStepVerified: func(_ context.Context, e *domain.StepEvent) { steps = append(steps, e.Cell) },
	}))
	ctrl := sim.NewSession()

	pid := 2
	state, out, err := ctrl.Dispatch(context.Background(), domain.SelectPatient{PatientID: &pid})
	require.NoError(t, err)
	assert.True(t, out.Applied)
	require.NotNil(t, state.SelectedPatientID)
	assert.Equal(t, 2, *state.SelectedPatientID)
	assert.Equal(t, []domain.Cell{{Module: assessment.ModuleScheduling, Step: 0}}, steps)

	report := ctrl.Report()
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, sim.Catalog().NewGrid().Total(), report.Total)
}

func TestFacade_ApplyIsPure(t *testing.T) {
	sim := newSimulator()
	s0 := sim.Initial()

	s1, out := sim.Apply(context.Background(), s0, domain.DeletePatient{PatientID: 1})
	assert.True(t, out.Applied)
	assert.Len(t, s1.Patients, len(s0.Patients)-1)
	_, ok := s0.FindPatient(1)
	assert.True(t, ok)
}

func TestFacade_CustomSeed(t *testing.T) {
	ds := seed.Dataset{Records: domain.Records{
		Patients: []domain.Patient{{ID: 42, FirstName: "Solo"}},
	}}
	sim := newSimulator(dentsim.WithSeed(ds), dentsim.WithHistoryDepth(0))

	s := sim.Initial()
	require.Len(t, s.Patients, 1)
	assert.Equal(t, 42, s.Patients[0].ID)

	s, _ = sim.Apply(context.Background(), s, domain.DeletePatient{PatientID: 42})
	_, out := sim.Apply(context.Background(), s, domain.Undo{})
	assert.False(t, out.Applied)
}

func TestFacade_Manager(t *testing.T) {
	sim := newSimulator()
	mgr := sim.NewManager(memory.NewStore())
	ctx := context.Background()

	id, _, err := mgr.Create(ctx)
	require.NoError(t, err)
	_, out, err := mgr.Dispatch(ctx, id, domain.StartAssessment{})
	require.NoError(t, err)
	assert.True(t, out.Applied)

	report, err := mgr.Report(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Attempts)
}

func TestRunner_Replay(t *testing.T) {
	script, err := dentsim.ParseScript([]byte(`
name: front desk warm-up
steps:
  - type: SELECT_PATIENT
    payload: {patient_id: 1}
  - type: ADD_LEDGER_ENTRY
    payload:
      patient_id: 1
      entry: {date: "2025-03-10", description: Cash payment, payment: 100}
  - type: DELETE_PATIENT
    payload: {patient_id: 999}
`))
	require.NoError(t, err)
	assert.Equal(t, "front desk warm-up", script.Name)

	var seen []domain.Outcome
	r := &dentsim.Runner{OnStep: func(_ int, out domain.Outcome) { seen = append(seen, out) }}
	report, err := r.Run(context.Background(), newSimulator().NewSession(), script)
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.False(t, seen[2].Applied)
	assert.Equal(t, 3, report.Completed)
	assert.Equal(t, 2, report.Modules[assessment.ModuleLedger].Completed)
}

func TestRunner_Strict(t *testing.T) {
	script := dentsim.Script{Steps: []codec.Envelope{
		{Type: domain.KindDeletePatient, Payload: map[string]any{"patient_id": 999}},
		{Type: domain.KindStartAssessment},
	}}
	ctrl := newSimulator().NewSession()

	_, err := (&dentsim.Runner{Strict: true}).Run(context.Background(), ctrl, script)
	assert.ErrorContains(t, err, "step 1")
	assert.False(t, ctrl.State().AssessmentMode)
}

func TestRunner_UnknownKind(t *testing.T) {
	script := dentsim.Script{Steps: []codec.Envelope{{Type: "FORMAT_DISK"}}}

	_, err := (&dentsim.Runner{}).Run(context.Background(), newSimulator().NewSession(), script)
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - type: UNDO\n"), 0o644))

	script, err := dentsim.LoadScript(path)
	require.NoError(t, err)
	require.Len(t, script.Steps, 1)
	assert.Equal(t, domain.KindUndo, script.Steps[0].Type)

	_, err = dentsim.LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
