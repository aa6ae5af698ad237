package seed_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	ds := seed.Default(now)

	require.NotEmpty(t, ds.Records.Patients)
	require.NotNil(t, ds.SelectedPatientID)
	assert.Equal(t, 1, *ds.SelectedPatientID)
	assert.NotNil(t, ds.Records.DayNotes)

	ids := map[int]bool{}
	for _, p := range ds.Records.Patients {
		assert.False(t, ids[p.ID], "duplicate patient id %d", p.ID)
		ids[p.ID] = true

		// Running balances are consistent with the entries.
		balance := 0.0
		for _, e := range p.Ledger {
			balance += e.Net()
			assert.InDelta(t, balance, e.Balance, 1e-9, "patient %d entry %s", p.ID, e.ID)
		}
	}

	for _, a := range ds.Records.Appointments {
		assert.Equal(t, domain.PlacementCalendar, a.Placement)
		assert.True(t, ids[a.PatientID], "appointment %s references unknown patient", a.ID)
	}
	for _, m := range ds.Records.PortalMessages {
		assert.True(t, ids[m.PatientID], "message %s references unknown patient", m.ID)
	}
	assert.Len(t, ds.Records.RecallTypes, 4)
	assert.Len(t, ds.Records.Tasks, 3)
	assert.Equal(t, now.Add(time.Hour), ds.Records.Tasks[0].DueDate)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.yaml")
	data := `
selected_patient_id: 7
patients:
  - id: 7
    first_name: Ada
    last_name: Lovelace
    status: Active
    ledger:
      - id: l7-1
        date: "2025-01-02"
        description: Exam
        charge: 80
        balance: 80
appointments:
  - id: a1
    patient_id: 7
    start_time: 2025-01-02T08:00:00Z
    duration_minutes: 30
    operatory: 1
    provider: Dr. Smith
    status: FIRM
    placement: calendar
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	ds, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Records.Patients, 1)
	assert.Equal(t, "Ada", ds.Records.Patients[0].FirstName)
	assert.Equal(t, 80.0, ds.Records.Patients[0].Balance())
	require.Len(t, ds.Records.Appointments, 1)
	assert.Equal(t, domain.AppointmentFirm, ds.Records.Appointments[0].Status)
	assert.Equal(t, 7, *ds.SelectedPatientID)
	assert.NotNil(t, ds.Records.DayNotes)
}

func TestLoad_Errors(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patients: {not: [a list"), 0o644))
	_, err = seed.Load(path)
	assert.Error(t, err)
}
