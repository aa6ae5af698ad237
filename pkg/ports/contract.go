package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract verifies that a SnapshotStore implementation
// honours the interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	t.Helper()
	ctx := context.Background()
	sessionID := "contract-" + time.Now().Format("20060102150405.000000")

	sample := func() *domain.State {
		selected := 2
		return &domain.State{
			Records: domain.Records{
				Patients: []domain.Patient{
					{ID: 1, FirstName: "Ana", Status: domain.PatientActive, Ledger: []domain.LedgerEntry{{ID: "l-1", Charge: 90, Balance: 90}}},
					{ID: 2, FirstName: "Ben", Status: domain.PatientInactive},
				},
				Appointments: []domain.Appointment{{
					ID:        "a1",
					PatientID: 1,
					StartTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
					Provider:  "Dr. Smith",
					Placement: domain.PlacementCalendar,
				}},
				DayNotes: map[string]string{"2025-03-10": "Short staffed"},
			},
			SelectedPatientID:  &selected,
			Progress:           domain.Grid{0: {true, false}, 1: {false}},
			AssessmentMode:     true,
			AssessmentAttempts: 1,
			Sequence:           7,
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, sessionID, state))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, loaded.Patients, 2)
		assert.Equal(t, 90.0, loaded.Patients[0].Balance())
		assert.Equal(t, state.Appointments, loaded.Appointments)
		assert.Equal(t, state.DayNotes, loaded.DayNotes)
		require.NotNil(t, loaded.SelectedPatientID)
		assert.Equal(t, 2, *loaded.SelectedPatientID)
		assert.Equal(t, state.Progress, loaded.Progress)
		assert.True(t, loaded.AssessmentMode)
		assert.Equal(t, 1, loaded.AssessmentAttempts)
		assert.Equal(t, 7, loaded.Sequence)
	})

	t.Run("Load is isolated from the saved value", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, sessionID, state))
		state.Patients[0].FirstName = "Changed"
		state.Progress[1][0] = true

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", loaded.Patients[0].FirstName)
		assert.False(t, loaded.Progress.Done(domain.Cell{Module: 1, Step: 0}))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, sample()))
		require.NoError(t, store.Delete(ctx, sessionID))

		_, err := store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.NoError(t, store.Delete(ctx, sessionID), "deleting twice is fine")
	})

	t.Run("List", func(t *testing.T) {
		id1, id2 := sessionID+"-1", sessionID+"-2"
		require.NoError(t, store.Save(ctx, id1, sample()))
		require.NoError(t, store.Save(ctx, id2, sample()))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
