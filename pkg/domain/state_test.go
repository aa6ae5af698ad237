package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_CloneIsDeep(t *testing.T) {
	sel := 1
	s := State{
		Records: Records{
			Patients: []Patient{{ID: 1, Ledger: []LedgerEntry{{ID: "l-1"}}}},
			DayNotes: map[string]string{"2024-01-01": "closed"},
		},
		SelectedPatientID: &sel,
		Progress:          NewGrid([]int{1}),
	}

	c := s.Clone()
	c.Patients[0].Ledger[0].ID = "changed"
	c.DayNotes["2024-01-01"] = "open"
	*c.SelectedPatientID = 9
	c.Progress[0][0] = true

	assert.Equal(t, "l-1", s.Patients[0].Ledger[0].ID)
	assert.Equal(t, "closed", s.DayNotes["2024-01-01"])
	assert.Equal(t, 1, *s.SelectedPatientID)
	assert.False(t, s.Progress[0][0])
}

func TestState_Locate(t *testing.T) {
	s := State{Records: Records{
		Appointments: []Appointment{{ID: "a1"}},
		Pinboard:     []Appointment{{ID: "a2"}},
		Waitlist:     []Appointment{{ID: "a3"}},
	}}

	for id, want := range map[string]Placement{"a1": PlacementCalendar, "a2": PlacementPinboard, "a3": PlacementWaitlist} {
		p, i, ok := s.Locate(id)
		require.True(t, ok, id)
		assert.Equal(t, want, p)
		assert.Equal(t, 0, i)
	}

	_, _, ok := s.Locate("missing")
	assert.False(t, ok)
}
