package validator

import (
	"testing"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDataset_Default(t *testing.T) {
	assert.NoError(t, ValidateDataset(seed.Default(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC))))
}

func TestValidateDataset_BrokenReferences(t *testing.T) {
	ghost := 99
	ds := seed.Dataset{
		SelectedPatientID: &ghost,
		Records: domain.Records{
			Patients: []domain.Patient{
				{ID: 1, FamilyLinkID: &ghost, Ledger: []domain.LedgerEntry{
					{ID: "l1", Charge: 100, Balance: 100},
					{ID: "l2", Payment: 40, Balance: 70},
				}},
				{ID: 1},
			},
			Appointments: []domain.Appointment{
				{ID: "a1", PatientID: 1, Placement: domain.PlacementCalendar},
				{ID: "block", PatientID: 0, IsBlock: true, Placement: domain.PlacementCalendar},
			},
			Waitlist: []domain.Appointment{
				{ID: "a1", PatientID: ghost, Placement: domain.PlacementCalendar},
			},
			Tasks:  []domain.Task{{ID: "t1", PatientID: &ghost}},
			Claims: []domain.InsuranceClaim{{ID: "c1", PatientID: 1, ProcedureIDs: []string{"l1", "l9"}}},
		},
	}

	err := ValidateDataset(ds)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "found 9 errors")
	for _, want := range []string{
		"duplicate patient id 1",
		"patient 1: family link to missing patient 99",
		`patient 1: ledger entry "l2" has balance 70.00, expected 60.00`,
		`duplicate appointment id "a1"`,
		`appointment "a1": placement "calendar" but listed under "waitlist"`,
		`appointment "a1": missing patient 99`,
		`task "t1": missing patient 99`,
		`claim "c1": procedure "l9" not in ledger of patient 1`,
		"selected patient 99 does not exist",
	} {
		assert.Contains(t, msg, want)
	}
	assert.NotContains(t, msg, `"block"`)
}
