package validator

import (
	"errors"
	"fmt"
	"math"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/seed"
)

// balanceTolerance absorbs float rounding in stored running balances.
const balanceTolerance = 0.005

// ValidateDataset checks a seed for broken references: records pointing at
// missing patients, duplicate ids, misplaced appointments, claims citing
// procedures absent from the ledger and running balances that do not add up.
// The engine tolerates all of these; they only make exercises confusing.
func ValidateDataset(ds seed.Dataset) error {
	v := &collector{}
	r := ds.Records

	patients := make(map[int]domain.Patient, len(r.Patients))
	for _, p := range r.Patients {
		if _, dup := patients[p.ID]; dup {
			v.addf("duplicate patient id %d", p.ID)
			continue
		}
		patients[p.ID] = p
	}
	known := func(id int) bool {
		_, ok := patients[id]
		return ok
	}

	for _, p := range r.Patients {
		if p.FamilyLinkID != nil && !known(*p.FamilyLinkID) {
			v.addf("patient %d: family link to missing patient %d", p.ID, *p.FamilyLinkID)
		}
		checkLedger(v, p)
	}

	appts := map[string]bool{}
	for _, group := range []struct {
		placement domain.Placement
		list      []domain.Appointment
	}{
		{domain.PlacementCalendar, r.Appointments},
		{domain.PlacementPinboard, r.Pinboard},
		{domain.PlacementWaitlist, r.Waitlist},
	} {
		placement := group.placement
		for _, a := range group.list {
			if appts[a.ID] {
				v.addf("duplicate appointment id %q", a.ID)
			}
			appts[a.ID] = true
			if a.Placement != placement {
				v.addf("appointment %q: placement %q but listed under %q", a.ID, a.Placement, placement)
			}
			if !a.IsBlock && !known(a.PatientID) {
				v.addf("appointment %q: missing patient %d", a.ID, a.PatientID)
			}
		}
	}

	for _, x := range r.Verifications {
		if !known(x.PatientID) {
			v.addf("verification %q: missing patient %d", x.ID, x.PatientID)
		}
	}
	for _, x := range r.MedicalRecords {
		if !known(x.PatientID) {
			v.addf("medical record %q: missing patient %d", x.ID, x.PatientID)
		}
	}
	for _, x := range r.PortalMessages {
		if !known(x.PatientID) {
			v.addf("portal message %q: missing patient %d", x.ID, x.PatientID)
		}
	}
	for _, x := range r.PreAuthorizations {
		if !known(x.PatientID) {
			v.addf("pre-authorization %q: missing patient %d", x.ID, x.PatientID)
		}
	}
	for _, x := range r.Tasks {
		if x.PatientID != nil && !known(*x.PatientID) {
			v.addf("task %q: missing patient %d", x.ID, *x.PatientID)
		}
	}
	for _, c := range r.Claims {
		p, ok := patients[c.PatientID]
		if !ok {
			v.addf("claim %q: missing patient %d", c.ID, c.PatientID)
			continue
		}
		for _, ref := range c.ProcedureIDs {
			if !hasEntry(p.Ledger, ref) {
				v.addf("claim %q: procedure %q not in ledger of patient %d", c.ID, ref, p.ID)
			}
		}
	}

	if ds.SelectedPatientID != nil && !known(*ds.SelectedPatientID) {
		v.addf("selected patient %d does not exist", *ds.SelectedPatientID)
	}

	return v.err()
}

func checkLedger(v *collector, p domain.Patient) {
	balance := 0.0
	for _, e := range p.Ledger {
		balance += e.Net()
		if math.Abs(e.Balance-balance) > balanceTolerance {
			v.addf("patient %d: ledger entry %q has balance %.2f, expected %.2f", p.ID, e.ID, e.Balance, balance)
			return
		}
	}
}

func hasEntry(ledger []domain.LedgerEntry, id string) bool {
	for _, e := range ledger {
		if e.ID == id {
			return true
		}
	}
	return false
}

type collector struct {
	errs []error
}

func (c *collector) addf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return fmt.Errorf("found %d errors: %w", len(c.errs), errors.Join(c.errs...))
}
