package domain

import (
	"reflect"
)

// StateDiff represents the changes between two states.
// It is designed to be serialized to JSON for partial updates on the client.
type StateDiff struct {
	// Collections lists the names of record collections whose contents changed.
	Collections []string `json:"collections,omitempty"`

	// Selection is set when the selected patient changed. A nil inner value
	// (serialized as null) means the selection was cleared.
	Selection **int `json:"selection,omitempty"`

	// Completed contains the grid cells that flipped to true.
	Completed []Cell `json:"completed,omitempty"`

	AssessmentMode     *bool `json:"assessment_mode,omitempty"`
	AssessmentAttempts *int  `json:"assessment_attempts,omitempty"`

	// Reset is true when the grid shrank back to its initial shape (a restart).
	Reset bool `json:"reset,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, every non-empty collection and marked cell is reported.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}

	diff := &StateDiff{}
	var prev State
	if oldState != nil {
		prev = *oldState
	}

	// 1. Collections
	diff.Collections = diffCollections(prev.Records, newState.Records)
	if !reflect.DeepEqual(prev.Actions, newState.Actions) {
		diff.Collections = append(diff.Collections, "actions")
	}
	if !reflect.DeepEqual(prev.Toasts, newState.Toasts) {
		diff.Collections = append(diff.Collections, "toasts")
	}

	// 2. Selection
	if !equalPtr(prev.SelectedPatientID, newState.SelectedPatientID) {
		sel := newState.SelectedPatientID
		diff.Selection = &sel
	}

	// 3. Grid
	diff.Completed, diff.Reset = diffGrid(prev.Progress, newState.Progress)

	// 4. Assessment lifecycle
	if oldState == nil || prev.AssessmentMode != newState.AssessmentMode {
		diff.AssessmentMode = &newState.AssessmentMode
	}
	if oldState == nil || prev.AssessmentAttempts != newState.AssessmentAttempts {
		diff.AssessmentAttempts = &newState.AssessmentAttempts
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffCollections(old, new Records) []string {
	var changed []string
	check := func(name string, a, b any) {
		if !reflect.DeepEqual(a, b) {
			changed = append(changed, name)
		}
	}
	check("patients", old.Patients, new.Patients)
	check("appointments", old.Appointments, new.Appointments)
	check("pinboard", old.Pinboard, new.Pinboard)
	check("waitlist", old.Waitlist, new.Waitlist)
	check("unassigned_documents", old.UnassignedDocuments, new.UnassignedDocuments)
	check("verifications", old.Verifications, new.Verifications)
	check("medical_records", old.MedicalRecords, new.MedicalRecords)
	check("tasks", old.Tasks, new.Tasks)
	check("portal_messages", old.PortalMessages, new.PortalMessages)
	check("pre_authorizations", old.PreAuthorizations, new.PreAuthorizations)
	check("claims", old.Claims, new.Claims)
	check("recall_types", old.RecallTypes, new.RecallTypes)
	if len(old.DayNotes) != 0 || len(new.DayNotes) != 0 {
		check("day_notes", old.DayNotes, new.DayNotes)
	}
	return changed
}

// diffGrid assumes cells only flip false→true; any true→false means a reset.
func diffGrid(old, new Grid) ([]Cell, bool) {
	var completed []Cell
	reset := false
	for _, m := range new.Modules() {
		for step, done := range new[m] {
			c := Cell{Module: m, Step: step}
			was := old.Done(c)
			if done && !was {
				completed = append(completed, c)
			}
			if !done && was {
				reset = true
			}
		}
	}
	return completed, reset
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *StateDiff) IsEmpty() bool {
	return len(d.Collections) == 0 &&
		d.Selection == nil &&
		len(d.Completed) == 0 &&
		d.AssessmentMode == nil &&
		d.AssessmentAttempts == nil &&
		!d.Reset
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
