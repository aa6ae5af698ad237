package runtime

import (
	"fmt"

	"github.com/aretw0/dentsim/pkg/domain"
)

// found is the result of a by-id lookup.
type found[T any] struct {
	Index int
	Value T
	OK    bool
}

func lookup[T any](list []T, match func(T) bool) found[T] {
	for i, v := range list {
		if match(v) {
			return found[T]{Index: i, Value: v, OK: true}
		}
	}
	return found[T]{Index: -1}
}

func notFound(what string, ref any) *domain.Diagnostic {
	r := fmt.Sprint(ref)
	return &domain.Diagnostic{
		Code:    domain.DiagNotFound,
		Ref:     r,
		Message: fmt.Sprintf("%s %s not found", what, r),
	}
}

func duplicateID(what, id, detail string) *domain.Diagnostic {
	return &domain.Diagnostic{
		Code:    domain.DiagDuplicateID,
		Ref:     id,
		Message: fmt.Sprintf("%s %s %s", what, id, detail),
	}
}

// The helpers below never write into the backing array of their input, so
// states returned by Apply can share slices with their predecessors.

func appended[T any](list []T, vs ...T) []T {
	out := make([]T, 0, len(list)+len(vs))
	out = append(out, list...)
	return append(out, vs...)
}

func replaced[T any](list []T, i int, v T) []T {
	out := make([]T, len(list))
	copy(out, list)
	out[i] = v
	return out
}

func removed[T any](list []T, i int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// patientByID and appointmentIn adapt the State finders to found.
func patientByID(s *domain.State, id int) found[domain.Patient] {
	i, ok := s.FindPatient(id)
	if !ok {
		return found[domain.Patient]{Index: -1}
	}
	return found[domain.Patient]{Index: i, Value: s.Patients[i], OK: true}
}

func appointmentIn(s *domain.State, id string, in domain.Placement) found[domain.Appointment] {
	i, ok := s.FindAppointment(id, in)
	if !ok {
		return found[domain.Appointment]{Index: -1}
	}
	return found[domain.Appointment]{Index: i, Value: s.Placed(in)[i], OK: true}
}

// withPatient applies edit to a copy of the patient and stores it back.
// edit must not write into the patient's existing slices.
func withPatient(s *domain.State, id int, edit func(*domain.Patient)) *domain.Diagnostic {
	hit := patientByID(s, id)
	if !hit.OK {
		return notFound("patient", id)
	}
	p := hit.Value
	edit(&p)
	s.Patients = replaced(s.Patients, hit.Index, p)
	return nil
}

// locate finds an appointment in any placement.
func locate(s *domain.State, id string) (domain.Placement, found[domain.Appointment]) {
	where, _, ok := s.Locate(id)
	if !ok {
		return "", found[domain.Appointment]{Index: -1}
	}
	return where, appointmentIn(s, id, where)
}
