package runtime

import (
	"fmt"

	"github.com/aretw0/dentsim/pkg/domain"
)

// scheduleAppointments is all-or-nothing: an id already placed anywhere, or
// repeated within the batch, skips the whole batch.
func (e *Engine) scheduleAppointments(s *domain.State, a domain.ScheduleAppointments) *domain.Diagnostic {
	seen := make(map[string]struct{}, len(a.Appointments))
	for _, appt := range a.Appointments {
		_, dup := seen[appt.ID]
		if where, hit := locate(s, appt.ID); hit.OK {
			return duplicateID("appointment", appt.ID, fmt.Sprintf("already on the %s", where))
		}
		if dup {
			return duplicateID("appointment", appt.ID, "repeated in batch")
		}
		seen[appt.ID] = struct{}{}
	}

	batch := make([]domain.Appointment, len(a.Appointments))
	for i, appt := range a.Appointments {
		appt.Placement = domain.PlacementCalendar
		batch[i] = appt
	}
	s.Appointments = appended(s.Appointments, batch...)
	return nil
}

func (e *Engine) updateAppointment(s *domain.State, a domain.UpdateAppointment) *domain.Diagnostic {
	where, hit := locate(s, a.Appointment.ID)
	if !hit.OK {
		return notFound("appointment", a.Appointment.ID)
	}
	appt := a.Appointment
	appt.Placement = where
	s.SetPlaced(where, replaced(s.Placed(where), hit.Index, appt))
	return nil
}

func (e *Engine) deleteAppointment(s *domain.State, a domain.DeleteAppointment) *domain.Diagnostic {
	where, hit := locate(s, a.AppointmentID)
	if !hit.OK {
		return notFound("appointment", a.AppointmentID)
	}
	s.SetPlaced(where, removed(s.Placed(where), hit.Index))
	return nil
}

func (e *Engine) cancelAppointment(s *domain.State, a domain.CancelAppointment) *domain.Diagnostic {
	where, hit := locate(s, a.AppointmentID)
	if !hit.OK {
		return notFound("appointment", a.AppointmentID)
	}
	appt := hit.Value
	appt.Status = domain.AppointmentCancelled
	s.SetPlaced(where, replaced(s.Placed(where), hit.Index, appt))
	return nil
}

func (e *Engine) moveAppointment(s *domain.State, a domain.MoveAppointment) *domain.Diagnostic {
	src := a.Source
	if !src.Valid() {
		src = domain.PlacementCalendar
	}
	hit := appointmentIn(s, a.AppointmentID, src)
	if !hit.OK {
		return notFound("appointment", a.AppointmentID)
	}
	appt := hit.Value
	appt.StartTime = a.NewStartTime
	appt.Operatory = a.NewOperatory
	s.SetPlaced(src, replaced(s.Placed(src), hit.Index, appt))
	return nil
}

// relocate removes an appointment from one placement and appends it to another.
func relocate(s *domain.State, from, to domain.Placement, hit found[domain.Appointment]) {
	appt := hit.Value
	appt.Placement = to
	s.SetPlaced(from, removed(s.Placed(from), hit.Index))
	s.SetPlaced(to, appended(s.Placed(to), appt))
}

func (e *Engine) pinAppointment(s *domain.State, a domain.PinAppointment) *domain.Diagnostic {
	hit := appointmentIn(s, a.AppointmentID, domain.PlacementCalendar)
	if !hit.OK {
		return notFound("appointment", a.AppointmentID)
	}
	relocate(s, domain.PlacementCalendar, domain.PlacementPinboard, hit)
	return nil
}

func (e *Engine) waitlistAppointment(s *domain.State, a domain.WaitlistAppointment) *domain.Diagnostic {
	for _, from := range []domain.Placement{domain.PlacementCalendar, domain.PlacementPinboard} {
		if hit := appointmentIn(s, a.AppointmentID, from); hit.OK {
			relocate(s, from, domain.PlacementWaitlist, hit)
			return nil
		}
	}
	return notFound("appointment", a.AppointmentID)
}

func (e *Engine) updateDayNote(s *domain.State, a domain.UpdateDayNote) *domain.Diagnostic {
	notes := make(map[string]string, len(s.DayNotes)+1)
	for k, v := range s.DayNotes {
		notes[k] = v
	}
	if a.Note == "" {
		delete(notes, a.Date)
	} else {
		notes[a.Date] = a.Note
	}
	s.DayNotes = notes
	return nil
}
