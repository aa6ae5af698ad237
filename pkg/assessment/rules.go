package assessment

import (
	"strings"

	"github.com/aretw0/dentsim/pkg/domain"
)

// Evidence is what a rule may inspect: the action and the states around it.
type Evidence struct {
	Action domain.Action
	Before *domain.State
	After  *domain.State
}

// Rule maps an action kind and a predicate to one grid cell.
type Rule struct {
	Kind domain.Kind
	Cell domain.Cell
	When func(Evidence) bool
}

// On builds a typed rule. The predicate only runs for actions of type A.
func On[A domain.Action](module, step int, when func(A, Evidence) bool) Rule {
	var zero A
	return Rule{
		Kind: zero.Kind(),
		Cell: domain.Cell{Module: module, Step: step},
		When: func(ev Evidence) bool {
			a, ok := ev.Action.(A)
			if !ok {
				return false
			}
			return when == nil || when(a, ev)
		},
	}
}

// Always matches every action of its type.
func Always[A domain.Action](A, Evidence) bool { return true }

// Module indices of the default catalog.
const (
	ModuleScheduling = iota
	ModulePatients
	ModuleLedger
	ModuleReports
	ModuleCharting
)

// DefaultRules is the rule table for the default catalog.
func DefaultRules() []Rule {
	return []Rule{
		// Scheduling
		On(ModuleScheduling, 0, func(a domain.SelectPatient, _ Evidence) bool { return a.PatientID != nil }),
		On(ModuleScheduling, 1, Always[domain.ScheduleAppointments]),
		On(ModuleScheduling, 2, func(a domain.ScheduleAppointments, _ Evidence) bool {
			return anyAppt(a.Appointments, func(ap domain.Appointment) bool { return ap.Provider == "Dr. Smith" })
		}),
		On(ModuleScheduling, 3, func(a domain.UpdateAppointment, _ Evidence) bool {
			return a.Appointment.Status == domain.AppointmentFirm
		}),
		On(ModuleScheduling, 4, func(a domain.ScheduleAppointments, _ Evidence) bool {
			return anyAppt(a.Appointments, func(ap domain.Appointment) bool { return ap.IsBlock })
		}),
		On(ModuleScheduling, 5, Always[domain.MoveAppointment]),
		On(ModuleScheduling, 5, rescheduledByEdit),
		On(ModuleScheduling, 6, Always[domain.PinAppointment]),

		// Patients
		On(ModulePatients, 0, Always[domain.AddPatient]),
		On(ModulePatients, 1, Always[domain.AddFamilyMember]),
		On(ModulePatients, 2, func(a domain.UpdatePatient, ev Evidence) bool {
			old, ok := priorPatient(ev, a.Patient.ID)
			return ok && a.Patient.Address != old.Address
		}),
		On(ModulePatients, 3, func(a domain.UpdatePatient, ev Evidence) bool {
			old, ok := priorPatient(ev, a.Patient.ID)
			return ok && len(a.Patient.MedicalAlerts) > len(old.MedicalAlerts)
		}),
		On(ModulePatients, 4, func(a domain.UpdatePatient, ev Evidence) bool {
			old, ok := priorPatient(ev, a.Patient.ID)
			return ok && old.Status == domain.PatientActive && a.Patient.Status == domain.PatientInactive
		}),
		On(ModulePatients, 5, func(a domain.UpdatePatient, ev Evidence) bool {
			old, ok := priorPatient(ev, a.Patient.ID)
			return ok && automationChanged(old, a.Patient)
		}),
		On(ModulePatients, 5, loggedType("manual_reminder_send")),
		On(ModulePatients, 6, func(a domain.UpdatePatient, ev Evidence) bool {
			old, ok := priorPatient(ev, a.Patient.ID)
			return ok && a.Patient.PhotoURL != "" && a.Patient.PhotoURL != old.PhotoURL
		}),
		On(ModulePatients, 6, loggedType("upload_photo")),

		// Ledger
		On(ModuleLedger, 0, Always[domain.AddLedgerEntry]),
		On(ModuleLedger, 1, func(a domain.AddLedgerEntry, _ Evidence) bool { return a.Entry.Payment == 100 }),
		On(ModuleLedger, 2, func(a domain.AddLedgerEntry, _ Evidence) bool { return a.Entry.Charge > 0 }),
		On(ModuleLedger, 3, func(a domain.AddLedgerEntry, _ Evidence) bool { return a.Entry.WriteOff > 0 }),
		On(ModuleLedger, 4, Always[domain.AddClaim]),
		On(ModuleLedger, 5, Always[domain.AddPreAuth]),
		On(ModuleLedger, 6, func(a domain.AddLedgerEntry, _ Evidence) bool {
			return strings.Contains(strings.ToLower(a.Entry.Description), "refund")
		}),

		// Reports
		On(ModuleReports, 0, loggedReport("Day Sheet")),
		On(ModuleReports, 1, loggedType("run_report")),
		On(ModuleReports, 2, loggedReport("Deposit Slip")),
		On(ModuleReports, 3, loggedReport("Recall Management")),
		On(ModuleReports, 4, Always[domain.AddRecallType]),
		On(ModuleReports, 5, func(a domain.AddToast, _ Evidence) bool {
			return strings.Contains(strings.ToLower(a.Message), "export")
		}),
		On(ModuleReports, 6, loggedReport("End-of-Day")),

		// Charting
		On(ModuleCharting, 0, loggedType("tooth_search")),
		On(ModuleCharting, 1, func(a domain.UpdateChart, _ Evidence) bool { return a.ToothState.Status == domain.ToothMissing }),
		On(ModuleCharting, 2, func(a domain.UpdateChart, _ Evidence) bool {
			return a.ToothState.Status == domain.ToothTreatmentPlanned
		}),
		On(ModuleCharting, 3, func(a domain.UpdateChart, _ Evidence) bool { return a.ToothState.Procedure != "" }),
		On(ModuleCharting, 4, func(a domain.UpdateChart, _ Evidence) bool { return a.ToothState.Notes != "" }),
		On(ModuleCharting, 5, Always[domain.BulkUpdateChart]),
		On(ModuleCharting, 6, Always[domain.UpdateChart]),
	}
}

func rescheduledByEdit(a domain.UpdateAppointment, ev Evidence) bool {
	if ev.Before == nil {
		return false
	}
	p, i, ok := ev.Before.Locate(a.Appointment.ID)
	if !ok {
		return false
	}
	prev := ev.Before.Placed(p)[i]
	return !prev.StartTime.Equal(a.Appointment.StartTime) || prev.Operatory != a.Appointment.Operatory
}

func priorPatient(ev Evidence, id int) (domain.Patient, bool) {
	if ev.Before == nil {
		return domain.Patient{}, false
	}
	i, ok := ev.Before.FindPatient(id)
	if !ok {
		return domain.Patient{}, false
	}
	return ev.Before.Patients[i], true
}

func automationChanged(old, new domain.Patient) bool {
	return old.AutomationActive != new.AutomationActive ||
		old.SendConfirmation14Days != new.SendConfirmation14Days ||
		old.SendReminder2Days != new.SendReminder2Days ||
		old.SendFollowUpOnCancel != new.SendFollowUpOnCancel
}

func loggedType(t string) func(domain.LogAction, Evidence) bool {
	return func(a domain.LogAction, _ Evidence) bool { return a.Type == t }
}

func loggedReport(name string) func(domain.LogAction, Evidence) bool {
	return func(a domain.LogAction, _ Evidence) bool { return a.ReportName == name }
}

func anyAppt(list []domain.Appointment, match func(domain.Appointment) bool) bool {
	for _, a := range list {
		if match(a) {
			return true
		}
	}
	return false
}
