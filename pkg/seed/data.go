package seed

import (
	"fmt"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
)

type person struct {
	first, last, dob, gender, phone, email, address, carrier string
}

var roster = []person{
	{"John", "Smith", "1978-04-12", "M", "555-0101", "jsmith@example.com", "14 Oak Lane, Springfield", "MetLife PPO"},
	{"Maria", "Garcia", "1985-09-30", "F", "555-0102", "mgarcia@example.com", "220 Pine St, Springfield", "Delta Dental"},
	{"Robert", "Johnson", "1962-01-05", "M", "555-0103", "rjohnson@example.com", "9 Elm Ct, Shelbyville", "Cigna"},
	{"Linda", "Williams", "1990-07-21", "F", "555-0104", "lwilliams@example.com", "77 Birch Rd, Springfield", "Cigna"},
	{"James", "Brown", "2001-11-02", "M", "555-0105", "jbrown@example.com", "310 Cedar Ave, Capital City", "Guardian"},
	{"Patricia", "Jones", "1974-03-17", "F", "555-0106", "pjones@example.com", "5 Maple Dr, Springfield", "Aetna"},
	{"Michael", "Miller", "1969-12-24", "M", "555-0107", "mmiller@example.com", "48 Walnut Way, Ogdenville", "Self Pay"},
	{"Barbara", "Davis", "1995-05-09", "F", "555-0108", "bdavis@example.com", "61 Spruce St, Springfield", "Delta Dental"},
	{"David", "Wilson", "1958-08-14", "M", "555-0109", "dwilson@example.com", "102 Aspen Pl, North Haverbrook", "MetLife PPO"},
	{"Susan", "Taylor", "2010-02-28", "F", "555-0110", "staylor@example.com", "14 Oak Lane, Springfield", "MetLife PPO"},
}

func patients(now time.Time) []domain.Patient {
	out := make([]domain.Patient, 0, len(roster))
	for i, r := range roster {
		id := i + 1
		p := domain.Patient{
			ID:                     id,
			FirstName:              r.first,
			LastName:               r.last,
			DateOfBirth:            r.dob,
			Gender:                 r.gender,
			Phone:                  r.phone,
			Email:                  r.email,
			Address:                r.address,
			Provider:               providers[i%len(providers)],
			InsuranceCarrier:       r.carrier,
			Status:                 domain.PatientActive,
			AutomationActive:       true,
			SendConfirmation14Days: true,
			SendReminder2Days:      true,
			Ledger:                 ledger(now, id),
			Chart:                  chart(now, id),
		}
		out = append(out, p)
	}

	// Susan Taylor is John Smith's dependent.
	guarantor := 1
	out[9].FamilyLinkID = &guarantor
	out[2].MedicalAlerts = []string{"Penicillin allergy"}
	out[5].MedicalAlerts = []string{"Premedicate before treatment"}
	out[6].Status = domain.PatientInactive
	out[6].AutomationActive = false
	return out
}

var providers = []string{"Dr. Jones", "Dr. Smith", "Hygienist Lee"}

func ledger(now time.Time, patientID int) []domain.LedgerEntry {
	lines := []domain.LedgerEntry{
		{Date: day(now, -60), Description: "Periodic oral exam", ProcedureCode: "D0120", Charge: 65},
		{Date: day(now, -60), Description: "Adult prophylaxis", ProcedureCode: "D1110", Charge: 120},
		{Date: day(now, -45), Description: "Insurance payment", Payment: 148},
		{Date: day(now, -45), Description: "PPO adjustment", WriteOff: 12},
	}
	if patientID%3 == 0 {
		lines = append(lines, domain.LedgerEntry{Date: day(now, -20), Description: "Composite, one surface", ProcedureCode: "D2391", Charge: 185})
	}

	balance := 0.0
	for i := range lines {
		lines[i].ID = ledgerID(patientID, i+1)
		balance += lines[i].Net()
		lines[i].Balance = balance
	}
	return lines
}

func ledgerID(patientID, n int) string {
	return fmt.Sprintf("l%d-%d", patientID, n)
}

func chart(now time.Time, patientID int) []domain.ToothState {
	entries := []domain.ToothState{
		{ToothNumber: 1, Status: domain.ToothMissing, Date: day(now, -400)},
		{ToothNumber: 16, Status: domain.ToothMissing, Date: day(now, -400)},
	}
	switch patientID % 4 {
	case 1:
		entries = append(entries, domain.ToothState{ToothNumber: 14, Status: domain.ToothTreatmentPlanned, Procedure: "D2740", Notes: "Fractured cusp", Date: day(now, -15)})
	case 2:
		entries = append(entries, domain.ToothState{ToothNumber: 3, Status: domain.ToothExisting, Procedure: "D2950", Date: day(now, -200)})
	case 3:
		entries = append(entries, domain.ToothState{ToothNumber: 30, Status: domain.ToothWatch, Notes: "Incipient decay", Date: day(now, -30)})
	}
	return entries
}

func appointments(now time.Time) []domain.Appointment {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(hour, minute int) time.Time {
		return today.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	return []domain.Appointment{
		{ID: "apt-1", PatientID: 1, StartTime: at(8, 0), DurationMinutes: 60, Operatory: 1, Provider: "Dr. Jones", Procedure: "Crown prep #14", Status: domain.AppointmentFirm, Placement: domain.PlacementCalendar},
		{ID: "apt-2", PatientID: 2, StartTime: at(9, 0), DurationMinutes: 60, Operatory: 2, Provider: "Hygienist Lee", Procedure: "Adult prophylaxis", Status: domain.AppointmentUnconfirmed, Placement: domain.PlacementCalendar},
		{ID: "apt-3", PatientID: 4, StartTime: at(10, 30), DurationMinutes: 30, Operatory: 1, Provider: "Dr. Jones", Procedure: "Extraction #30 consult", Status: domain.AppointmentLeftMessage, Placement: domain.PlacementCalendar},
		{ID: "apt-4", PatientID: 6, StartTime: at(13, 0), DurationMinutes: 90, Operatory: 3, Provider: "Dr. Smith", Procedure: "RCT #18", Status: domain.AppointmentFirm, Placement: domain.PlacementCalendar},
		{ID: "apt-5", PatientID: 8, StartTime: at(15, 0), DurationMinutes: 60, Operatory: 2, Provider: "Hygienist Lee", Procedure: "Periodontal maintenance", Status: domain.AppointmentUnconfirmed, Placement: domain.PlacementCalendar},
		{ID: "apt-6", PatientID: 9, StartTime: at(8, 0).AddDate(0, 0, 1), DurationMinutes: 60, Operatory: 1, Provider: "Dr. Smith", Procedure: "Periodic exam", Status: domain.AppointmentUnconfirmed, Placement: domain.PlacementCalendar},
	}
}

func verifications(now time.Time) []domain.InsuranceVerification {
	return []domain.InsuranceVerification{
		{ID: "v1", PatientID: 1, AppointmentDate: day(now, 0), Carrier: "MetLife PPO", Status: domain.VerificationVerified, LastChecked: day(now, -2)},
		{ID: "v2", PatientID: 2, AppointmentDate: day(now, 0), Carrier: "Delta Dental", Status: domain.VerificationPending},
		{ID: "v3", PatientID: 4, AppointmentDate: day(now, 0), Carrier: "Cigna", Status: domain.VerificationPending},
		{ID: "v4", PatientID: 6, AppointmentDate: day(now, 0), Carrier: "Aetna", Status: domain.VerificationFailed, LastChecked: day(now, -1), Notes: "Subscriber ID not found"},
		{ID: "v5", PatientID: 9, AppointmentDate: day(now, 1), Carrier: "MetLife PPO", Status: domain.VerificationPending},
	}
}

func medicalRecords(now time.Time) []domain.MedicalRecord {
	return []domain.MedicalRecord{
		{ID: "mr1", PatientID: 3, Type: "Allergy", Description: "Penicillin (hives)", Date: day(now, -900), Active: true},
		{ID: "mr2", PatientID: 6, Type: "Condition", Description: "Prosthetic knee replacement", Date: day(now, -700), Active: true},
		{ID: "mr3", PatientID: 6, Type: "Medication", Description: "Amoxicillin 2g premedication", Date: day(now, -30), Active: true},
		{ID: "mr4", PatientID: 9, Type: "Medication", Description: "Lisinopril 10mg", Date: day(now, -365), Active: true},
	}
}

func tasks(now time.Time) []domain.Task {
	return []domain.Task{
		{ID: "t1", Title: "Verify benefits for J. Smith", DueDate: now.Add(time.Hour), Priority: domain.PriorityHigh},
		{ID: "t2", Title: "Call Lab regarding case #4422", DueDate: now.Add(2 * time.Hour), Priority: domain.PriorityMedium},
		{ID: "t3", Title: "Follow up on patient lab results", DueDate: now.Add(24 * time.Hour), Priority: domain.PriorityHigh},
	}
}

func portalMessages(now time.Time) []domain.PortalMessage {
	return []domain.PortalMessage{
		{ID: "m1", PatientID: 8, Subject: "Pain after SRP", Content: "I am still having some lingering sensitivity after my scaling last week. Is this normal?", Timestamp: now.Add(-45 * time.Minute), Status: domain.MessageUnread, Category: "Medical Question"},
		{ID: "m2", PatientID: 5, Subject: "Insurance question", Content: "I received a statement but thought my insurance covered 100%. Can you double check?", Timestamp: now.Add(-2 * time.Hour), Status: domain.MessageUnread, Category: "Billing"},
		{ID: "m3", PatientID: 4, Subject: "Reschedule my extraction", Content: "Something came up for Thursday. Do you have anything next Monday morning instead?", Timestamp: now.Add(-5 * time.Hour), Status: domain.MessageUnread, Category: "Appointment Request"},
		{ID: "m4", PatientID: 6, Subject: "Antibiotic refill", Content: "My pharmacy says the prescription is out of refills. Can you send a new one?", Timestamp: now.Add(-4 * time.Hour), Status: domain.MessageUnread, Category: "Refill"},
		{ID: "m5", PatientID: 1, Subject: "Thank you!", Content: "Just wanted to say the crown feels great. Thanks for the quick work!", Timestamp: now.Add(-24 * time.Hour), Status: domain.MessageRead, Category: "Other"},
	}
}

func preAuthorizations(now time.Time) []domain.PreAuthorization {
	return []domain.PreAuthorization{
		{ID: "PA-1001", PatientID: 1, DateSubmitted: day(now, -15), Status: domain.PreAuthPending, Payer: "MetLife PPO", TotalValue: 2100, Items: []domain.PreAuthItem{{Tooth: 13, Procedure: "RCT", Fee: 900}, {Tooth: 14, Procedure: "Crown", Fee: 1200}}},
		{ID: "PA-1002", PatientID: 4, DateSubmitted: day(now, -45), Status: domain.PreAuthMoreInfoRequired, Payer: "Cigna", TotalValue: 300, Items: []domain.PreAuthItem{{Tooth: 30, Procedure: "Extraction", Fee: 300}}},
		{ID: "PA-1003", PatientID: 6, DateSubmitted: day(now, -5), Status: domain.PreAuthPending, Payer: "Aetna", TotalValue: 900, Items: []domain.PreAuthItem{{Tooth: 18, Procedure: "RCT", Fee: 900}}},
		{ID: "PA-1004", PatientID: 2, DateSubmitted: day(now, -2), Status: domain.PreAuthApproved, Payer: "Delta Dental", TotalValue: 1200, Items: []domain.PreAuthItem{{Tooth: 2, Procedure: "Crown", Fee: 1200}}},
	}
}

func claims(now time.Time) []domain.InsuranceClaim {
	return []domain.InsuranceClaim{{
		ID:              "CLM-001",
		PatientID:       6,
		DateCreated:     day(now, -5),
		Status:          domain.ClaimSent,
		Carrier:         "Aetna",
		TotalAmount:     1200,
		ProcedureIDs:    []string{ledgerID(6, 1)},
		DiagnosticCodes: []string{},
		StatusHistory:   []domain.ClaimStatusChange{{Date: day(now, -5), Status: domain.ClaimSent}},
		Attachments:     domain.ClaimAttachments{Images: []string{}},
	}}
}

func recallTypes() []domain.RecallType {
	return []domain.RecallType{
		{ID: "r1", ShortName: "PRO", Description: "Adult Prophylaxis", IntervalDays: 180, ProcedureCode: "D1110"},
		{ID: "r2", ShortName: "PERIO", Description: "Periodontal Maintenance", IntervalDays: 90, ProcedureCode: "D4910"},
		{ID: "r3", ShortName: "BWX", Description: "Bite-Wings X-Ray", IntervalDays: 365, ProcedureCode: "D0274"},
		{ID: "r4", ShortName: "EXAM", Description: "Periodic Oral Exam", IntervalDays: 180, ProcedureCode: "D0120"},
	}
}
