package runtime

import (
	"github.com/aretw0/dentsim/pkg/domain"
)

func (e *Engine) selectPatient(s *domain.State, a domain.SelectPatient) *domain.Diagnostic {
	s.SelectedPatientID = nil
	if a.PatientID != nil {
		id := *a.PatientID
		s.SelectedPatientID = &id
	}
	return nil
}

// nextPatientID is max(existing ids, 0) + 1.
func nextPatientID(patients []domain.Patient) int {
	highest := 0
	for _, p := range patients {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}

func (e *Engine) insertPatient(s *domain.State, p domain.Patient) {
	p.ID = nextPatientID(s.Patients)
	if p.Status == "" {
		p.Status = domain.PatientActive
	}
	s.Patients = appended(s.Patients, p)
	id := p.ID
	s.SelectedPatientID = &id
}

func (e *Engine) addPatient(s *domain.State, a domain.AddPatient) *domain.Diagnostic {
	p := a.Patient
	p.FamilyLinkID = nil
	e.insertPatient(s, p)
	return nil
}

func (e *Engine) addFamilyMember(s *domain.State, a domain.AddFamilyMember) *domain.Diagnostic {
	if hit := patientByID(s, a.FamilyLinkTo); !hit.OK {
		return notFound("patient", a.FamilyLinkTo)
	}
	p := a.Patient
	link := a.FamilyLinkTo
	p.FamilyLinkID = &link
	e.insertPatient(s, p)
	return nil
}

func (e *Engine) updatePatient(s *domain.State, a domain.UpdatePatient) *domain.Diagnostic {
	hit := patientByID(s, a.Patient.ID)
	if !hit.OK {
		return notFound("patient", a.Patient.ID)
	}
	// Ledger, chart and documents only change through their own actions.
	p := a.Patient
	p.Ledger = hit.Value.Ledger
	p.Chart = hit.Value.Chart
	p.Documents = hit.Value.Documents
	s.Patients = replaced(s.Patients, hit.Index, p)
	return nil
}

func (e *Engine) deletePatient(s *domain.State, a domain.DeletePatient) *domain.Diagnostic {
	hit := patientByID(s, a.PatientID)
	if !hit.OK {
		return notFound("patient", a.PatientID)
	}
	s.Patients = removed(s.Patients, hit.Index)
	s.SelectedPatientID = nil
	return nil
}
