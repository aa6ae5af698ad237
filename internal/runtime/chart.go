package runtime

import (
	"fmt"

	"github.com/aretw0/dentsim/pkg/domain"
)

func (e *Engine) stamped(states []domain.ToothState) []domain.ToothState {
	out := make([]domain.ToothState, len(states))
	for i, ts := range states {
		if ts.Date == "" {
			ts.Date = e.today()
		}
		out[i] = ts
	}
	return out
}

func (e *Engine) updateChart(s *domain.State, a domain.UpdateChart) *domain.Diagnostic {
	entries := e.stamped([]domain.ToothState{a.ToothState})
	return withPatient(s, a.PatientID, func(p *domain.Patient) {
		p.Chart = appended(p.Chart, entries...)
	})
}

func (e *Engine) bulkUpdateChart(s *domain.State, a domain.BulkUpdateChart) *domain.Diagnostic {
	entries := e.stamped(a.Updates)
	return withPatient(s, a.PatientID, func(p *domain.Patient) {
		p.Chart = appended(p.Chart, entries...)
	})
}

// movePlannedTreatment transfers the planned procedure on SourceTooth to
// TargetTooth. Both moves are recorded as new chart entries.
func (e *Engine) movePlannedTreatment(s *domain.State, a domain.MovePlannedTreatment) *domain.Diagnostic {
	hit := patientByID(s, a.PatientID)
	if !hit.OK {
		return notFound("patient", a.PatientID)
	}
	planned, ok := domain.LatestToothState(hit.Value.Chart, a.SourceTooth)
	if !ok || planned.Status != domain.ToothTreatmentPlanned {
		return notFound("planned treatment on tooth", a.SourceTooth)
	}

	today := e.today()
	moved := domain.ToothState{
		ToothNumber: a.TargetTooth,
		Status:      domain.ToothTreatmentPlanned,
		Procedure:   planned.Procedure,
		Notes:       planned.Notes,
		Date:        today,
	}
	cleared := domain.ToothState{
		ToothNumber: a.SourceTooth,
		Status:      domain.ToothHealthy,
		Notes:       fmt.Sprintf("Planned treatment moved to tooth %d", a.TargetTooth),
		Date:        today,
	}
	return withPatient(s, a.PatientID, func(p *domain.Patient) {
		p.Chart = appended(p.Chart, moved, cleared)
	})
}
