package runtime

import (
	"github.com/aretw0/dentsim/pkg/domain"
)

// record pushes a snapshot of prev onto the undo stack, drops the oldest
// snapshot past the configured depth and clears the redo stack.
func (e *Engine) record(h domain.History, prev domain.Records) domain.History {
	if e.depth == 0 {
		return domain.History{}
	}
	past := appended(h.Past, prev)
	if len(past) > e.depth {
		past = past[len(past)-e.depth:]
	}
	return domain.History{Past: past}
}

func nothingTo(op string) *domain.Diagnostic {
	return &domain.Diagnostic{
		Code:    domain.DiagNothingToUndo,
		Ref:     op,
		Message: "nothing to " + op,
	}
}

// undo restores the latest snapshot. Progress, selection and the assessment
// flags are left alone.
func (e *Engine) undo(s *domain.State) *domain.Diagnostic {
	n := len(s.History.Past)
	if n == 0 {
		return nothingTo("undo")
	}
	current := s.Records
	s.Records = s.History.Past[n-1]
	s.History = domain.History{
		Past:   s.History.Past[: n-1 : n-1],
		Future: appended(s.History.Future, current),
	}
	return nil
}

func (e *Engine) redo(s *domain.State) *domain.Diagnostic {
	n := len(s.History.Future)
	if n == 0 {
		return nothingTo("redo")
	}
	current := s.Records
	s.Records = s.History.Future[n-1]
	s.History = domain.History{
		Past:   appended(s.History.Past, current),
		Future: s.History.Future[: n-1 : n-1],
	}
	return nil
}

// reset rebuilds prev from the seed. Only the attempt counter and the id
// sequence survive.
func (e *Engine) reset(prev domain.State) domain.State {
	s := domain.State{
		Records:            e.dataset.Records.Clone(),
		Actions:            []domain.LoggedAction{},
		Toasts:             []domain.Toast{},
		Progress:           e.catalog.NewGrid(),
		AssessmentAttempts: prev.AssessmentAttempts,
		Sequence:           prev.Sequence,
	}
	if e.dataset.SelectedPatientID != nil {
		id := *e.dataset.SelectedPatientID
		s.SelectedPatientID = &id
	}
	return s
}
