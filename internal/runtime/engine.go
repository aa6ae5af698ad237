package runtime

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/seed"
)

// DefaultHistoryDepth bounds the undo stack.
const DefaultHistoryDepth = 50

// Engine is the transition function of a training session.
// It holds configuration only; all session data flows through Apply.
type Engine struct {
	logger   *slog.Logger
	clock    func() time.Time
	dataset  *seed.Dataset
	catalog  assessment.Catalog
	verifier *assessment.Verifier
	depth    int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps and the default dataset.
func WithClock(clock func() time.Time) EngineOption {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithDataset sets the seed that sessions start from and reset to.
func WithDataset(ds seed.Dataset) EngineOption {
	return func(e *Engine) {
		e.dataset = &ds
	}
}

// WithCatalog sets the assessment catalog that shapes the progress grid.
func WithCatalog(c assessment.Catalog) EngineOption {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithRules replaces the verification rule table.
func WithRules(rules []assessment.Rule) EngineOption {
	return func(e *Engine) {
		e.verifier = assessment.NewVerifier(rules)
	}
}

// WithHistoryDepth caps the number of undo snapshots. Zero disables undo.
func WithHistoryDepth(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.depth = n
		}
	}
}

// NewEngine creates an engine with the default catalog, rules and dataset.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:    time.Now,
		catalog:  assessment.DefaultCatalog(),
		verifier: assessment.NewVerifier(assessment.DefaultRules()),
		depth:    DefaultHistoryDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.dataset == nil {
		ds := seed.Default(e.clock())
		e.dataset = &ds
	}
	return e
}

// Catalog returns the catalog the engine grades against.
func (e *Engine) Catalog() assessment.Catalog {
	return e.catalog
}

// Initial returns a fresh session state built from the seed.
func (e *Engine) Initial() domain.State {
	return e.reset(domain.State{})
}

// Apply computes the successor of s under a. It never fails: unknown kinds and
// failed lookups leave the state unchanged and report Applied=false.
// The returned state shares unchanged collections with s.
func (e *Engine) Apply(ctx context.Context, s domain.State, a domain.Action) (domain.State, domain.Outcome) {
	if a == nil {
		return s, domain.Outcome{}
	}
	out := domain.Outcome{Kind: a.Kind()}

	next := s
	diag, known := e.transition(ctx, &next, a)
	if !known {
		e.logger.DebugContext(ctx, "ignoring unrecognized action", "kind", out.Kind)
		return s, out
	}
	if diag != nil {
		e.logger.WarnContext(ctx, "action skipped",
			"kind", out.Kind,
			"code", diag.Code,
			"ref", diag.Ref,
			"reason", diag.Message)
		out.Diagnostics = []domain.Diagnostic{*diag}
		return s, out
	}

	out.Applied = true
	if out.Kind.Undoable() {
		next.History = e.record(s.History, s.Records)
	}

	cells := e.verifier.Evaluate(assessment.Evidence{Action: a, Before: &s, After: &next})
	next.Progress, out.Verified = assessment.Fold(next.Progress, cells)
	if len(out.Verified) > 0 {
		e.logger.DebugContext(ctx, "steps verified", "kind", out.Kind, "cells", out.Verified)
	}
	return next, out
}

// transition dispatches on the action type. known is false for actions outside
// the vocabulary.
func (e *Engine) transition(ctx context.Context, s *domain.State, a domain.Action) (diag *domain.Diagnostic, known bool) {
	switch a := a.(type) {
	// Patients
	case domain.SelectPatient:
		return e.selectPatient(s, a), true
	case domain.AddPatient:
		return e.addPatient(s, a), true
	case domain.AddFamilyMember:
		return e.addFamilyMember(s, a), true
	case domain.UpdatePatient:
		return e.updatePatient(s, a), true
	case domain.DeletePatient:
		return e.deletePatient(s, a), true

	// Appointments
	case domain.ScheduleAppointments:
		return e.scheduleAppointments(s, a), true
	case domain.UpdateAppointment:
		return e.updateAppointment(s, a), true
	case domain.DeleteAppointment:
		return e.deleteAppointment(s, a), true
	case domain.CancelAppointment:
		return e.cancelAppointment(s, a), true
	case domain.MoveAppointment:
		return e.moveAppointment(s, a), true
	case domain.PinAppointment:
		return e.pinAppointment(s, a), true
	case domain.WaitlistAppointment:
		return e.waitlistAppointment(s, a), true
	case domain.UpdateDayNote:
		return e.updateDayNote(s, a), true

	// Ledger, insurance
	case domain.AddLedgerEntry:
		return e.addLedgerEntry(s, a), true
	case domain.AddPreAuth:
		return e.addPreAuth(s, a), true
	case domain.AddClaim:
		return e.addClaim(s, a), true
	case domain.UpdateClaim:
		return e.updateClaim(s, a), true
	case domain.AddVerification:
		return e.addVerification(s, a), true
	case domain.UpdateVerification:
		return e.updateVerification(s, a), true
	case domain.BulkUpdateVerifications:
		return e.bulkUpdateVerifications(s, a), true
	case domain.AddRecallType:
		return e.addRecallType(s, a), true
	case domain.UpdateRecallType:
		return e.updateRecallType(s, a), true

	// Charting
	case domain.UpdateChart:
		return e.updateChart(s, a), true
	case domain.BulkUpdateChart:
		return e.bulkUpdateChart(s, a), true
	case domain.MovePlannedTreatment:
		return e.movePlannedTreatment(s, a), true

	// Records
	case domain.LogAction:
		return e.logAction(s, a), true
	case domain.AddDocument:
		return e.addDocument(s, a), true
	case domain.AddUnassignedDocument:
		return e.addUnassignedDocument(s, a), true
	case domain.UpdateUnassignedDocument:
		return e.updateUnassignedDocument(s, a), true
	case domain.DeleteUnassignedDocument:
		return e.deleteUnassignedDocument(s, a), true
	case domain.AssignDocumentToPatient:
		return e.assignDocument(s, a), true
	case domain.AddMedicalRecord:
		return e.addMedicalRecord(s, a), true
	case domain.UpdateMedicalRecord:
		return e.updateMedicalRecord(s, a), true
	case domain.AddToast:
		return e.addToast(s, a), true
	case domain.RemoveToast:
		return e.removeToast(s, a), true
	case domain.AddTask:
		return e.addTask(s, a), true
	case domain.UpdateTask:
		return e.updateTask(s, a), true
	case domain.ToggleTaskComplete:
		return e.toggleTask(s, a), true
	case domain.MarkTaskReminded:
		return e.markTaskReminded(s, a), true
	case domain.MarkMessageRead:
		return e.markMessageRead(s, a), true
	case domain.SendPortalReply:
		return e.sendPortalReply(s, a), true

	// History and lifecycle
	case domain.Undo:
		return e.undo(s), true
	case domain.Redo:
		return e.redo(s), true
	case domain.StartAssessment:
		attempts := s.AssessmentAttempts + 1
		*s = e.reset(*s)
		s.AssessmentMode = true
		s.AssessmentAttempts = attempts
		e.logger.InfoContext(ctx, "assessment started", "attempt", attempts)
		return nil, true
	case domain.EndAssessment:
		s.AssessmentMode = false
		return nil, true
	case domain.RestartAll:
		*s = e.reset(*s)
		e.logger.InfoContext(ctx, "session restarted", "attempts", s.AssessmentAttempts)
		return nil, true
	}
	return nil, false
}

// nextID draws a deterministic id from the state's sequence.
func (e *Engine) nextID(s *domain.State, prefix string) string {
	s.Sequence++
	return prefix + "-" + strconv.Itoa(s.Sequence)
}

func (e *Engine) today() string {
	return e.clock().Format("2006-01-02")
}
