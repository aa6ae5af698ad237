package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDispatch     EventType = "dispatch"
	EventStepVerified EventType = "step_verified"
	EventDiagnostic   EventType = "diagnostic"
)

// DiagnosticCode classifies why a transition was skipped.
type DiagnosticCode string

const (
	// DiagNotFound means a by-id lookup failed; the transition was a no-op.
	DiagNotFound DiagnosticCode = "not_found"
	// DiagNothingToUndo means an undo or redo found an empty stack.
	DiagNothingToUndo DiagnosticCode = "empty_history"
	// DiagDuplicateID means an action would create a record whose id is
	// already taken; the whole action was skipped.
	DiagDuplicateID DiagnosticCode = "duplicate_id"
)

// Diagnostic explains a skipped transition.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Ref     string         `json:"ref"`
	Message string         `json:"message"`
}

// Outcome describes what a single transition did.
type Outcome struct {
	Kind Kind `json:"kind"`
	// Applied is false for identity transitions (unknown kinds, failed lookups).
	Applied     bool         `json:"applied"`
	Verified    []Cell       `json:"verified,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// DispatchEvent is emitted once per committed dispatch.
type DispatchEvent struct {
	EventBase
	Outcome  Outcome       `json:"outcome"`
	Duration time.Duration `json:"duration"`
}

// StepEvent is emitted for every assessment cell that flipped to true.
type StepEvent struct {
	EventBase
	Cell Cell `json:"cell"`
	Kind Kind `json:"kind"`
}

// DiagnosticEvent is emitted for every diagnostic a transition produced.
type DiagnosticEvent struct {
	EventBase
	Kind       Kind       `json:"kind"`
	Diagnostic Diagnostic `json:"diagnostic"`
}

// LifecycleHooks defines callbacks for session observability.
type LifecycleHooks struct {
	OnDispatch     func(context.Context, *DispatchEvent)
	OnStepVerified func(context.Context, *StepEvent)
	OnDiagnostic   func(context.Context, *DiagnosticEvent)
}

// Emit notifies the hooks about a committed outcome.
func (h LifecycleHooks) Emit(ctx context.Context, sessionID string, out Outcome, took time.Duration) {
	now := time.Now()
	if h.OnDispatch != nil {
		h.OnDispatch(ctx, &DispatchEvent{
			EventBase: EventBase{Timestamp: now, Type: EventDispatch, SessionID: sessionID},
			Outcome:   out,
			Duration:  took,
		})
	}
	if h.OnStepVerified != nil {
		for _, c := range out.Verified {
			h.OnStepVerified(ctx, &StepEvent{
				EventBase: EventBase{Timestamp: now, Type: EventStepVerified, SessionID: sessionID},
				Cell:      c,
				Kind:      out.Kind,
			})
		}
	}
	if h.OnDiagnostic != nil {
		for _, d := range out.Diagnostics {
			h.OnDiagnostic(ctx, &DiagnosticEvent{
				EventBase:  EventBase{Timestamp: now, Type: EventDiagnostic, SessionID: sessionID},
				Kind:       out.Kind,
				Diagnostic: d,
			})
		}
	}
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnDispatch:     chain(h.OnDispatch, other.OnDispatch),
		OnStepVerified: chain(h.OnStepVerified, other.OnStepVerified),
		OnDiagnostic:   chain(h.OnDiagnostic, other.OnDiagnostic),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
