package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/dentsim/pkg/domain"
)

// LogHooks writes lifecycle events to logger: dispatches at debug, completed
// steps at info and diagnostics at warn.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			logger.DebugContext(ctx, "dispatch",
				"session_id", e.SessionID,
				"kind", e.Outcome.Kind,
				"applied", e.Outcome.Applied,
				"duration", e.Duration)
		},
		OnStepVerified: func(ctx context.Context, e *domain.StepEvent) {
			logger.InfoContext(ctx, "step verified",
				"session_id", e.SessionID,
				"module", e.Cell.Module,
				"step", e.Cell.Step,
				"kind", e.Kind)
		},
		OnDiagnostic: func(ctx context.Context, e *domain.DiagnosticEvent) {
			logger.WarnContext(ctx, "action skipped",
				"session_id", e.SessionID,
				"kind", e.Kind,
				"code", e.Diagnostic.Code,
				"ref", e.Diagnostic.Ref)
		},
	}
}
