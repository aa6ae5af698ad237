package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/dentsim"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/codec"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/observability"
	"github.com/aretw0/dentsim/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIVersion is the version of the JSON contract served by this package.
const APIVersion = "0.1.0"

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// maxActionBytes bounds a single action envelope.
const maxActionBytes = 1 << 20

// Reporter scores a hosted session.
type Reporter interface {
	Report(ctx context.Context, sessionID string) (assessment.Report, error)
}

// Sessions is what the server needs from the session host.
type Sessions interface {
	ports.Dispatcher
	Reporter
}

// Server implements the generated ServerInterface over a session host.
type Server struct {
	Sessions Sessions
	Streams  *StreamManager
	Metrics  *observability.Metrics
	Logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// Option configures a Server.
type Option func(*Server)

// WithMetrics instruments every route and mounts /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.Metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// NewHandler creates the http.Handler for the API.
func NewHandler(sessions Sessions, opts ...Option) http.Handler {
	s := &Server{
		Sessions: sessions,
		Streams:  NewStreamManager(),
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.Metrics != nil {
		r.Use(s.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(HandlerFromMux(s, r))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Dentsim API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// SessionResponse carries a session snapshot.
type SessionResponse struct {
	ID    string        `json:"id"`
	State *domain.State `json:"state"`
}

// DispatchResponse is returned by POST /sessions/{id}/actions.
type DispatchResponse struct {
	Outcome domain.Outcome    `json:"outcome"`
	Diff    *domain.StateDiff `json:"diff,omitempty"`
	State   *domain.State     `json:"state"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Info{
		App:        "dentsim-http",
		Version:    dentsim.Version,
		ApiVersion: APIVersion,
	})
}

// ListActions handles GET /actions with the accepted action types.
func (s *Server) ListActions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, codec.Kinds())
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, state, err := s.Sessions.Create(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+id)
	s.writeJSON(w, http.StatusCreated, SessionResponse{ID: id, State: state})
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id SessionId) {
	state, err := s.Sessions.Load(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, SessionResponse{ID: id, State: state})
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id SessionId) {
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DispatchAction handles POST /sessions/{id}/actions. The body is a codec
// envelope: {"type": "...", "payload": {...}}.
func (s *Server) DispatchAction(w http.ResponseWriter, r *http.Request, id SessionId) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	action, err := codec.DecodeJSON(body)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	before, err := s.Sessions.Load(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	after, out, err := s.Sessions.Dispatch(r.Context(), id, action)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	// Another writer may have committed between Load and Dispatch; the diff
	// is then a superset of this action's changes.
	diff := domain.Diff(before, after)
	if diff != nil {
		if payload, err := json.Marshal(diff); err == nil {
			s.Streams.Broadcast(id, string(payload))
		}
	}

	s.writeJSON(w, http.StatusOK, DispatchResponse{Outcome: out, Diff: diff, State: after})
}

// GetProgress handles GET /sessions/{id}/progress.
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request, id SessionId) {
	report, err := s.Sessions.Report(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// fail maps domain errors to status codes.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrUnknownAction), errors.Is(err, codec.ErrInvalidPayload):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.Logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		http.Error(w, fmt.Sprintf("Internal error: %v", err), http.StatusInternalServerError)
	}
}
