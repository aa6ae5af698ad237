package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/dentsim/internal/runtime"
	"github.com/aretw0/dentsim/pkg/adapters/memory"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/observability"
	"github.com/aretw0/dentsim/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	engine := runtime.NewEngine(runtime.WithClock(func() time.Time { return now }))
	mgr := session.NewManager(engine, memory.NewStore())
	return NewHandler(mgr, opts...)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, rr.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestGetHealth(t *testing.T) {
	rr := do(t, newTestHandler(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	rr := do(t, newTestHandler(t), http.MethodGet, "/info", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "dentsim-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, APIVersion, resp["api_version"])
}

func TestListActions(t *testing.T) {
	rr := do(t, newTestHandler(t), http.MethodGet, "/actions", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var kinds []domain.Kind
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &kinds))
	assert.Contains(t, kinds, domain.KindSelectPatient)
}

func TestSessionLifecycle(t *testing.T) {
	h := newTestHandler(t)
	id := createSession(t, h)

	rr := do(t, h, http.MethodGet, "/sessions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var ids []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ids))
	assert.Equal(t, []string{id}, ids)

	rr = do(t, h, http.MethodGet, "/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.NotEmpty(t, got.State.Patients)

	rr = do(t, h, http.MethodDelete, "/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodGet, "/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDispatchAction(t *testing.T) {
	h := newTestHandler(t)
	id := createSession(t, h)

	rr := do(t, h, http.MethodPost, "/sessions/"+id+"/actions",
		`{"type":"SELECT_PATIENT","payload":{"patient_id":3}}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Outcome.Applied)
	assert.Equal(t, []domain.Cell{{Module: assessment.ModuleScheduling, Step: 0}}, resp.Outcome.Verified)
	require.NotNil(t, resp.Diff)
	require.NotNil(t, resp.Diff.Selection)
	require.NotNil(t, *resp.Diff.Selection)
	assert.Equal(t, 3, **resp.Diff.Selection)
	require.NotNil(t, resp.State.SelectedPatientID)
	assert.Equal(t, 3, *resp.State.SelectedPatientID)

	rr = do(t, h, http.MethodGet, "/sessions/"+id+"/progress", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var report assessment.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Completed)
	assert.False(t, report.Passed)
}

func TestDispatchAction_Errors(t *testing.T) {
	h := newTestHandler(t)
	id := createSession(t, h)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"unknown kind", "/sessions/" + id + "/actions", `{"type":"FORMAT_DISK"}`, http.StatusBadRequest},
		{"malformed json", "/sessions/" + id + "/actions", `{"type":`, http.StatusBadRequest},
		{"bad payload", "/sessions/" + id + "/actions", `{"type":"MOVE_APPOINTMENT","payload":{"new_start_time":"yesterday"}}`, http.StatusBadRequest},
		{"unknown session", "/sessions/nope/actions", `{"type":"UNDO"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, rr.Code, rr.Body.String())
		})
	}
}

func TestDispatchAction_NotFoundIsDiagnostic(t *testing.T) {
	h := newTestHandler(t)
	id := createSession(t, h)

	rr := do(t, h, http.MethodPost, "/sessions/"+id+"/actions",
		`{"type":"DELETE_PATIENT","payload":{"patient_id":999}}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Outcome.Applied)
	require.Len(t, resp.Outcome.Diagnostics, 1)
	assert.Equal(t, domain.DiagNotFound, resp.Outcome.Diagnostics[0].Code)
	assert.Nil(t, resp.Diff)
}

func TestCORSPreflight(t *testing.T) {
	rr := do(t, newTestHandler(t), http.MethodOptions, "/sessions", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	h := newTestHandler(t, WithMetrics(m))
	createSession(t, h)

	rr := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "dentsim_http_requests_total")
	assert.Contains(t, body, `status="201"`)
	assert.NotContains(t, body, "unmatched")
}

func TestSubscribeEvents(t *testing.T) {
	h := newTestHandler(t)
	id := createSession(t, h)

	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sessions/"+id+"/events?watch=progress", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lines := bufio.NewScanner(resp.Body)
	require.True(t, lines.Scan())
	assert.Equal(t, "event: ping", lines.Text())

	post := func(body string) {
		r, err := srv.Client().Post(srv.URL+"/sessions/"+id+"/actions", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		r.Body.Close()
	}
	// Filtered out: no grid change.
	post(`{"type":"ADD_TOAST","payload":{"message":"hi"}}`)
	post(`{"type":"SELECT_PATIENT","payload":{"patient_id":1}}`)

	for lines.Scan() {
		line := lines.Text()
		if !strings.HasPrefix(line, "data: {") {
			continue
		}
		var diff domain.StateDiff
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &diff))
		assert.Equal(t, []domain.Cell{{Module: assessment.ModuleScheduling, Step: 0}}, diff.Completed)
		assert.NotContains(t, diff.Collections, "toasts")
		return
	}
	t.Fatal("stream ended before a diff arrived")
}

func TestStreamManager_UnsubscribeTwice(t *testing.T) {
	sm := NewStreamManager()
	_, cancel := sm.Subscribe("s1")
	assert.Equal(t, 1, sm.Subscribers("s1"))

	cancel()
	cancel()
	assert.Equal(t, 0, sm.Subscribers("s1"))
	sm.Broadcast("s1", "ignored")
}

func TestOpenAPIDocument(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	h := newTestHandler(t)
	for p, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			if method == http.MethodGet && strings.HasSuffix(p, "/events") {
				continue
			}
			t.Run(method+" "+p, func(t *testing.T) {
				path := strings.ReplaceAll(p, "{sessionId}", createSession(t, h))
				rr := do(t, h, method, path, `{"type":"UNDO"}`)
				assert.NotEqual(t, http.StatusNotFound, rr.Code)
				assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			})
		}
	}

	rr := do(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dispatchAction")
}
