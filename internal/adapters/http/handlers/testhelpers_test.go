package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
)

// withChiParams attaches route parameters the way chi does when it matches
// a pattern such as /phases/{phaseId}/tasks.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	route := chi.NewRouteContext()
	for name, value := range params {
		route.URLParams.Add(name, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, route))
}

// Records from the default seed: startup xpto, its first phase and that
// phase's first task.

func validStartup() startup.Startup { return startup.Startup{ID: "0", Name: "xpto"} }

func validPhase() phase.Phase {
	return phase.Phase{ID: "0", StartupID: "0", SeqNo: 0, Title: "Foundation", Description: "Set up the company"}
}

func validTask() task.Task {
	return task.Task{ID: "0", PhaseID: "0", Title: "Setup virtual office"}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v), "encoding request body")
	return &buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "decoding response body")
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

func intPtr(v int) *int { return &v }
