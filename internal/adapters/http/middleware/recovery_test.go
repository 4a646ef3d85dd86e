package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantStatus  int
		wantProblem bool
		wantBody    string
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success":true}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:        "string panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic("cascade exploded") },
			wantStatus:  http.StatusInternalServerError,
			wantProblem: true,
		},
		{
			name:        "error panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic(http.ErrNotSupported) },
			wantStatus:  http.StatusInternalServerError,
			wantProblem: true,
		},
		{
			name: "panic after headers",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/1/toggle", http.NoBody)
			middleware.Recovery(discardLogger())(tc.handler).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if !tc.wantProblem {
				if rec.Body.String() != tc.wantBody {
					t.Errorf("body = %q, want %q", rec.Body.String(), tc.wantBody)
				}
				return
			}

			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var problem struct {
				Title    string `json:"title"`
				Detail   string `json:"detail"`
				Instance string `json:"instance"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
				t.Fatalf("decoding problem: %v", err)
			}
			if problem.Title != "Internal Server Error" {
				t.Errorf("title = %q", problem.Title)
			}
			if strings.Contains(problem.Detail, "exploded") || strings.Contains(problem.Detail, "not supported") {
				t.Errorf("detail %q leaks the panic value", problem.Detail)
			}
			if problem.Instance != "/api/v1/tasks/1/toggle" {
				t.Errorf("instance = %q", problem.Instance)
			}
		})
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(jsonLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("phase store gone")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/startups", http.NoBody))

	e, ok := entries(t, &buf)["panic recovered"]
	if !ok {
		t.Fatal("no 'panic recovered' entry")
	}
	if e["level"] != "ERROR" || e["panic"] != "phase store gone" {
		t.Errorf("entry = %v", e)
	}
	if stack, _ := e["stack"].(string); !strings.Contains(stack, "goroutine") {
		t.Error("entry has no stack trace")
	}
	if e["response_started"] != false {
		t.Errorf("response_started = %v, want false", e["response_started"])
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	t.Error("ServeHTTP returned normally")
}
