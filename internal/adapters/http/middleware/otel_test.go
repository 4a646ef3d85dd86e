package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/telemetry"
)

// These tests swap the global tracer provider and so do not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

func trackerRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	handler := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) }
	r.Post("/api/v1/tasks/{taskId}/toggle", handler)
	r.Get("/api/v1/startups", handler)
	return r
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		wantName  string
		wantRoute string
		wantError bool
	}{
		{name: "toggle", method: http.MethodPost, path: "/api/v1/tasks/7/toggle", status: http.StatusOK,
			wantName: "POST /api/v1/tasks/{taskId}/toggle", wantRoute: "/api/v1/tasks/{taskId}/toggle"},
		{name: "locked phase", method: http.MethodPost, path: "/api/v1/tasks/8/toggle", status: http.StatusLocked,
			wantName: "POST /api/v1/tasks/{taskId}/toggle", wantRoute: "/api/v1/tasks/{taskId}/toggle"},
		{name: "storage failure", method: http.MethodGet, path: "/api/v1/startups", status: http.StatusInternalServerError,
			wantName: "GET /api/v1/startups", wantRoute: "/api/v1/startups", wantError: true},
		{name: "no route", method: http.MethodGet, path: "/api/v1/startups/1/secret", status: http.StatusOK,
			wantName: "GET unmatched", wantRoute: "unmatched"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exporter := installTracer(t)

			rec := httptest.NewRecorder()
			trackerRouter(nil, tc.status).ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, http.NoBody))

			spans := exporter.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("spans = %d, want 1", len(spans))
			}
			span := spans[0]
			if span.Name != tc.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tc.wantName)
			}

			attrs := make(map[string]any)
			for _, a := range span.Attributes {
				attrs[string(a.Key)] = a.Value.AsInterface()
			}
			if attrs["http.request.method"] != tc.method {
				t.Errorf("http.request.method = %v, want %s", attrs["http.request.method"], tc.method)
			}
			if attrs["url.path"] != tc.path {
				t.Errorf("url.path = %v, want %s", attrs["url.path"], tc.path)
			}
			if attrs["http.route"] != tc.wantRoute {
				t.Errorf("http.route = %v, want %s", attrs["http.route"], tc.wantRoute)
			}
			if attrs["http.response.status_code"] != int64(rec.Code) {
				t.Errorf("http.response.status_code = %v, want %d", attrs["http.response.status_code"], rec.Code)
			}
			if got := span.Status.Code == codes.Error; got != tc.wantError {
				t.Errorf("span error status = %v, want %v", got, tc.wantError)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := installTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/startups", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	trackerRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the inbound one", got)
	}
	if got := spans[0].Parent.SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span id = %s, want the inbound one", got)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "phase-tracker-test")
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	router := trackerRouter(metrics, http.StatusLocked)
	for range 2 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/tasks/4/toggle", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || m.Name != "http.server.request.total" {
				continue
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				if route.AsString() != "/api/v1/tasks/{taskId}/toggle" || result.AsString() != "error" {
					t.Errorf("data point attributes = %v", dp.Attributes.ToSlice())
				}
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Errorf("http.server.request.total = %d, want 2", total)
	}
}
