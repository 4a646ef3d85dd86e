package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/telemetry"
)

// Exporter construction never dials the collector, so OTLP succeeds without
// one; shutdown errors are ignored for that reason.
func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp over http", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp bare host", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tp, err := telemetry.InitTracer(ctx, "phase-tracker-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tp)
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			fields := otel.GetTextMapPropagator().Fields()
			assert.Contains(t, fields, "traceparent")
			assert.Contains(t, fields, "baggage")
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp over https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mp, err := telemetry.InitMeter(ctx, "phase-tracker-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, mp)
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestNewMetrics_RegistersTrackerCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "phase-tracker-test")
	require.NoError(t, err)

	m.TasksToggled.Add(ctx, 3)
	m.PhasesCompleted.Add(ctx, 1)
	m.PhasesRelocked.Add(ctx, 2)
	m.CascadeRollbacks.Add(ctx, 1)
	m.ServerRequestDuration.Record(ctx, 0.25)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	var histograms []string
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			switch data := md.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					sums[md.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				histograms = append(histograms, md.Name)
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"tracker.tasks.toggled":     3,
		"tracker.phases.completed":  1,
		"tracker.phases.relocked":   2,
		"tracker.cascade.rollbacks": 1,
	}, sums)
	assert.Equal(t, []string{"http.server.request.duration"}, histograms)
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "phase-tracker-test")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.PhasesRelocked.Add(context.Background(), 2)
		m.ClientRequestTotal.Add(context.Background(), 1)
	})
}
