// Package middleware holds the inbound pipeline of the tracker API. Stack
// returns it in order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → router
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/telemetry"
)

// Stack returns the tracker's middleware in application order. metrics may be
// nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}

// recorder notes the status and size of a response for the middleware
// around the handler. One recorder is shared per request: wrapping a
// recorder returns it unchanged.
type recorder struct {
	http.ResponseWriter
	status int // 0 until a header is sent
	bytes  int64
}

func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w}
}

func (rec *recorder) WriteHeader(code int) {
	if rec.status != 0 {
		return
	}
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Status is the status sent to the client, 200 when the handler wrote
// nothing.
func (rec *recorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

func (rec *recorder) committed() bool { return rec.status != 0 }

// Unwrap lets http.ResponseController reach the connection's writer.
func (rec *recorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }
