package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
)

// Logging logs the start and end of every request through a child logger
// tagged with the request and correlation ids. The child is stored in the
// context, so handler and engine entries carry the same ids.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			log := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, log)

			target := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			log.LogAttrs(ctx, slog.LevelInfo, "request started", target...)
			logHeaders(ctx, log, r.Header)

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.Status()
			log.LogAttrs(ctx, completionLevel(status), "request completed", append(target,
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}

// logHeaders dumps the redacted request headers at Debug.
func logHeaders(ctx context.Context, log *slog.Logger, h http.Header) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	log.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(h)...)
}

// completionLevel is Error for 5xx, Warn for 4xx such as locked phases or
// missing records, Info otherwise.
func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
