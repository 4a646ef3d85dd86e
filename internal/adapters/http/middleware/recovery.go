package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
)

// Recovery turns a handler panic into an RFC 9457 500 and an Error entry
// with the stack. A response already under way is left alone and only
// logged. http.ErrAbortHandler is re-raised so net/http aborts the
// connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rec.committed()),
					slog.String("stack", string(debug.Stack())),
				)
				if !rec.committed() {
					dto.WriteProblem(rec, r, http.StatusInternalServerError, "the tracker failed to handle the request")
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
