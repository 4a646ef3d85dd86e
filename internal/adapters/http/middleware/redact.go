package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
)

// RedactHeaders turns headers into log attributes sorted by name. Headers in
// logging.SensitiveHeaders are logged as "[REDACTED]"; repeated values are
// joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		value := strings.Join(headers[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
