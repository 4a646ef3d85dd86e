package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
)

// maxJSONBodyBytes caps tracker request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

// pathID returns the named chi path parameter. Record ids are opaque; only a
// blank id is rejected.
func pathID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", &domain.ValidationError{Fields: map[string]string{param: domain.MsgRequired}}
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// writeResult renders a mutation outcome: the Result on success, the
// failure as a problem document otherwise.
func writeResult(w http.ResponseWriter, r *http.Request, status int, res domain.Result, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, status, dto.ToResultResponse(res))
}

type validatable interface {
	Validate() error
}

// decodeAndValidate reads the JSON body into dst and validates it. On
// failure the 400 problem is already written and false is returned.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		reason := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reason = "exceeds 1 MiB"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": reason}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
