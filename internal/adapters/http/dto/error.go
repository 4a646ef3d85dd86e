package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// genericDetail replaces the text of errors that carry no tracker kind.
const genericDetail = "the tracker could not complete the request"

// statusByKind is checked in order; the first kind err wraps decides the
// status.
var statusByKind = []struct {
	kind   error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrLocked, http.StatusLocked},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{domain.ErrStorage, http.StatusInternalServerError},
}

// NewErrorResponse builds the problem document for err. A *domain.Failure
// contributes its message as the detail, unwrapped from any context the
// caller added, and validation errors list their fields sorted by location.
// Errors of no known kind answer 500 with a generic detail.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, known := statusOf(err)
	resp := problem(r, status, genericDetail)
	if !known {
		return resp
	}

	resp.Detail = err.Error()
	var failure *domain.Failure
	if errors.As(err, &failure) {
		resp.Detail = failure.Message
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse answers the request with the problem document for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem answers with a problem that has no domain error behind it,
// such as an exceeded deadline or a recovered panic.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, problem(r, status, detail))
}

func problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", err))
	}
}

func statusOf(err error) (int, bool) {
	for _, m := range statusByKind {
		if errors.Is(err, m.kind) {
			return m.status, true
		}
	}
	return http.StatusInternalServerError, false
}

// fieldDetails locates each field in the request body; the "body" field
// stands for the body as a whole.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body"
		if field != "body" {
			loc += "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return cmp.Compare(a.Location, b.Location) })
	return details
}
