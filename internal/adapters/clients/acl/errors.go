// Package acl implements the outbound adapters that supply the tracker's
// initial data: a local file loader and a remote loader that fetches the
// seed document through the instrumented HTTP client. Payload translation
// lives in acl/fixture; HTTP error mapping lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
)

const (
	// maxErrorBodySize limits how much of an error response body is read.
	maxErrorBodySize = 1 << 20

	// maxTextDetail bounds the plain-text excerpt kept from static file
	// servers, which rarely speak problem+json.
	maxTextDetail = 200
)

// problemDetail is the subset of an RFC 9457 body the loader uses.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a fixture source's error response to a domain
// error. 404 means the seed document is missing and 400/422 mean the source
// rejected the request; field errors become a *domain.ValidationError.
// Refused access, throttling, request timeouts and 5xx all mean the source
// cannot serve the seed right now and map to domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	pd := readErrorDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	detail = fmt.Sprintf("fixture source: %s", detail)

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case code == http.StatusUnauthorized, code == http.StatusForbidden,
		code == http.StatusRequestTimeout, code == http.StatusTooManyRequests,
		code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d from %s", code, detail)
	}
}

// readErrorDetail reads a problem+json body, or the first line of a
// text/plain body as the detail. Anything else yields an empty detail.
func readErrorDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	problem := strings.HasPrefix(ct, "application/problem+json")
	if !problem && !strings.HasPrefix(ct, "text/plain") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	if !problem {
		line, _, _ := strings.Cut(strings.TrimSpace(string(body)), "\n")
		if len(line) > maxTextDetail {
			line = line[:maxTextDetail]
		}
		return problemDetail{Detail: strings.TrimSpace(line)}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts field errors to a domain ValidationError,
// dropping the "body." location prefix.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
