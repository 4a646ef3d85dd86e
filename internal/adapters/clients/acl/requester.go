package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/httpclient"
)

// seedAccept lists the media types a fixture source may answer with.
const seedAccept = "application/yaml, application/json"

// requester issues GETs against a fixture source and owns the response
// lifecycle: non-200 statuses go through TranslateHTTPError and the body is
// always closed.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func newRequester(client *httpclient.Client, logger *slog.Logger) *requester {
	return &requester{client: client, logger: logger}
}

// get resolves path against the client's base URL and hands the body of a
// 200 response to decode.
func (r *requester) get(ctx context.Context, path string, decode func(io.Reader) error) error {
	target, err := r.client.URL(path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("building seed request for %s: %w", path, err)
	}
	req.Header.Set("Accept", seedAccept)

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.close(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != http.StatusOK:
		// Do returns the last response alongside the error once retries on a
		// retryable status run out; the status says more than the retry error.
		r.logger.WarnContext(ctx, "fixture source answered with an error",
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "fixture source unreachable",
			slog.String("url", req.URL.Redacted()),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w", req.URL.Path, err)
	}

	if err := decode(resp.Body); err != nil {
		return fmt.Errorf("decoding seed from %s: %w", req.URL.Path, err)
	}
	return nil
}

func (r *requester) close(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing seed response body", slog.Any("error", err))
	}
}
