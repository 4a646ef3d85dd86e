package acl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl/fixture"
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// RemoteSourceName identifies the remote seed source in traces, metrics and
// readiness checks.
const RemoteSourceName = "fixture-source"

// Compile-time interface checks.
var (
	_ ports.FixtureLoader = (*RemoteLoader)(nil)
	_ ports.HealthChecker = (*RemoteLoader)(nil)
)

// RemoteLoader fetches the seed document from a path relative to the HTTP
// client's base URL. The underlying [httpclient.Client] provides circuit
// breaking, rate limiting, retry and tracing.
type RemoteLoader struct {
	req    *requester
	client *httpclient.Client
	path   string
	logger *slog.Logger
}

// NewRemoteLoader creates a RemoteLoader reading path through client.
func NewRemoteLoader(client *httpclient.Client, path string, logger *slog.Logger) *RemoteLoader {
	return &RemoteLoader{
		req:    newRequester(client, logger),
		client: client,
		path:   path,
		logger: logger,
	}
}

// Load fetches and translates the seed document. Transport failures and
// 5xx responses are reported as [domain.ErrUnavailable]; undecodable
// payloads as [domain.ErrValidation].
func (l *RemoteLoader) Load(ctx context.Context) (ports.InitialData, error) {
	var dto fixture.DataLoadDTO
	err := l.req.get(ctx, l.path, func(body io.Reader) error {
		var decodeErr error
		dto, decodeErr = fixture.Decode(body)
		return decodeErr
	})
	if err != nil {
		if !isDomainError(err) {
			err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		l.logger.ErrorContext(ctx, "failed to load remote seed",
			slog.String("operation", "RemoteLoader.Load"),
			slog.String("base_url", l.client.BaseURL()),
			slog.String("path", l.path),
			slog.Any("error", err),
		)
		return ports.InitialData{}, err
	}

	data := fixture.ToInitialData(dto)
	l.logger.InfoContext(ctx, "loaded remote seed",
		slog.String("path", l.path),
		slog.Int("startups", len(data.Startups)),
		slog.Int("phases", len(data.Phases)),
		slog.Int("tasks", len(data.Tasks)),
	)
	return data, nil
}

// Name returns the identifier used when this loader is registered with a
// [ports.HealthRegistry].
func (l *RemoteLoader) Name() string {
	return RemoteSourceName
}

// HealthCheck reports the seed source's availability from the client's
// circuit breaker state. No network call is made.
func (l *RemoteLoader) HealthCheck(ctx context.Context) error {
	return l.client.HealthCheck(ctx)
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrUnavailable)
}
