// Package httpclient is the outbound HTTP client the tracker uses to fetch
// seed fixtures from a remote source. Every request passes, in order, through
// a circuit breaker, an optional rate limiter, request id propagation, a
// client span and the retry loop:
//
//	client := httpclient.New(&cfg.Client, "fixture-source", metrics, logger)
//	target, _ := client.URL("/fixtures/seed.yaml")
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
//	resp, err := client.Do(ctx, req)
//
// Request and correlation ids stored with WithRequestID and WithCorrelationID
// are copied onto outbound X-Request-ID and X-Correlation-ID headers.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/config"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/phase-tracker/internal/platform/httpclient"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// propagated lists the context values copied onto outbound headers.
var propagated = []struct {
	key    any
	header string
}{
	{key: requestIDKey{}, header: "X-Request-ID"},
	{key: correlationIDKey{}, header: "X-Correlation-ID"},
}

// WithRequestID stores id for propagation on outbound requests.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores id for propagation on outbound requests.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client fetches from one remote source. It is safe for concurrent use.
type Client struct {
	http     *http.Client
	baseURL  string
	peer     string
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	limiter  *rate.Limiter // nil disables rate limiting
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New builds a Client for the source named peer, which labels spans, metrics
// and log entries. metrics may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		peer:    peer,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("fixture source circuit changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Do sends req. A non-nil response always has an open body the caller must
// close; that includes the last response of an exhausted retry, which comes
// back together with an error. An open circuit, a rate-limit wait that
// outlives ctx, or a transport failure return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for %s rate limit: %w", c.peer, err)
			}
		}

		for _, p := range propagated {
			if v, ok := ctx.Value(p.key).(string); ok && v != "" {
				req.Header.Set(p.header, v)
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.doWithRetry(spanCtx, req.WithContext(spanCtx))
		endSpan(span, r, err)
		return r, err
	})

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins path onto the configured base URL. A leading slash does not
// discard the base path: "/fixtures/seed.yaml" against "http://host/static"
// yields "http://host/static/fixtures/seed.yaml".
func (c *Client) URL(path string) (string, error) {
	if c.baseURL == "" {
		return "", errors.New("httpclient: base URL is not configured")
	}
	joined, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return "", fmt.Errorf("httpclient: joining %q onto %q: %w", path, c.baseURL, err)
	}
	return joined, nil
}

// Name returns the peer name given to New.
func (c *Client) Name() string {
	return c.peer
}

// HealthCheck derives the source's health from the circuit state without a
// network call: closed is healthy, half-open is degraded, open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded, probing after failures (circuit half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing, requests rejected (circuit open)", c.peer)
	default:
		return fmt.Errorf("%s: circuit in unknown state %v", c.peer, state)
	}
}

// startSpan opens a client span and injects W3C trace context into req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.Redacted()),
			attribute.String("server.address", req.URL.Hostname()),
			attribute.String("peer.service", c.peer),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record emits the client metrics. It runs outside the breaker so that
// rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
