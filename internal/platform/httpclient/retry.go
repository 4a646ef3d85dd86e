package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req up to maxAttempts times. Transport errors other than
// context cancellation, 429 and 5xx are retried with jittered exponential
// backoff; a Retry-After header on a retryable response replaces the computed
// delay, capped at the max interval. The body is buffered so each attempt
// replays it. When attempts run out on a retryable status the last response
// is returned with its body open, alongside the error.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !isRetryable(err) {
				return nil, err
			}
			lastErr, hint = err, 0
			continue
		case !isRetryableStatus(resp.StatusCode):
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if attempt == attempts-1 {
			return resp, lastErr
		}
		hint = retryAfter(resp.Header.Get("Retry-After"), time.Now())
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// pause logs the retry and waits for the delay or ctx, whichever ends first.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if hint > 0 {
		delay = min(hint, c.retryCfg.maxInterval)
	}

	logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "retrying fixture source request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the jittered delay before retry number attempt (1-based),
// growing by multiplier and capped at maxInterval before jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	base = math.Min(base, float64(cfg.maxInterval))

	d := base + base*jitterFraction*(2*secureRandFloat64()-1)
	return time.Duration(math.Max(d, 0))
}

// retryAfter parses a Retry-After value in either delta-seconds or HTTP-date
// form. Unparseable or past values yield 0.
func retryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// secureRandFloat64 returns a uniform float64 in [0, 1) built from the top
// 53 bits of a crypto/rand word.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else, network errors
// included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and every 5xx as retryable.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
