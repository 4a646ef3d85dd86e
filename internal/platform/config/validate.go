package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once, joined with errors.Join.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p, c.Seed.Source == SeedSourceRemote)
	c.Telemetry.check(&p)
	c.Seed.check(&p)
	return errors.Join(p...)
}

type problems []error

// expect records a problem named after key unless ok holds.
func (p *problems) expect(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(key+" "+format, args...))
	}
}

func oneOf(v string, allowed ...string) bool { return slices.Contains(allowed, v) }

func (s *ServerConfig) check(p *problems) {
	p.expect(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.expect(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.expect(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
}

func (l *LogConfig) check(p *problems) {
	p.expect(oneOf(l.Level, "debug", "info", "warn", "error"), "log.level", "must be one of: debug, info, warn, error; got %q", l.Level)
	p.expect(oneOf(l.Format, "json", "text"), "log.format", "must be one of: json, text; got %q", l.Format)
}

// check validates the outbound client. The base URL must be absolute when
// the seed is fetched remotely, since seed.path is resolved against it.
func (cl *ClientConfig) check(p *problems, remoteSeed bool) {
	p.expect(cl.BaseURL != "", "client.base_url", "must not be empty")
	if remoteSeed && cl.BaseURL != "" {
		u, err := url.Parse(cl.BaseURL)
		p.expect(err == nil && oneOf(u.Scheme, "http", "https") && u.Host != "",
			"client.base_url", "must be an absolute http(s) URL for a remote seed, got %q", cl.BaseURL)
	}
	p.expect(cl.Timeout > 0, "client.timeout", "must be positive")
	p.expect(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.expect(cl.Retry.Multiplier > 0, "client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	p.expect(cl.CircuitBreaker.MaxFailures >= 1, "client.circuit_breaker.max_failures", "must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.expect(cl.RateLimit.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second", "must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	if cl.RateLimit.RequestsPerSecond > 0 {
		p.expect(cl.RateLimit.BurstSize >= 1, "client.rate_limit.burst_size", "must be >= 1 when limiting, got %d", cl.RateLimit.BurstSize)
	}
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.expect(oneOf(t.Exporter, "stdout", "otlp"), "telemetry.exporter", "must be one of: stdout, otlp; got %q", t.Exporter)
	if t.Exporter == "otlp" {
		p.expect(t.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
	}
}

func (s *SeedConfig) check(p *problems) {
	known := oneOf(s.Source, SeedSourceNone, SeedSourceFile, SeedSourceRemote)
	p.expect(known, "seed.source", "must be one of: none, file, remote; got %q", s.Source)
	if known && s.Source != SeedSourceNone {
		p.expect(strings.TrimSpace(s.Path) != "", "seed.path", "must not be empty when seed.source is %s", s.Source)
	}
}
