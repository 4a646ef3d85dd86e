package config

import "github.com/knadh/koanf/maps"

// defaults is the bottom configuration layer, nested the way the YAML files
// are. Every key the service reads appears here so that APP_ variables can
// be matched against it.
func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":          "0.0.0.0",
			"port":          8080,
			"read_timeout":  "5s",
			"write_timeout": "10s",
			"idle_timeout":  "120s",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"client": map[string]any{
			"base_url": "http://localhost:8081",
			"timeout":  "30s",
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "10s",
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 1,
			},
			"rate_limit": map[string]any{
				"requests_per_second": 0,
				"burst_size":          1,
			},
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": "phase-tracker",
		},
		"seed": map[string]any{
			"source": SeedSourceNone,
			"path":   "",
		},
	}
}

// flatDefaults returns defaults keyed by dotted path.
func flatDefaults() map[string]any {
	flat, _ := maps.Flatten(defaults(), nil, ".")
	return flat
}
