package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts how Load finds its files.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML layers from dir instead of "configs".
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// Load builds the tracker configuration from four layers, later ones winning:
// built-in defaults, {configDir}/base.yaml, {configDir}/{profile}.yaml and
// APP_ environment variables. Env names are matched against the keys the
// earlier layers produced, so field-internal underscores survive:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_SEED_SOURCE               -> seed.source
//	APP_SEED_PATH                 -> seed.path
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	steps := []func(*koanf.Koanf) error{
		loadDefaults,
		loadFile("base", filepath.Join(o.configDir, "base.yaml")),
		loadFile("profile", filepath.Join(o.configDir, profile+".yaml")),
		loadEnv,
	}
	for _, step := range steps {
		if err := step(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range flatDefaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func loadFile(layer, path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", layer, path, err)
		}
		return nil
	}
}

// loadEnv runs last so it can resolve APP_ names against every key the
// earlier layers defined.
func loadEnv(k *koanf.Koanf) error {
	provider := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(buildEnvLookup(k.Keys())),
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// envTransform maps APP_ variables onto known keys, falling back to treating
// every underscore as a separator for keys no layer defined.
func envTransform(lookup map[string]string) func(key, value string) (string, any) {
	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if known, ok := lookup[key]; ok {
			return known, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}

// validateProfile keeps the profile name inside the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup indexes dotted keys by their underscore form
// ("seed_path" -> "seed.path").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
