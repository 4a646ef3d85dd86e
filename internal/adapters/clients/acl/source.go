package acl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/config"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// NewLoader selects the loader for the configured seed source. client is
// only used by the remote source and may be nil otherwise.
func NewLoader(cfg config.SeedConfig, client *httpclient.Client, logger *slog.Logger) (ports.FixtureLoader, error) {
	switch cfg.Source {
	case config.SeedSourceNone, "":
		return emptyLoader{}, nil
	case config.SeedSourceFile:
		return NewFileLoader(cfg.Path, logger), nil
	case config.SeedSourceRemote:
		if client == nil {
			return nil, errors.New("remote seed source requires an HTTP client")
		}
		return NewRemoteLoader(client, cfg.Path, logger), nil
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
}
