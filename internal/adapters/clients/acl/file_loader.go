package acl

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl/fixture"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

var _ ports.FixtureLoader = (*FileLoader)(nil)

// FileLoader reads the seed document from a local YAML or JSON file.
type FileLoader struct {
	path   string
	logger *slog.Logger
}

// NewFileLoader creates a FileLoader for path.
func NewFileLoader(path string, logger *slog.Logger) *FileLoader {
	return &FileLoader{path: path, logger: logger}
}

// Load reads and translates the file.
func (l *FileLoader) Load(ctx context.Context) (ports.InitialData, error) {
	if err := ctx.Err(); err != nil {
		return ports.InitialData{}, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return ports.InitialData{}, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.WarnContext(ctx, "failed to close seed file",
				slog.String("path", l.path),
				slog.Any("error", cerr),
			)
		}
	}()

	dto, err := fixture.Decode(f)
	if err != nil {
		return ports.InitialData{}, fmt.Errorf("decoding seed file %s: %w", l.path, err)
	}

	data := fixture.ToInitialData(dto)
	l.logger.InfoContext(ctx, "loaded seed file",
		slog.String("path", l.path),
		slog.Int("startups", len(data.Startups)),
		slog.Int("phases", len(data.Phases)),
		slog.Int("tasks", len(data.Tasks)),
	)
	return data, nil
}

// emptyLoader seeds nothing.
type emptyLoader struct{}

func (emptyLoader) Load(context.Context) (ports.InitialData, error) {
	return ports.InitialData{}, nil
}
