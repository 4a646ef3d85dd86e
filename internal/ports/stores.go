package ports

import (
	"context"

	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/store"
)

// RecordStore is the storage port the tracker keeps its records in.
// *store.Store satisfies it; tests wrap it to inject write failures.
type RecordStore[T any] interface {
	Insert(rec T) (T, error)
	Get(id string) (T, bool)
	GetAll() []T
	Where(m store.Matcher[T]) []T
	Update(rec T) bool
	Delete(id string) bool
	Len() int
	Ready() bool
}

var (
	_ RecordStore[startup.Startup] = (*store.Store[startup.Startup])(nil)
	_ RecordStore[phase.Phase]     = (*store.Store[phase.Phase])(nil)
	_ RecordStore[task.Task]       = (*store.Store[task.Task])(nil)
)

// InitialData is the payload the tracker is seeded with at construction.
type InitialData struct {
	Startups []startup.Startup
	Phases   []phase.Phase
	Tasks    []task.Task
}

// FixtureLoader defines the client port for reading initial data.
// Implemented by the fixture adapter (local file or remote URL).
type FixtureLoader interface {
	// Load returns the initial data. Returns domain.ErrUnavailable when a
	// remote source cannot be reached and domain.ErrValidation when the
	// payload cannot be decoded.
	Load(ctx context.Context) (InitialData, error)
}
