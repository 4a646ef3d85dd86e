package ports

import (
	"context"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
)

// TrackerService defines the service port for the startup/phase/task
// tracker. Implemented by the application layer; called by inbound adapters
// (HTTP handlers, the phasectl CLI).
//
// Mutations return both a domain.Result and an error. On failure the error
// is a *domain.Failure whose Kind is one of the domain sentinels and whose
// message equals Result.Message.
type TrackerService interface {
	// GetStartups returns every startup in insertion order.
	GetStartups(ctx context.Context) []startup.Startup

	// InsertStartup creates a startup. The name is not validated.
	InsertStartup(ctx context.Context, name string) (domain.Result, error)

	// GetPhases returns the phases of a startup in insertion order. An
	// unknown startup yields an empty slice.
	GetPhases(ctx context.Context, startupID string) []phase.Phase

	// InsertPhase creates a phase, deriving its Locked flag from the
	// predecessor by SeqNo.
	// Returns domain.ErrNotFound if the startup does not exist.
	// Returns domain.ErrConflict if the SeqNo is taken within the startup.
	InsertPhase(ctx context.Context, in phase.Input) (domain.Result, error)

	// GetTasks returns the tasks of a phase in insertion order.
	GetTasks(ctx context.Context, phaseID string) []task.Task

	// InsertTask creates an incomplete task.
	// Returns domain.ErrNotFound if the phase does not exist.
	InsertTask(ctx context.Context, in task.Input) (domain.Result, error)

	// ToggleTaskCompletion flips a task and runs the completion cascade.
	// Returns domain.ErrNotFound if the task does not exist.
	// Returns domain.ErrLocked if the owning phase is locked.
	// Returns domain.ErrStorage if a cascade write failed; earlier writes of
	// the same cascade are rolled back.
	ToggleTaskCompletion(ctx context.Context, taskID string) (domain.Result, error)

	// GetStartupTree returns every startup with its phases (by SeqNo) and
	// their tasks.
	GetStartupTree(ctx context.Context) ([]StartupTree, error)
}

// StartupTree is the nested read model of one startup.
type StartupTree struct {
	Startup startup.Startup
	Phases  []PhaseTree
}

// PhaseTree is one phase with its tasks and derived completion percentage.
type PhaseTree struct {
	Phase    phase.Phase
	Progress int
	Tasks    []task.Task
}
