// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	appctx "github.com/jsamuelsen11/phase-tracker/internal/app/context"
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/store"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// Compile-time check that TrackerService implements ports.TrackerService.
var _ ports.TrackerService = (*TrackerService)(nil)

// errWriteMissed is returned by a cascade write whose target record has
// disappeared from its store.
var errWriteMissed = errors.New("record missing")

// TrackerStores groups the three record stores the tracker owns.
type TrackerStores struct {
	Startups ports.RecordStore[startup.Startup]
	Phases   ports.RecordStore[phase.Phase]
	Tasks    ports.RecordStore[task.Task]
}

// NewTrackerStores creates in-memory stores seeded with data. Seeded
// identifiers are kept; new records continue after them.
func NewTrackerStores(data ports.InitialData) TrackerStores {
	return TrackerStores{
		Startups: store.New(data.Startups...),
		Phases:   store.New(data.Phases...),
		Tasks:    store.New(data.Tasks...),
	}
}

// TrackerService implements ports.TrackerService over three record stores.
//
// Mutations are serialized by mu. Each multi-write cascade is staged on an
// appctx.RequestContext and committed as a unit, so a failed write undoes
// the writes of the same cascade that already ran.
type TrackerService struct {
	startups ports.RecordStore[startup.Startup]
	phases   ports.RecordStore[phase.Phase]
	tasks    ports.RecordStore[task.Task]
	logger   *slog.Logger
	metrics  *telemetry.Metrics

	treeWorkers int

	mu sync.Mutex
}

// NewTrackerService creates a TrackerService over stores. A nil logger
// discards output and a nil metrics records nothing.
func NewTrackerService(stores TrackerStores, logger *slog.Logger, metrics *telemetry.Metrics) *TrackerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = discardMetrics()
	}
	return &TrackerService{
		startups:    stores.Startups,
		phases:      stores.Phases,
		tasks:       stores.Tasks,
		logger:      logger,
		metrics:     metrics,
		treeWorkers: defaultTreeWorkers,
	}
}

// log returns the request-scoped logger when ctx carries one.
func (s *TrackerService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func discardMetrics() *telemetry.Metrics {
	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "discard")
	if err != nil {
		// The noop meter never fails to create instruments.
		panic(err)
	}
	return m
}

// GetStartups returns every startup in insertion order.
func (s *TrackerService) GetStartups(_ context.Context) []startup.Startup {
	return s.startups.GetAll()
}

// InsertStartup stores a startup under a fresh identifier. The name is
// accepted as given, empty and duplicate names included.
func (s *TrackerService) InsertStartup(ctx context.Context, name string) (domain.Result, error) {
	s.log(ctx).InfoContext(ctx, "inserting startup", slog.String("name", name))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.startups.Insert(startup.Startup{Name: name}); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to insert startup",
			slog.String("operation", "InsertStartup"),
			slog.String("name", name),
			slog.Any("error", err),
		)
		return failed(domain.Fail(domain.ErrStorage, "Failed to insert '%s'", name))
	}

	return domain.Succeeded("Successfully inserted '%s'", name), nil
}

// GetPhases returns the phases of a startup.
func (s *TrackerService) GetPhases(_ context.Context, startupID string) []phase.Phase {
	return s.phases.Where(phase.OfStartup(startupID))
}

// InsertPhase stores a new incomplete phase. It starts locked when the
// closest phase below it by SeqNo exists and is not complete.
func (s *TrackerService) InsertPhase(ctx context.Context, in phase.Input) (domain.Result, error) {
	s.log(ctx).InfoContext(ctx, "inserting phase",
		slog.String("startup_id", in.StartupID),
		slog.Int("seq_no", in.SeqNo),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.startups.Get(in.StartupID); !ok {
		return failed(domain.Fail(domain.ErrNotFound, "Cannot insert phase: startup does not exists"))
	}

	if taken := s.phases.Where(phase.WithSeqNo(in.StartupID, in.SeqNo)); len(taken) > 0 {
		return failed(domain.Fail(domain.ErrConflict, "Cannot insert phase with same seqNo as '%s'", taken[0].Title))
	}
	siblings := s.phases.Where(phase.OfStartup(in.StartupID))

	_, err := s.phases.Insert(phase.Phase{
		StartupID:   in.StartupID,
		Title:       in.Title,
		Description: in.Description,
		SeqNo:       in.SeqNo,
		IsComplete:  false,
		Locked:      phase.LockedBehind(siblings, in.SeqNo),
	})
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to insert phase",
			slog.String("operation", "InsertPhase"),
			slog.String("startup_id", in.StartupID),
			slog.Any("error", err),
		)
		return failed(domain.Fail(domain.ErrStorage, "Failed to insert '%s'", in.Title))
	}

	return domain.Succeeded("Successfully inserted '%s'", in.Title), nil
}

// CompletePhase marks a phase complete and unlocks the phase that follows
// it by SeqNo, if any. The successor is unlocked unconditionally and the
// writes are re-applied when the phase is already complete.
func (s *TrackerService) CompletePhase(ctx context.Context, phaseID string) (bool, error) {
	s.log(ctx).InfoContext(ctx, "completing phase", slog.String("phase_id", phaseID))

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phases.Get(phaseID)
	if !ok {
		return false, domain.Fail(domain.ErrNotFound, "Phase '%s' does not exist", phaseID)
	}

	rc := appctx.New(ctx)
	if err := s.stageCompletion(rc, p); err != nil {
		return false, s.cascadeFailed(ctx, "CompletePhase", phaseID, err)
	}
	if err := s.commit(ctx, rc, "CompletePhase"); err != nil {
		return false, s.cascadeFailed(ctx, "CompletePhase", phaseID, err)
	}

	s.metrics.PhasesCompleted.Add(ctx, 1)
	return true, nil
}

// GetTasks returns the tasks of a phase.
func (s *TrackerService) GetTasks(_ context.Context, phaseID string) []task.Task {
	return s.tasks.Where(task.OfPhase(phaseID))
}

// InsertTask stores a new incomplete task.
func (s *TrackerService) InsertTask(ctx context.Context, in task.Input) (domain.Result, error) {
	s.log(ctx).InfoContext(ctx, "inserting task", slog.String("phase_id", in.PhaseID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phases.Get(in.PhaseID); !ok {
		return failed(domain.Fail(domain.ErrNotFound, "Cannot insert task: phase does not exists"))
	}

	_, err := s.tasks.Insert(task.Task{
		PhaseID:     in.PhaseID,
		Title:       in.Title,
		Description: in.Description,
		IsComplete:  false,
	})
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to insert task",
			slog.String("operation", "InsertTask"),
			slog.String("phase_id", in.PhaseID),
			slog.Any("error", err),
		)
		return failed(domain.Fail(domain.ErrStorage, "Failed to insert '%s'", in.Title))
	}

	return domain.Succeeded("Successfully inserted '%s'", in.Title), nil
}

// ToggleTaskCompletion flips a task's completion and runs the cascade:
//
//   - completing the last open task of a phase completes the phase and
//     unlocks its successor;
//   - reopening a task reopens its phase and locks every later phase of the
//     startup.
//
// Tasks of a locked phase cannot be toggled. A task whose phase no longer
// exists is flipped without a cascade.
func (s *TrackerService) ToggleTaskCompletion(ctx context.Context, taskID string) (domain.Result, error) {
	s.log(ctx).InfoContext(ctx, "toggling task", slog.String("task_id", taskID))

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks.Get(taskID)
	if !ok {
		return failed(domain.Fail(domain.ErrNotFound, "Task '%s' does not exist", taskID))
	}

	p, hasPhase := s.phases.Get(t.PhaseID)
	if hasPhase && p.Locked {
		return failed(domain.Fail(domain.ErrLocked, "Cannot complete tasks on locked phase"))
	}

	toggled := t
	toggled.IsComplete = !t.IsComplete

	// The completion check substitutes toggled into the phase's task list
	// itself, so the task write needs no staged cache entry.
	rc := appctx.New(ctx)
	if err := rc.AddAction(replace(s.tasks, taskKey(t.ID), t, toggled, describeTask(toggled))); err != nil {
		return failed(s.cascadeFailed(ctx, "ToggleTaskCompletion", taskID, err))
	}

	var completes, relocks int
	if hasPhase {
		var err error
		if toggled.IsComplete {
			completes, err = s.stageTaskCompleted(rc, p, toggled)
		} else {
			relocks, err = s.stageTaskReopened(rc, p)
		}
		if err != nil {
			return failed(s.cascadeFailed(ctx, "ToggleTaskCompletion", taskID, err))
		}
	}

	if err := s.commit(ctx, rc, "ToggleTaskCompletion"); err != nil {
		return failed(s.cascadeFailed(ctx, "ToggleTaskCompletion", taskID, err))
	}

	state := stateLabel(toggled.IsComplete)
	s.metrics.TasksToggled.Add(ctx, 1, metric.WithAttributes(telemetry.AttrTaskState.String(state)))
	if completes > 0 {
		s.metrics.PhasesCompleted.Add(ctx, int64(completes))
	}
	if relocks > 0 {
		s.metrics.PhasesRelocked.Add(ctx, int64(relocks))
	}

	return domain.Succeeded("Successfully marked task '%s' as %s", taskID, state), nil
}

// stageTaskCompleted stages the phase completion when toggled closed the
// last open task of p. It returns the number of phases completed.
func (s *TrackerService) stageTaskCompleted(rc *appctx.RequestContext, p phase.Phase, toggled task.Task) (int, error) {
	tasks, err := appctx.GetOrFetch(rc, tasksKey(p.ID), func(context.Context) ([]task.Task, error) {
		return s.tasks.Where(task.OfPhase(p.ID)), nil
	})
	if err != nil {
		return 0, err
	}

	current := make([]task.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == toggled.ID {
			t = toggled
		}
		current[i] = t
	}
	if !task.AllComplete(current) {
		return 0, nil
	}

	if err := s.stageCompletion(rc, p); err != nil {
		return 0, err
	}
	return 1, nil
}

// stageTaskReopened stages reopening p and locking every later phase of its
// startup. It returns the number of phases locked.
func (s *TrackerService) stageTaskReopened(rc *appctx.RequestContext, p phase.Phase) (int, error) {
	reopened := p
	reopened.IsComplete = false
	if err := rc.Stage(phaseKey(p.ID), reopened,
		replace(s.phases, phaseKey(p.ID), p, reopened, "reopen phase "+p.ID)); err != nil {
		return 0, err
	}

	siblings, err := s.siblings(rc, p.StartupID)
	if err != nil {
		return 0, err
	}

	later := phase.Later(siblings, p.SeqNo)
	locks := make([]domain.Action, 0, len(later))
	for _, lp := range later {
		locked := lp
		locked.Locked = true
		locks = append(locks, replace(s.phases, phaseKey(lp.ID), lp, locked, "lock phase "+lp.ID))
	}
	if err := rc.AddGroup(locks...); err != nil {
		return 0, err
	}
	return len(locks), nil
}

// stageCompletion stages the two writes of the completion primitive:
// unlock the successor, then mark p complete.
func (s *TrackerService) stageCompletion(rc *appctx.RequestContext, p phase.Phase) error {
	siblings, err := s.siblings(rc, p.StartupID)
	if err != nil {
		return err
	}

	if phase.HasNext(siblings, p.SeqNo) {
		next, _ := phase.Next(siblings, p.SeqNo)
		unlocked := next
		unlocked.Locked = false
		if err := rc.Stage(phaseKey(next.ID), unlocked,
			replace(s.phases, phaseKey(next.ID), next, unlocked, "unlock phase "+next.ID)); err != nil {
			return err
		}
	}

	completed := p
	completed.IsComplete = true
	return rc.Stage(phaseKey(p.ID), completed,
		replace(s.phases, phaseKey(p.ID), p, completed, "complete phase "+p.ID))
}

func (s *TrackerService) siblings(rc *appctx.RequestContext, startupID string) ([]phase.Phase, error) {
	return appctx.GetOrFetch(rc, phasesKey(startupID), func(context.Context) ([]phase.Phase, error) {
		return s.phases.Where(phase.OfStartup(startupID)), nil
	})
}

func (s *TrackerService) commit(ctx context.Context, rc *appctx.RequestContext, op string) error {
	s.log(ctx).DebugContext(ctx, "committing cascade",
		slog.String("operation", op),
		slog.Int("writes", rc.Pending()),
	)
	return rc.Commit(ctx)
}

// cascadeFailed logs a failed cascade and converts err into a storage
// Failure.
func (s *TrackerService) cascadeFailed(ctx context.Context, op, id string, err error) *domain.Failure {
	s.log(ctx).ErrorContext(ctx, "cascade failed",
		slog.String("operation", op),
		slog.String("id", id),
		slog.Any("error", err),
	)
	s.metrics.CascadeRollbacks.Add(ctx, 1)
	return domain.Fail(domain.ErrStorage, "Failed to update '%s'", id)
}

// replace returns an Action that swaps before for after in st, and back on
// rollback.
func replace[T any](st ports.RecordStore[T], key string, before, after T, desc string) domain.Action {
	swap := func(rec T) error {
		if !st.Update(rec) {
			return fmt.Errorf("%s: %w", key, errWriteMissed)
		}
		return nil
	}
	return appctx.Func{
		Desc: desc,
		Do:   func(context.Context) error { return swap(after) },
		Undo: func(context.Context) error { return swap(before) },
	}
}

func failed(f *domain.Failure) (domain.Result, error) {
	return domain.ResultOf(f), f
}

func stateLabel(complete bool) string {
	if complete {
		return "complete"
	}
	return "incomplete"
}

func describeTask(t task.Task) string {
	if t.IsComplete {
		return "complete task " + t.ID
	}
	return "reopen task " + t.ID
}

func taskKey(id string) string          { return "task:" + id }
func tasksKey(phaseID string) string    { return "tasks:" + phaseID }
func phaseKey(id string) string         { return "phase:" + id }
func phasesKey(startupID string) string { return "phases:" + startupID }
