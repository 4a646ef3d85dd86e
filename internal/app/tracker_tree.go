package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/phase-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// defaultTreeWorkers bounds the goroutines assembling startup trees.
const defaultTreeWorkers = 4

// GetStartupTree returns every startup with its phases ordered by SeqNo and
// each phase's tasks and progress. Startups are assembled concurrently;
// the result keeps insertion order.
//
// The tree is read under the engine lock, so it never shows a cascade
// half applied.
func (s *TrackerService) GetStartupTree(ctx context.Context) ([]ports.StartupTree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startups := s.startups.GetAll()

	results := fanout.Run(ctx, s.treeWorkers, startups, func(ctx context.Context, st startup.Startup) (ports.StartupTree, error) {
		if err := ctx.Err(); err != nil {
			return ports.StartupTree{}, err
		}
		return s.buildTree(st), nil
	})

	trees, err := fanout.Values(results)
	if err != nil {
		failed := startups[len(trees)].ID
		s.log(ctx).ErrorContext(ctx, "failed to assemble startup tree",
			slog.String("operation", "GetStartupTree"),
			slog.String("startup_id", failed),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("assembling startup %s: %w", failed, err)
	}
	return trees, nil
}

func (s *TrackerService) buildTree(st startup.Startup) ports.StartupTree {
	phases := s.phases.Where(phase.OfStartup(st.ID))
	phase.SortBySeqNo(phases)

	tree := ports.StartupTree{
		Startup: st,
		Phases:  make([]ports.PhaseTree, 0, len(phases)),
	}
	for _, p := range phases {
		tasks := s.tasks.Where(task.OfPhase(p.ID))
		tree.Phases = append(tree.Phases, ports.PhaseTree{
			Phase:    p,
			Progress: task.Progress(tasks),
			Tasks:    tasks,
		})
	}
	return tree
}
