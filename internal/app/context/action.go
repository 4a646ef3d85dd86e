package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
)

// actionItem is one step of the commit queue.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

type singleAction struct {
	action domain.Action
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// actionGroup holds writes with no ordering between them, such as
// re-locking every later phase of a startup. Members run concurrently; the
// first failure cancels the others and undoes the members that finished.
type actionGroup struct {
	actions []domain.Action
	done    []bool
}

func (g *actionGroup) execute(ctx context.Context) error {
	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.done = make([]bool, len(g.actions))
	errs := make([]error, len(g.actions))

	var wg sync.WaitGroup
	for i, a := range g.actions {
		wg.Go(func() {
			if err := a.Execute(groupCtx); err != nil {
				errs[i] = err
				cancel()
				return
			}
			g.done[i] = true
		})
	}
	wg.Wait()

	if err := groupErr(errs); err != nil {
		g.undo(ctx)
		return err
	}
	return nil
}

// groupErr picks the error that caused the group to fail, skipping the
// cancellations it triggered in the other members.
func groupErr(errs []error) error {
	var first error
	for _, err := range errs {
		switch {
		case err == nil:
		case !errors.Is(err, context.Canceled):
			return err
		case first == nil:
			first = err
		}
	}
	return first
}

// rollback undoes the members that completed. Failures are logged by undo,
// so the group never reports one.
func (g *actionGroup) rollback(ctx context.Context) error {
	g.undo(ctx)
	return nil
}

func (g *actionGroup) undo(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for i := len(g.actions) - 1; i >= 0; i-- {
		if i >= len(g.done) || !g.done[i] {
			continue
		}
		if err := g.actions[i].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "group member rollback failed",
				slog.String("operation", "appctx.group.rollback"),
				slog.String("action", g.actions[i].Description()),
				slog.Any("error", err),
			)
		}
	}
}

func (g *actionGroup) description() string {
	switch len(g.actions) {
	case 0:
		return "no writes"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("%d writes: %s, ...", len(g.actions), g.actions[0].Description())
	}
}

// AddAction queues a single write for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&singleAction{action: action})
}

// AddGroup queues writes that Commit runs concurrently as one step. An
// empty call queues nothing.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	if len(actions) == 0 {
		return rc.enqueue(nil)
	}
	return rc.enqueue(&actionGroup{actions: actions})
}

// enqueue appends item unless the context is committed. A nil item only
// checks the committed flag.
func (rc *RequestContext) enqueue(item actionItem) error {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	if item != nil {
		rc.items = append(rc.items, item)
	}
	return nil
}

// Func is a domain.Action assembled from closures. Undo may be nil for
// writes that need no compensation.
type Func struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

func (f Func) Execute(ctx context.Context) error { return f.Do(ctx) }

func (f Func) Rollback(ctx context.Context) error {
	if f.Undo == nil {
		return nil
	}
	return f.Undo(ctx)
}

func (f Func) Description() string { return f.Desc }
