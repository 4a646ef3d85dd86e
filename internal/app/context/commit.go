package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
)

const tracerName = "github.com/jsamuelsen11/phase-tracker/internal/app/context"

// Commit runs the queued items in insertion order. When an item fails, the
// items that ran before it are rolled back newest first and the failure is
// returned prefixed with the item's description. Rollback errors are only
// logged.
//
// Commit can run once; later calls return ErrAlreadyCommitted whatever the
// first outcome was.
func (rc *RequestContext) Commit(ctx context.Context) error {
	items, err := rc.seal()
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "appctx.Commit",
		trace.WithAttributes(attribute.Int("appctx.items", len(items))))
	defer span.End()

	log := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))

	for i, item := range items {
		log.DebugContext(ctx, "executing write",
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.description()),
		)
		err := item.execute(ctx)
		if err == nil {
			continue
		}

		log.ErrorContext(ctx, "write failed, rolling back",
			slog.Int("failed_step", i+1),
			slog.String("action", item.description()),
			slog.Any("error", err),
		)
		undo(ctx, log, items[:i])

		span.RecordError(err)
		span.SetStatus(codes.Error, "rolled back")
		span.SetAttributes(attribute.Int("appctx.rolled_back", i))
		return fmt.Errorf("executing %s: %w", item.description(), err)
	}
	return nil
}

// seal marks the context committed and hands back the queue, which can no
// longer grow.
func (rc *RequestContext) seal() ([]actionItem, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	return rc.items, nil
}

// undo rolls back done newest first.
func undo(ctx context.Context, log *slog.Logger, done []actionItem) {
	for i := len(done) - 1; i >= 0; i-- {
		step := slog.Group("rollback",
			slog.Int("step", i+1),
			slog.String("action", done[i].description()),
		)
		log.InfoContext(ctx, "rolling back write", step)
		if err := done[i].rollback(ctx); err != nil {
			log.ErrorContext(ctx, "rollback failed", step, slog.Any("error", err))
		}
	}
}
