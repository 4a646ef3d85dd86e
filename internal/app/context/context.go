// Package appctx provides the operation-scoped unit of work used by the
// tracker for its completion cascades.
//
// A RequestContext memoizes reads for the lifetime of one tracker operation
// and queues the record writes that operation decides on. Nothing touches a
// store until Commit, which runs the queued writes in order and undoes the
// ones that already ran if a later write fails:
//
//	rc := appctx.New(ctx)
//
//	tasks, err := appctx.GetOrFetch(rc, "tasks:"+phaseID, loadTasks)
//
//	rc.Stage("task:"+t.ID, toggled, updateTask(old, toggled))
//	rc.AddGroup(relockPhase(p3), relockPhase(p4))
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when AddAction, AddGroup, Stage or Commit
// is called on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction,
// AddGroup or Stage.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. The same key was used with two types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext embeds context.Context and adds a read cache plus a queue
// of staged writes. Create one per tracker operation; never share it
// between operations.
type RequestContext struct {
	context.Context

	cacheMu sync.Mutex
	cache   map[string]cacheEntry

	queueMu   sync.Mutex
	items     []actionItem
	committed bool
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. Errors are cached too. A key must always be read with the
// same type T, otherwise ErrTypeMismatch is returned.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.cacheMu.Lock()
	entry, ok := rc.cache[key]
	rc.cacheMu.Unlock()

	if ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.cacheMu.Unlock()

	return val, err
}

// Stage caches entity under key and queues action for Commit, so later
// reads of key within the operation see the pending write.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: entity}
	rc.cacheMu.Unlock()

	rc.items = append(rc.items, &singleAction{action: action})
	return nil
}

// Pending returns the number of queued items. A group counts once.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}
