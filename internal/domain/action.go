package domain

import "context"

// Action is one store write of a tracker operation together with its
// compensation. Rollback is only called after a successful Execute.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error
	// Description names the write in logs, e.g. "unlock phase 2".
	Description() string
}

// WriteStager queues writes for an operation. Stage records entity under
// key so later reads in the same operation see it, and defers action to
// the operation's commit.
type WriteStager interface {
	Stage(key string, entity any, action Action) error
}
