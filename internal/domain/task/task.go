// Package task defines the Task entity. Completion is user-toggled state;
// toggling drives the completion cascade of the owning phase.
package task

// Task belongs to exactly one phase.
type Task struct {
	ID          string
	PhaseID     string
	Title       string
	Description string
	IsComplete  bool
}

// RecordID returns the store identifier.
func (t Task) RecordID() string { return t.ID }

// WithID returns a copy of t carrying the given identifier.
func (t Task) WithID(id string) Task {
	t.ID = id
	return t
}

// Input holds the caller-supplied fields of a new task.
type Input struct {
	PhaseID     string
	Title       string
	Description string
}

// Filter holds optional exact-match criteria for querying tasks.
// Nil fields mean "no filter" for that dimension.
type Filter struct {
	PhaseID    *string
	Title      *string
	IsComplete *bool
}

// Matches reports whether t satisfies every set field of f.
func (f Filter) Matches(t Task) bool {
	if f.PhaseID != nil && *f.PhaseID != t.PhaseID {
		return false
	}
	if f.Title != nil && *f.Title != t.Title {
		return false
	}
	if f.IsComplete != nil && *f.IsComplete != t.IsComplete {
		return false
	}
	return true
}

// OfPhase returns a Filter matching every task of the given phase.
func OfPhase(phaseID string) Filter {
	return Filter{PhaseID: &phaseID}
}
