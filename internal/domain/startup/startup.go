// Package startup defines the Startup entity, the root of a phase hierarchy.
package startup

// Startup owns zero or more phases.
type Startup struct {
	ID   string
	Name string
}

// RecordID returns the store identifier.
func (s Startup) RecordID() string { return s.ID }

// WithID returns a copy of s carrying the given identifier.
func (s Startup) WithID(id string) Startup {
	s.ID = id
	return s
}
