// Package phase defines the Phase entity and the seqNo ordering rules that
// drive phase locking.
package phase

// Phase is one ordered step of a startup. SeqNo is unique per startup.
//
// Locked is true while the phase with the next-lower SeqNo exists and is
// incomplete. IsComplete is stored state, set when every task of the phase
// is complete and cleared when any task is reopened.
type Phase struct {
	ID          string
	StartupID   string
	Title       string
	Description string
	SeqNo       int
	IsComplete  bool
	Locked      bool
}

// RecordID returns the store identifier.
func (p Phase) RecordID() string { return p.ID }

// WithID returns a copy of p carrying the given identifier.
func (p Phase) WithID(id string) Phase {
	p.ID = id
	return p
}

// Input holds the caller-supplied fields of a new phase. IsComplete and
// Locked are derived by the tracker at insertion.
type Input struct {
	StartupID   string
	SeqNo       int
	Title       string
	Description string
}

// Filter holds optional exact-match criteria for querying phases.
// Nil fields mean "no filter" for that dimension.
type Filter struct {
	StartupID  *string
	SeqNo      *int
	Title      *string
	IsComplete *bool
	Locked     *bool
}

// Matches reports whether p satisfies every set field of f.
func (f Filter) Matches(p Phase) bool {
	if f.StartupID != nil && *f.StartupID != p.StartupID {
		return false
	}
	if f.SeqNo != nil && *f.SeqNo != p.SeqNo {
		return false
	}
	if f.Title != nil && *f.Title != p.Title {
		return false
	}
	if f.IsComplete != nil && *f.IsComplete != p.IsComplete {
		return false
	}
	if f.Locked != nil && *f.Locked != p.Locked {
		return false
	}
	return true
}

// OfStartup returns a Filter matching every phase of the given startup.
func OfStartup(startupID string) Filter {
	return Filter{StartupID: &startupID}
}

// WithSeqNo returns a Filter matching the phase of a startup at seqNo.
func WithSeqNo(startupID string, seqNo int) Filter {
	return Filter{StartupID: &startupID, SeqNo: &seqNo}
}
