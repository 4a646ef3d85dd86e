package phase

import (
	"cmp"
	"slices"
)

// Previous returns the phase with the greatest SeqNo strictly below seqNo.
// The list is expected to hold phases of a single startup.
func Previous(phases []Phase, seqNo int) (Phase, bool) {
	var (
		best  Phase
		found bool
	)
	for _, p := range phases {
		if p.SeqNo < seqNo && (!found || p.SeqNo > best.SeqNo) {
			best, found = p, true
		}
	}
	return best, found
}

// HasNext reports whether any phase has a SeqNo strictly above seqNo.
func HasNext(phases []Phase, seqNo int) bool {
	return slices.ContainsFunc(phases, func(p Phase) bool { return p.SeqNo > seqNo })
}

// Next returns the phase with the smallest SeqNo strictly above seqNo.
func Next(phases []Phase, seqNo int) (Phase, bool) {
	var (
		best  Phase
		found bool
	)
	for _, p := range phases {
		if p.SeqNo > seqNo && (!found || p.SeqNo < best.SeqNo) {
			best, found = p, true
		}
	}
	return best, found
}

// Later returns every phase with a SeqNo strictly above seqNo, in ascending
// SeqNo order.
func Later(phases []Phase, seqNo int) []Phase {
	later := make([]Phase, 0, len(phases))
	for _, p := range phases {
		if p.SeqNo > seqNo {
			later = append(later, p)
		}
	}
	SortBySeqNo(later)
	return later
}

// LockedBehind reports whether a phase at seqNo starts locked: its
// predecessor exists and is not complete.
func LockedBehind(phases []Phase, seqNo int) bool {
	prev, ok := Previous(phases, seqNo)
	return ok && !prev.IsComplete
}

// SortBySeqNo sorts phases in place by ascending SeqNo.
func SortBySeqNo(phases []Phase) {
	slices.SortStableFunc(phases, func(a, b Phase) int { return cmp.Compare(a.SeqNo, b.SeqNo) })
}
