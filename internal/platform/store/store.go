// Package store provides a generic, in-memory record container keyed by
// string identifiers.
//
// Records are kept in insertion order. Identifiers handed out by Insert
// come from a monotonic counter and are never reused, even after Delete.
package store

import (
	"errors"
	"strconv"
	"sync"
)

// ErrUninitialized is returned by Insert on a zero-value Store.
var ErrUninitialized = errors.New("store: not initialized")

// Record is a value carrying its own identifier. WithID returns a copy of
// the record with the identifier replaced.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// Matcher selects records for Where. Implementations are closed, typed
// filters where unset fields impose no constraint.
type Matcher[T any] interface {
	Matches(T) bool
}

// Store holds records of one type. It is safe for concurrent use.
type Store[T Record[T]] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
	next    int
	ready   bool
}

// New creates a Store seeded with initial. Seeded identifiers are kept as
// given. The first generated identifier is the larger of the number of
// seeded records and one past the highest numeric seeded identifier.
func New[T Record[T]](initial ...T) *Store[T] {
	s := &Store[T]{
		records: make(map[string]T, len(initial)),
		order:   make([]string, 0, len(initial)),
		ready:   true,
	}
	for _, rec := range initial {
		id := rec.RecordID()
		if _, dup := s.records[id]; !dup {
			s.order = append(s.order, id)
		}
		s.records[id] = rec
		if n, err := strconv.Atoi(id); err == nil && n+1 > s.next {
			s.next = n + 1
		}
	}
	if len(s.order) > s.next {
		s.next = len(s.order)
	}
	return s
}

// Insert assigns the next identifier to rec, stores it, and returns the
// stored copy.
func (s *Store[T]) Insert(rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		var zero T
		return zero, ErrUninitialized
	}

	id := strconv.Itoa(s.next)
	for {
		if _, taken := s.records[id]; !taken {
			break
		}
		s.next++
		id = strconv.Itoa(s.next)
	}
	s.next++

	stored := rec.WithID(id)
	s.records[id] = stored
	s.order = append(s.order, id)
	return stored, nil
}

// Get returns the record with the given identifier. A missing record is
// reported through the boolean, never as an error.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// GetAll returns every record in insertion order.
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]T, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.records[id])
	}
	return all
}

// Where returns the records accepted by m, in insertion order. The result
// is empty, not nil, when nothing matches.
func (s *Store[T]) Where(m Matcher[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0)
	for _, id := range s.order {
		if rec := s.records[id]; m.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Update replaces the stored record that has rec's identifier. It reports
// false, and changes nothing, when no such record exists.
func (s *Store[T]) Update(rec T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := rec.RecordID()
	if _, ok := s.records[id]; !ok {
		return false
	}
	s.records[id] = rec
	return true
}

// Delete removes the record with the given identifier. Deleting a missing
// record is not an error; Delete always reports true.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return true
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Ready reports whether the store was built by New and accepts inserts.
func (s *Store[T]) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ready
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
