// Package store holds the authoritative in-memory collections of the
// back-office: a generic ordered RecordStore, its parcel and passenger
// specializations, and the persisted SettingsStore.
//
// Every mutation bumps the store version and notifies subscribers
// synchronously, after the collection is updated and before the mutating
// call returns. Observers may read the store from inside their callback.
package store

import (
	"colis-service/internal/domain"
	"log/slog"
	"slices"
	"sync"
)

// Record is implemented by every entity held in a RecordStore.
type Record interface {
	RecordID() int64
}

type ChangeKind string

const (
	ChangeLoaded  ChangeKind = "loaded"
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Change describes one applied mutation. Record is the stored record after
// a create or update and the removed record after a delete; it is the zero
// value for loads. Version is the store version right after the mutation.
type Change[T Record] struct {
	Store   string
	Kind    ChangeKind
	ID      int64
	Record  T
	Version uint64
}

type observer[T Record] struct {
	id int
	fn func(Change[T])
}

// RecordStore is an ordered, newest-first collection of records of one
// type. A single mutex guards the read-modify sequence of every mutation,
// so id assignment and insertion are observed as one atomic step.
type RecordStore[T Record] struct {
	name   string
	logger *slog.Logger

	mu      sync.RWMutex
	records []T
	version uint64

	obsMu     sync.Mutex
	observers []observer[T]
	nextObsID int
}

func NewRecordStore[T Record](opts ...Option) *RecordStore[T] {
	cfg := newConfig(opts)
	return &RecordStore[T]{
		name:    cfg.name,
		logger:  cfg.logger,
		records: []T{},
	}
}

// Name is the label used in change notifications and logs.
func (s *RecordStore[T]) Name() string { return s.name }

// Load replaces the whole collection. Records are kept as supplied, in
// the supplied order; nil means empty.
func (s *RecordStore[T]) Load(records []T) {
	s.mu.Lock()
	s.records = slices.Clone(records)
	if s.records == nil {
		s.records = []T{}
	}
	s.version++
	ch := Change[T]{Store: s.name, Kind: ChangeLoaded, Version: s.version}
	n := len(s.records)
	s.mu.Unlock()

	s.logger.Debug("records loaded", slog.String("store", s.name), slog.Int("count", n))
	s.notify(ch)
}

// All returns a snapshot of the records in store order.
func (s *RecordStore[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Snapshot returns the records together with the version they belong to.
func (s *RecordStore[T]) Snapshot() ([]T, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), s.version
}

// Version increases by one on every mutation.
func (s *RecordStore[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *RecordStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *RecordStore[T]) FindByID(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	var zero T
	return zero, false
}

// Filter returns the records matching keep, in store order.
func (s *RecordStore[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Insert assigns the next id (max of the live ids plus one), builds the
// record with it and puts it at the front of the collection.
func (s *RecordStore[T]) Insert(build func(id int64) T) T {
	s.mu.Lock()
	ids := make([]int64, len(s.records))
	for i, r := range s.records {
		ids[i] = r.RecordID()
	}
	rec := build(domain.NextID(ids))
	s.records = slices.Insert(s.records, 0, rec)
	s.version++
	ch := Change[T]{Store: s.name, Kind: ChangeCreated, ID: rec.RecordID(), Record: rec, Version: s.version}
	s.mu.Unlock()

	s.notify(ch)
	return rec
}

// Modify applies mutate to a copy of the record with the given id and
// stores it back at the same position. It reports whether id was found.
func (s *RecordStore[T]) Modify(id int64, mutate func(*T)) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	rec := s.records[i]
	mutate(&rec)
	s.records[i] = rec
	s.version++
	ch := Change[T]{Store: s.name, Kind: ChangeUpdated, ID: id, Record: rec, Version: s.version}
	s.mu.Unlock()

	s.notify(ch)
	return true
}

// Delete removes the record with the given id and reports whether a
// record was removed.
func (s *RecordStore[T]) Delete(id int64) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.records[i]
	s.records = slices.Delete(s.records, i, i+1)
	s.version++
	ch := Change[T]{Store: s.name, Kind: ChangeDeleted, ID: id, Record: removed, Version: s.version}
	s.mu.Unlock()

	s.notify(ch)
	return true
}

// Subscribe registers fn for every subsequent change and returns a func
// that unregisters it. Observers run in subscription order on the
// goroutine that performed the mutation.
func (s *RecordStore[T]) Subscribe(fn func(Change[T])) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(o observer[T]) bool { return o.id == id })
	}
}

// notify is called with s.mu released so observers can read the store.
func (s *RecordStore[T]) notify(ch Change[T]) {
	s.obsMu.Lock()
	obs := slices.Clone(s.observers)
	s.obsMu.Unlock()

	for _, o := range obs {
		o.fn(ch)
	}
}

// indexOf expects s.mu to be held.
func (s *RecordStore[T]) indexOf(id int64) int {
	return slices.IndexFunc(s.records, func(r T) bool { return r.RecordID() == id })
}
