package chart

import "iter"

// Entry pairs a chart with its identifier and classification.
type Entry struct {
	ID    string
	Chart Chart
	Kind  Kind
}

// Set is an insertion-ordered mapping from chart identifier to chart.
// Iteration order is placement order.
type Set struct {
	order []string
	byID  map[string]*Entry
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{byID: make(map[string]*Entry)}
}

// Put adds c under id. Replacing an existing id keeps its original position.
func (s *Set) Put(id string, c Chart) {
	if e, ok := s.byID[id]; ok {
		e.Chart, e.Kind = c, Classify(c)
		return
	}
	s.order = append(s.order, id)
	s.byID[id] = &Entry{ID: id, Chart: c, Kind: Classify(c)}
}

// Get returns the chart stored under id.
func (s *Set) Get(id string) (Chart, bool) {
	e, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return e.Chart, true
}

// Has reports whether id is present.
func (s *Set) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of charts. A nil set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IDs returns the identifiers in insertion order.
func (s *Set) IDs() []string {
	return append([]string(nil), s.order...)
}

// Entries yields every entry in insertion order.
func (s *Set) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if s == nil {
			return
		}
		for _, id := range s.order {
			if !yield(*s.byID[id]) {
				return
			}
		}
	}
}

// All yields id and chart pairs in insertion order.
func (s *Set) All() iter.Seq2[string, Chart] {
	return func(yield func(string, Chart) bool) {
		for e := range s.Entries() {
			if !yield(e.ID, e.Chart) {
				return
			}
		}
	}
}

// Of yields the entries of the given kind in insertion order.
func (s *Set) Of(k Kind) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for e := range s.Entries() {
			if e.Kind == k && !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of charts of the given kind.
func (s *Set) Count(k Kind) int {
	n := 0
	for range s.Of(k) {
		n++
	}
	return n
}
