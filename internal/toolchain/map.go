// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map is a set of target overrides keyed by triple. Iteration is always in
// lexicographic triple order, independent of insertion order.
// The zero value is not usable; create one with NewMap.
type Map struct {
	entries map[Triple]Override
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[Triple]Override)}
}

// Set stores a copy of o under t and reports whether an earlier value was
// replaced.
func (m *Map) Set(t Triple, o Override) (replaced bool) {
	_, replaced = m.entries[t]
	m.entries[t] = o.Clone()
	return replaced
}

// Get returns a copy of the override stored under t.
func (m *Map) Get(t Triple) (Override, bool) {
	o, ok := m.entries[t]
	if !ok {
		return Override{}, false
	}
	return o.Clone(), true
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Triples returns every key in lexicographic order.
func (m *Map) Triples() []Triple {
	triples := maps.Keys(m.entries)
	slices.Sort(triples)
	return triples
}

// Entries returns copies of every entry in lexicographic triple order.
func (m *Map) Entries() []Entry {
	triples := m.Triples()
	entries := make([]Entry, len(triples))
	for i, t := range triples {
		entries[i] = Entry{Triple: t, Override: m.entries[t].Clone()}
	}
	return entries
}

// Pruned returns a new Map without the entries whose override is empty,
// along with the triples that were dropped (sorted).
func (m *Map) Pruned() (*Map, []Triple) {
	out := NewMap()
	var dropped []Triple
	for _, e := range m.Entries() {
		if e.Override.IsEmpty() {
			dropped = append(dropped, e.Triple)
			continue
		}
		out.entries[e.Triple] = e.Override
	}
	return out, dropped
}
