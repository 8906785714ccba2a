package seatmap

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Selection is the set of seat labels the user has picked in the current
// session. It belongs to exactly one show: the owner clears it whenever the
// active show id changes.
type Selection struct {
	layout Layout
	seats  mapset.Set[string]
}

func NewSelection(layout Layout) *Selection {
	return &Selection{layout: layout, seats: mapset.NewSet[string]()}
}

func (s *Selection) Layout() Layout {
	return s.layout
}

// Toggle adds the label if absent, removes it if present. Toggling a seat
// that is unavailable (or a label outside the layout) is a silent no-op; it
// returns whether the selection changed.
func (s *Selection) Toggle(label string, avail *Availability) bool {
	rowIndex, seatNumber, ok := s.layout.ParseLabel(label)
	if !ok {
		return false
	}
	if s.seats.Contains(label) {
		s.seats.Remove(label)
		return true
	}
	if avail.IsUnavailable(s.layout.SeatID(rowIndex, seatNumber)) {
		return false
	}
	s.seats.Add(label)
	return true
}

func (s *Selection) Has(label string) bool {
	return s.seats.Contains(label)
}

func (s *Selection) Count() int {
	return s.seats.Cardinality()
}

// Labels returns the selected labels sorted for stable display and request
// bodies.
func (s *Selection) Labels() []string {
	labels := s.seats.ToSlice()
	sort.Strings(labels)
	return labels
}

// SeatIDs returns the derived integer ids of the selection, in label order.
func (s *Selection) SeatIDs() []int {
	ids := make([]int, 0, s.seats.Cardinality())
	for _, label := range s.Labels() {
		rowIndex, seatNumber, ok := s.layout.ParseLabel(label)
		if !ok {
			continue
		}
		ids = append(ids, s.layout.SeatID(rowIndex, seatNumber))
	}
	return ids
}

// Clear empties the selection. Called unconditionally on show change.
func (s *Selection) Clear() {
	s.seats = mapset.NewSet[string]()
}
