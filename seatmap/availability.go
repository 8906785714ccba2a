package seatmap

import (
	mapset "github.com/deckarep/golang-set/v2"

	"moviebook-cli/model"
)

// Availability is the reconciled set of seats the backend reports as taken.
// Replace semantics: every status fetch swaps both sets wholesale, since the
// backend is authoritative and values change between polls. A failed or
// non-JSON fetch leaves the sets empty (fail-open); the booking-create call
// remains the final arbiter for such seats.
type Availability struct {
	booked mapset.Set[int]
	locked mapset.Set[int]
}

func NewAvailability() *Availability {
	return &Availability{
		booked: mapset.NewSet[int](),
		locked: mapset.NewSet[int](),
	}
}

// Replace swaps in a freshly fetched status, discarding previous state.
func (a *Availability) Replace(status model.SeatStatus) {
	booked := mapset.NewSet[int]()
	for _, id := range status.BookedSeatIDs {
		booked.Add(id)
	}
	locked := mapset.NewSet[int]()
	for _, id := range status.LockedSeatIDs {
		locked.Add(id)
	}
	a.booked = booked
	a.locked = locked
}

// IsUnavailable reports membership in booked ∪ locked.
func (a *Availability) IsUnavailable(seatID int) bool {
	if a == nil {
		return false
	}
	return a.booked.Contains(seatID) || a.locked.Contains(seatID)
}

func (a *Availability) IsBooked(seatID int) bool {
	return a != nil && a.booked.Contains(seatID)
}

func (a *Availability) IsLocked(seatID int) bool {
	return a != nil && a.locked.Contains(seatID)
}

func (a *Availability) BookedCount() int {
	if a == nil {
		return 0
	}
	return a.booked.Cardinality()
}

func (a *Availability) LockedCount() int {
	if a == nil {
		return 0
	}
	return a.locked.Cardinality()
}
