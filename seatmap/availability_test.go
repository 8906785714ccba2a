package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviebook-cli/model"
)

func TestReplaceSwapsWholesale(t *testing.T) {
	avail := NewAvailability()
	avail.Replace(model.SeatStatus{BookedSeatIDs: []int{1, 2}, LockedSeatIDs: []int{3}})

	assert.True(t, avail.IsBooked(1))
	assert.True(t, avail.IsLocked(3))
	assert.True(t, avail.IsUnavailable(2))
	assert.True(t, avail.IsUnavailable(3))
	assert.False(t, avail.IsUnavailable(4))

	// a later fetch fully replaces, nothing is merged
	avail.Replace(model.SeatStatus{BookedSeatIDs: []int{9}})

	assert.False(t, avail.IsUnavailable(1))
	assert.False(t, avail.IsUnavailable(3))
	assert.True(t, avail.IsBooked(9))
	assert.Equal(t, 1, avail.BookedCount())
	assert.Equal(t, 0, avail.LockedCount())
}

func TestEmptyAvailabilityIsAllOpen(t *testing.T) {
	avail := NewAvailability()
	assert.False(t, avail.IsUnavailable(1))
	assert.False(t, avail.IsBooked(1))
	assert.False(t, avail.IsLocked(1))

	var nilAvail *Availability
	assert.False(t, nilAvail.IsUnavailable(1))
	assert.Equal(t, 0, nilAvail.BookedCount())
}
