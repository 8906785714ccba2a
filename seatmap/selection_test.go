package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviebook-cli/model"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection(DefaultLayout())
	avail := NewAvailability()

	assert.True(t, sel.Toggle("A-1", avail))
	assert.True(t, sel.Has("A-1"))
	assert.Equal(t, 1, sel.Count())

	assert.True(t, sel.Toggle("A-1", avail))
	assert.False(t, sel.Has("A-1"))
	assert.Equal(t, 0, sel.Count())
}

func TestToggleUnavailableSeatIsNoOp(t *testing.T) {
	sel := NewSelection(DefaultLayout())
	avail := NewAvailability()
	avail.Replace(model.SeatStatus{BookedSeatIDs: []int{5}, LockedSeatIDs: []int{7}})

	assert.False(t, sel.Toggle("A-5", avail), "booked seat")
	assert.False(t, sel.Toggle("A-7", avail), "locked seat")
	assert.Equal(t, 0, sel.Count())
}

func TestToggleSelectedSeatRemovesEvenIfNowUnavailable(t *testing.T) {
	sel := NewSelection(DefaultLayout())
	avail := NewAvailability()

	assert.True(t, sel.Toggle("A-5", avail))
	avail.Replace(model.SeatStatus{BookedSeatIDs: []int{5}})

	assert.True(t, sel.Toggle("A-5", avail))
	assert.False(t, sel.Has("A-5"))
}

func TestToggleRejectsBadLabels(t *testing.T) {
	sel := NewSelection(DefaultLayout())
	avail := NewAvailability()

	assert.False(t, sel.Toggle("Z-99", avail))
	assert.False(t, sel.Toggle("garbage", avail))
	assert.Equal(t, 0, sel.Count())
}

func TestLabelsAndSeatIDsAreSorted(t *testing.T) {
	sel := NewSelection(DefaultLayout())
	avail := NewAvailability()

	sel.Toggle("B-2", avail)
	sel.Toggle("A-9", avail)
	sel.Toggle("A-10", avail)

	// string sort: A-10 before A-9
	assert.Equal(t, []string{"A-10", "A-9", "B-2"}, sel.Labels())
	assert.Equal(t, []int{10, 9, 16}, sel.SeatIDs())
}

func TestClear(t *testing.T) {
	sel := NewSelection(DefaultLayout())
	avail := NewAvailability()

	sel.Toggle("A-1", avail)
	sel.Toggle("L-1", avail)
	sel.Clear()

	assert.Equal(t, 0, sel.Count())
	assert.Empty(t, sel.Labels())
}
