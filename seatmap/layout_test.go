package seatmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatIDDerivation(t *testing.T) {
	layout := DefaultLayout()

	assert.Equal(t, 1, layout.SeatID(0, 1))
	assert.Equal(t, 14, layout.SeatID(0, 14))
	assert.Equal(t, 15, layout.SeatID(1, 1))
	// row L is index 11: 11*14 + 0 + 1
	assert.Equal(t, 155, layout.SeatID(11, 1))
	assert.Equal(t, layout.TotalSeats(), layout.SeatID(layout.Rows-1, layout.SeatsPerRow))
}

func TestLabelParseLabelRoundTrip(t *testing.T) {
	layout := DefaultLayout()

	for rowIndex := 0; rowIndex < layout.Rows; rowIndex++ {
		for seatNumber := 1; seatNumber <= layout.SeatsPerRow; seatNumber++ {
			label := layout.Label(rowIndex, seatNumber)
			gotRow, gotSeat, ok := layout.ParseLabel(label)
			assert.True(t, ok, "label %s must parse", label)
			assert.Equal(t, rowIndex, gotRow)
			assert.Equal(t, seatNumber, gotSeat)
		}
	}
}

func TestParseLabelRejectsOutOfBounds(t *testing.T) {
	layout := NewLayout(12, 14, 4)

	for _, label := range []string{"M-1", "A-15", "A-0", "a-1", "AA-1", "A1", "", "A-x"} {
		_, _, ok := layout.ParseLabel(label)
		assert.False(t, ok, "label %q must be rejected", label)
	}
}

func TestPremiumRowsAreTheBackRows(t *testing.T) {
	layout := NewLayout(12, 14, 4)

	for rowIndex := 0; rowIndex < layout.Rows; rowIndex++ {
		want := rowIndex >= 8
		assert.Equal(t, want, layout.IsPremium(rowIndex), "row %s", layout.RowLetter(rowIndex))
	}
	assert.Equal(t, "REGULAR", layout.SeatType(0))
	assert.Equal(t, "PREMIUM", layout.SeatType(11))
}

func TestNewLayoutClamps(t *testing.T) {
	layout := NewLayout(40, 0, 99)
	assert.Equal(t, 26, layout.Rows)
	assert.Equal(t, 1, layout.SeatsPerRow)
	assert.Equal(t, 26, layout.PremiumRows)

	layout = NewLayout(0, 10, -1)
	assert.Equal(t, 1, layout.Rows)
	assert.Equal(t, 0, layout.PremiumRows)
}

func TestRowLetters(t *testing.T) {
	layout := DefaultLayout()
	assert.Equal(t, "A", layout.RowLetter(0))
	assert.Equal(t, "L", layout.RowLetter(11))
	assert.Equal(t, fmt.Sprintf("%s-%d", "C", 7), layout.Label(2, 7))
}
