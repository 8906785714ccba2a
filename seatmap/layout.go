// Package seatmap models the client-side seat grid for one show: the row
// layout, premium classification, the user's selection and the
// backend-reported availability it is reconciled against.
package seatmap

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRows is a hard limit: rows are labeled with a single letter A..Z and
// multi-letter row labels are not supported.
const maxRows = 26

// Layout is the rows×seats grid convention for a show's auditorium.
// Seat ids are derived from the geometry, so changing SeatsPerRow
// invalidates every previously computed id for the same show.
type Layout struct {
	Rows        int
	SeatsPerRow int
	PremiumRows int
}

// DefaultLayout matches the auditorium convention the booking backend
// assumes: 12 lettered rows of 14 seats with the 4 back rows premium.
func DefaultLayout() Layout {
	return NewLayout(12, 14, 4)
}

// NewLayout clamps rows to the 26-letter limit and premium rows to the row
// count.
func NewLayout(rows int, seatsPerRow int, premiumRows int) Layout {
	if rows > maxRows {
		rows = maxRows
	}
	if rows < 1 {
		rows = 1
	}
	if seatsPerRow < 1 {
		seatsPerRow = 1
	}
	if premiumRows < 0 {
		premiumRows = 0
	}
	if premiumRows > rows {
		premiumRows = rows
	}
	return Layout{Rows: rows, SeatsPerRow: seatsPerRow, PremiumRows: premiumRows}
}

// IsPremium reports whether the row is one of the premium back rows.
func (l Layout) IsPremium(rowIndex int) bool {
	return rowIndex >= l.Rows-l.PremiumRows
}

// SeatID derives the 1-based integer id for a seat. The mapping to labels is
// a bijection for the lifetime of one layout.
func (l Layout) SeatID(rowIndex int, seatNumber int) int {
	return rowIndex*l.SeatsPerRow + (seatNumber - 1) + 1
}

func (l Layout) RowLetter(rowIndex int) string {
	return string(rune('A' + rowIndex))
}

// Label formats the "{RowLetter}-{seatNumber}" form, e.g. "A-1".
func (l Layout) Label(rowIndex int, seatNumber int) string {
	return fmt.Sprintf("%s-%d", l.RowLetter(rowIndex), seatNumber)
}

// ParseLabel is the inverse of Label. ok is false for labels outside the
// layout bounds or not in the "{Letter}-{number}" form.
func (l Layout) ParseLabel(label string) (rowIndex int, seatNumber int, ok bool) {
	row, num, found := strings.Cut(strings.TrimSpace(label), "-")
	if !found || len(row) != 1 {
		return 0, 0, false
	}
	r := row[0]
	if r < 'A' || r > 'Z' {
		return 0, 0, false
	}
	rowIndex = int(r - 'A')
	seatNumber, err := strconv.Atoi(num)
	if err != nil {
		return 0, 0, false
	}
	if rowIndex >= l.Rows || seatNumber < 1 || seatNumber > l.SeatsPerRow {
		return 0, 0, false
	}
	return rowIndex, seatNumber, true
}

// SeatType is the classification string sent in booking requests.
func (l Layout) SeatType(rowIndex int) string {
	if l.IsPremium(rowIndex) {
		return "PREMIUM"
	}
	return "REGULAR"
}

func (l Layout) TotalSeats() int {
	return l.Rows * l.SeatsPerRow
}
