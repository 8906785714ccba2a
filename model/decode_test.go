package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMovieDecodesAliases(t *testing.T) {
	cases := map[string]string{
		"camelCase": `{"id": 3, "title": "Dune", "genre": "SCIFI", "duration": "155 min", "active": true}`,
		"legacy":    `{"movieId": "3", "name": "Dune", "type": "SCIFI", "duration": "155 min"}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var movie Movie
			assert.NoError(t, json.Unmarshal([]byte(payload), &movie))
			assert.Equal(t, "3", movie.ID)
			assert.Equal(t, "Dune", movie.Title)
			assert.Equal(t, "SCIFI", movie.Genre)
			assert.True(t, movie.Active)
		})
	}
}

func TestMovieActiveDefaultsToListed(t *testing.T) {
	var movie Movie
	assert.NoError(t, json.Unmarshal([]byte(`{"id": 1, "title": "Up"}`), &movie))
	assert.True(t, movie.Active)

	assert.NoError(t, json.Unmarshal([]byte(`{"id": 2, "title": "Gone", "active": false}`), &movie))
	assert.False(t, movie.Active)
}

func TestMovieCacheRoundTrip(t *testing.T) {
	in := Movie{ID: "9", Title: "Arrival", Genre: "SCIFI", Active: true}
	payload, err := json.Marshal(in)
	assert.NoError(t, err)

	var out Movie
	assert.NoError(t, json.Unmarshal(payload, &out))
	assert.Equal(t, in, out)
}

func TestShowDecodesAliases(t *testing.T) {
	payload := `{
		"show_id": 42,
		"movieId": "3",
		"start_time": "2026-09-05T19:30:00Z",
		"theatreName": "Audi 2",
		"price": 200,
		"pricePremium": "350"
	}`

	var show Show
	assert.NoError(t, json.Unmarshal([]byte(payload), &show))
	assert.Equal(t, "42", show.ID)
	assert.Equal(t, "3", show.MovieID)
	assert.Equal(t, time.Date(2026, 9, 5, 19, 30, 0, 0, time.UTC), show.StartTime)
	assert.Equal(t, "Audi 2", show.Auditorium)
	assert.Equal(t, 200.0, show.PriceRegular)
	assert.Equal(t, 350.0, show.PricePremium)
}

func TestShowDecodesBareTimestamp(t *testing.T) {
	var show Show
	assert.NoError(t, json.Unmarshal([]byte(`{"id": 1, "startTime": "2026-09-05 19:30:00"}`), &show))
	assert.Equal(t, 2026, show.StartTime.Year())
	assert.True(t, show.EndTime.IsZero())
}

func TestSeatStatusDecodesMixedIDForms(t *testing.T) {
	payload := `{"bookedSeatIds": [5, "6"], "locked": ["7"]}`

	var status SeatStatus
	assert.NoError(t, json.Unmarshal([]byte(payload), &status))
	assert.Equal(t, []int{5, 6}, status.BookedSeatIDs)
	assert.Equal(t, []int{7}, status.LockedSeatIDs)
}

func TestSeatStatusEmptyObject(t *testing.T) {
	var status SeatStatus
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &status))
	assert.Empty(t, status.BookedSeatIDs)
	assert.Empty(t, status.LockedSeatIDs)
}

func TestBookingDecodesSeats(t *testing.T) {
	payload := `{
		"bookingId": 10,
		"showId": 42,
		"total_amount": "550",
		"status": "PENDING_PAYMENT",
		"seats": [
			{"seatId": 1, "rowLabel": "A", "seatNumber": 1, "seatType": "REGULAR", "price": 200},
			{"seat_id": "155", "row": "L", "number": "1", "type": "PREMIUM", "price": 350}
		]
	}`

	var b Booking
	assert.NoError(t, json.Unmarshal([]byte(payload), &b))
	assert.Equal(t, "10", b.ID)
	assert.Equal(t, "42", b.ShowID)
	assert.Equal(t, 550.0, b.TotalAmount)
	assert.True(t, b.IsPending())

	if assert.Len(t, b.Seats, 2) {
		assert.Equal(t, "A-1", b.Seats[0].Label())
		assert.Equal(t, 155, b.Seats[1].SeatID)
		assert.Equal(t, "L-1", b.Seats[1].Label())
	}
}

func TestBookingSeatLabelFallbacks(t *testing.T) {
	assert.Equal(t, "B-3", BookingSeat{RawLabel: "B-3"}.Label())
	assert.Equal(t, "C-4", BookingSeat{RowLabel: "C", SeatNumber: 4}.Label())
	assert.Equal(t, "Seat 9", BookingSeat{SeatNumber: 9}.Label())
	assert.Equal(t, "Seat", BookingSeat{}.Label())
}

func TestSameID(t *testing.T) {
	assert.True(t, SameID("42", "42"))
	assert.True(t, SameID(" 42 ", "42"))
	assert.False(t, SameID("42", "43"))
	assert.False(t, SameID("", ""))
	assert.False(t, SameID("42", ""))
}

func TestPickIDNullAndMissing(t *testing.T) {
	var show Show
	assert.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &show))
	assert.Equal(t, "", show.ID)
}
