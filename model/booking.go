package model

import (
	"encoding/json"
	"fmt"
)

// Booking lifecycle as owned by the backend. The client only ever observes
// status by re-fetching; it never flips a status locally.
const (
	StatusPendingPayment = "PENDING_PAYMENT"
	StatusConfirmed      = "CONFIRMED"
	StatusCancelled      = "CANCELLED"
	StatusExpired        = "EXPIRED"
)

// LockTTLSeconds mirrors the backend's pending-booking TTL. Referenced for
// the countdown display only; expiry itself is enforced server-side.
const LockTTLSeconds = 600

type Booking struct {
	ID          string
	ShowID      string
	TotalAmount float64
	Status      string
	Seats       []BookingSeat
}

type BookingSeat struct {
	SeatID     int
	RowLabel   string
	SeatNumber int
	SeatType   string
	Price      float64
	RawLabel   string
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	b.ID = pickID(obj, "id", "bookingId", "booking_id")
	b.ShowID = pickID(obj, "showId", "show_id")
	b.TotalAmount = pickFloat(obj, "totalAmount", "total_amount", "amount")
	b.Status = pickString(obj, "status")
	if raw, ok := firstRaw(obj, "seats"); ok {
		if err := json.Unmarshal(raw, &b.Seats); err != nil {
			return err
		}
	}
	return nil
}

func (b Booking) IsPending() bool {
	return b.Status == StatusPendingPayment
}

func (s *BookingSeat) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.SeatID = pickInt(obj, "seatId", "seat_id", "id")
	s.RowLabel = pickString(obj, "rowLabel", "row_label", "row")
	s.SeatNumber = pickInt(obj, "seatNumber", "seat_number", "number")
	s.SeatType = pickString(obj, "seatType", "seat_type", "type")
	s.Price = pickFloat(obj, "price")
	s.RawLabel = pickString(obj, "label", "seatLabel", "seat_label")
	return nil
}

// Label resolves a display label for the seat, falling back through the
// variants different backend versions emit.
func (s BookingSeat) Label() string {
	if s.RawLabel != "" {
		return s.RawLabel
	}
	if s.RowLabel != "" && s.SeatNumber > 0 {
		return fmt.Sprintf("%s-%d", s.RowLabel, s.SeatNumber)
	}
	if s.SeatNumber > 0 {
		return fmt.Sprintf("Seat %d", s.SeatNumber)
	}
	return "Seat"
}
