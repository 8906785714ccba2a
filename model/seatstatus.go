package model

import "encoding/json"

// SeatStatus is the backend's authoritative view of taken seats for one show.
// Booked seats are permanently gone; locked seats are held by another
// in-flight booking until its lock expires. The client treats the union as
// unavailable and never distinguishes beyond display.
type SeatStatus struct {
	BookedSeatIDs []int
	LockedSeatIDs []int
}

func (s *SeatStatus) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.BookedSeatIDs = pickIntList(obj, "bookedSeatIds", "booked_seat_ids", "booked")
	s.LockedSeatIDs = pickIntList(obj, "lockedSeatIds", "locked_seat_ids", "locked")
	return nil
}
