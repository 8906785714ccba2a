// Package booking holds the client-side booking rules: the pending-booking
// guard that limits a user to one unpaid booking per show, and the assembly
// of booking-create requests from a seat selection.
package booking

import "moviebook-cli/model"

// FindPending returns the first of the user's bookings that is awaiting
// payment for the given show, or nil. Show ids are compared on their
// canonical string form since endpoints disagree on number vs string.
//
// A non-nil result blocks creating another booking for that show until the
// existing one is paid, cancelled or expires server-side; resolving it is
// the bookings screen's job, this only gates.
func FindPending(bookings []model.Booking, showID string) *model.Booking {
	for i := range bookings {
		b := &bookings[i]
		if b.IsPending() && model.SameID(b.ShowID, showID) {
			return b
		}
	}
	return nil
}
