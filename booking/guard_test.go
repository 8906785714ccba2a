package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviebook-cli/model"
)

func TestFindPendingMatchesShow(t *testing.T) {
	bookings := []model.Booking{
		{ID: "10", ShowID: "42", Status: model.StatusPendingPayment},
		{ID: "11", ShowID: "43", Status: model.StatusConfirmed},
	}

	got := FindPending(bookings, "42")
	if assert.NotNil(t, got) {
		assert.Equal(t, "10", got.ID)
	}
	assert.Nil(t, FindPending(bookings, "43"), "confirmed booking must not block")
	assert.Nil(t, FindPending(bookings, "44"))
}

func TestFindPendingIgnoresSettledStatuses(t *testing.T) {
	bookings := []model.Booking{
		{ID: "1", ShowID: "7", Status: model.StatusConfirmed},
		{ID: "2", ShowID: "7", Status: model.StatusCancelled},
		{ID: "3", ShowID: "7", Status: model.StatusExpired},
	}
	assert.Nil(t, FindPending(bookings, "7"))
}

func TestFindPendingNormalizesIDForms(t *testing.T) {
	bookings := []model.Booking{
		{ID: "5", ShowID: " 42 ", Status: model.StatusPendingPayment},
	}
	assert.NotNil(t, FindPending(bookings, "42"))
}

func TestFindPendingReturnsFirstMatch(t *testing.T) {
	bookings := []model.Booking{
		{ID: "1", ShowID: "42", Status: model.StatusPendingPayment},
		{ID: "2", ShowID: "42", Status: model.StatusPendingPayment},
	}
	got := FindPending(bookings, "42")
	if assert.NotNil(t, got) {
		assert.Equal(t, "1", got.ID)
	}
}

func TestFindPendingEmptyInputs(t *testing.T) {
	assert.Nil(t, FindPending(nil, "42"))
	assert.Nil(t, FindPending([]model.Booking{}, "42"))
}
