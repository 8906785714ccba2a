package cmd

import (
	"testing"
	"time"

	"moviebook-cli/model"
)

func TestPayWithin(t *testing.T) {
	now := time.Now()
	pending := model.Booking{ID: "10", Status: model.StatusPendingPayment}

	timers := map[string]time.Time{"10": now.Add(-100 * time.Second)}
	if got := payWithin(pending, timers, now); got != "8:20" {
		t.Errorf("payWithin = %q", got)
	}

	if got := payWithin(pending, map[string]time.Time{}, now); got != "unknown" {
		t.Errorf("payWithin without timer = %q", got)
	}

	timers = map[string]time.Time{"10": now.Add(-time.Hour)}
	if got := payWithin(pending, timers, now); got != "likely expired" {
		t.Errorf("payWithin expired = %q", got)
	}

	confirmed := model.Booking{ID: "11", Status: model.StatusConfirmed}
	if got := payWithin(confirmed, nil, now); got != "" {
		t.Errorf("payWithin confirmed = %q", got)
	}
}
