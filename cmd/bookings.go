package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"moviebook-cli/model"
	"moviebook-cli/store"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		bookings, err := newClient().GetMyBookings(ctx)
		if err != nil {
			return err
		}
		if len(bookings) == 0 {
			fmt.Println("no bookings yet")
			return nil
		}

		timers, err := store.RememberPendingBookings(bookings)
		if err != nil {
			timers = map[string]time.Time{}
		}
		renderBookingsTable(bookings, timers, time.Now())
		return nil
	},
}

func renderBookingsTable(bookings []model.Booking, timers map[string]time.Time, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Show", "Seats", "Amount", "Status", "Pay Within"})

	for _, b := range bookings {
		labels := make([]string, 0, len(b.Seats))
		for _, seat := range b.Seats {
			labels = append(labels, seat.Label())
		}
		t.AppendRow(table.Row{
			b.ID,
			b.ShowID,
			strings.Join(labels, ", "),
			fmt.Sprintf("%.2f", b.TotalAmount),
			b.Status,
			payWithin(b, timers, now),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Amount", Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// payWithin formats the remaining lock time for a pending booking, counted
// from when this client first saw it. Bookings first seen elsewhere have no
// local timer.
func payWithin(b model.Booking, timers map[string]time.Time, now time.Time) string {
	if !b.IsPending() {
		return ""
	}
	created, ok := timers[b.ID]
	if !ok {
		return "unknown"
	}
	remaining := created.Add(model.LockTTLSeconds * time.Second).Sub(now)
	if remaining <= 0 {
		return "likely expired"
	}
	total := int(remaining.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
