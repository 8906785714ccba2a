package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"moviebook-cli/model"
)

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string {
	return i.movie.Title
}

func (i movieItem) Description() string {
	parts := make([]string, 0, 4)
	if !i.movie.Active {
		parts = append(parts, "coming soon")
	}
	if i.movie.Genre != "" {
		parts = append(parts, i.movie.Genre)
	}
	if i.movie.Duration != "" {
		parts = append(parts, i.movie.Duration)
	}
	if i.movie.Language != "" {
		parts = append(parts, i.movie.Language)
	}
	if len(parts) == 0 {
		return "details unavailable"
	}
	return strings.Join(parts, " | ")
}

func (i movieItem) FilterValue() string {
	return i.movie.Title + " " + i.movie.Genre
}

// buildMovieItems lists active movies first; inactive ones stay browsable
// with a "coming soon" tag since the backend schedules no shows for them yet.
func buildMovieItems(movies []model.Movie) []list.Item {
	sorted := make([]model.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Active && !sorted[j].Active
	})

	items := make([]list.Item, 0, len(sorted))
	for _, movie := range sorted {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

type showItem struct {
	show model.Show
}

func (i showItem) Title() string {
	when := "time unknown"
	if !i.show.StartTime.IsZero() {
		when = i.show.StartTime.Local().Format("Mon Jan 2 15:04")
	}
	if i.show.Auditorium != "" {
		return fmt.Sprintf("%s - %s", when, i.show.Auditorium)
	}
	return when
}

func (i showItem) Description() string {
	if i.show.PriceRegular == 0 && i.show.PricePremium == 0 {
		return "prices unavailable"
	}
	return fmt.Sprintf("regular %.2f | premium %.2f", i.show.PriceRegular, i.show.PricePremium)
}

func (i showItem) FilterValue() string {
	return i.Title()
}

func buildShowItems(shows []model.Show) []list.Item {
	items := make([]list.Item, 0, len(shows))
	for _, show := range shows {
		items = append(items, showItem{show: show})
	}
	return items
}

type bookingItem struct {
	booking   model.Booking
	remaining time.Duration
	timed     bool
}

func (i bookingItem) Title() string {
	labels := make([]string, 0, len(i.booking.Seats))
	for _, seat := range i.booking.Seats {
		labels = append(labels, seat.Label())
	}
	seats := "no seats"
	if len(labels) > 0 {
		seats = strings.Join(labels, ", ")
	}
	return fmt.Sprintf("#%s  %s  %.2f", i.booking.ID, seats, i.booking.TotalAmount)
}

func (i bookingItem) Description() string {
	if !i.booking.IsPending() {
		return strings.ToLower(i.booking.Status)
	}
	if !i.timed {
		return "awaiting payment"
	}
	if i.remaining <= 0 {
		return "awaiting payment - seat lock likely expired"
	}
	total := int(i.remaining.Seconds())
	return fmt.Sprintf("awaiting payment - %d:%02d until seats unlock", total/60, total%60)
}

func (i bookingItem) FilterValue() string {
	return i.booking.ID + " " + i.booking.Status
}

// buildBookingItems lists pending bookings first. The countdown runs from
// the locally recorded first-seen time; bookings created on another device
// have no timer and show a plain pending label.
func buildBookingItems(bookings []model.Booking, timers map[string]time.Time, now time.Time) []list.Item {
	sorted := make([]model.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IsPending() && !sorted[j].IsPending()
	})

	items := make([]list.Item, 0, len(sorted))
	for _, b := range sorted {
		item := bookingItem{booking: b}
		if b.IsPending() {
			if created, ok := timers[b.ID]; ok {
				item.timed = true
				item.remaining = created.Add(model.LockTTLSeconds * time.Second).Sub(now)
			}
		}
		items = append(items, item)
	}
	return items
}
