package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moviebook-cli/booking"
	"moviebook-cli/model"
	"moviebook-cli/seatmap"
	"moviebook-cli/service"
)

// Fetch results. Messages tied to one show carry its id so results that
// arrive after the user switched shows can be discarded.
type moviesMsg struct {
	movies    []model.Movie
	fromCache bool
	stale     bool
	err       error
}

type showsMsg struct {
	movieID string
	shows   []model.Show
	err     error
}

type showMsg struct {
	showID string
	show   model.Show
	err    error
}

type movieMsg struct {
	showID string
	movie  model.Movie
	err    error
}

type seatStatusMsg struct {
	showID string
	status model.SeatStatus
	err    error
}

type bookingsMsg struct {
	bookings []model.Booking
	err      error
}

type createdMsg struct {
	showID  string
	booking model.Booking
	err     error
}

type paidMsg struct {
	bookingID string
	err       error
}

type cancelledMsg struct {
	bookingID string
	err       error
}

type timerTickMsg time.Time

func timerTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	client := m.deps.Client
	cache := m.deps.Movies
	return func() tea.Msg {
		if cache != nil {
			if movies, fresh, err := cache.Load(); err == nil && fresh && len(movies) > 0 {
				return moviesMsg{movies: movies, fromCache: true}
			}
		}
		movies, err := client.GetMovies(context.Background())
		if err != nil {
			// A stale catalog still lets the user browse; show fetches
			// will surface the outage if it persists.
			if cache != nil {
				if movies, _, cerr := cache.Load(); cerr == nil && len(movies) > 0 {
					return moviesMsg{movies: movies, fromCache: true, stale: true}
				}
			}
			return moviesMsg{err: err}
		}
		if cache != nil {
			_ = cache.Save(movies)
		}
		return moviesMsg{movies: movies}
	}
}

func (m appModel) fetchShowsCmd(movieID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		shows, err := client.GetShowsByMovie(context.Background(), movieID)
		return showsMsg{movieID: movieID, shows: shows, err: err}
	}
}

func (m appModel) fetchShowCmd(showID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		show, err := client.GetShow(context.Background(), showID)
		return showMsg{showID: showID, show: show, err: err}
	}
}

func (m appModel) fetchMovieCmd(showID string, movieID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		movie, err := client.GetMovie(context.Background(), movieID)
		return movieMsg{showID: showID, movie: movie, err: err}
	}
}

func (m appModel) fetchSeatStatusCmd(showID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		status, err := client.GetSeatStatus(context.Background(), showID)
		return seatStatusMsg{showID: showID, status: status, err: err}
	}
}

func (m appModel) fetchBookingsCmd() tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		bookings, err := client.GetMyBookings(context.Background())
		return bookingsMsg{bookings: bookings, err: err}
	}
}

func (m appModel) createBookingCmd(showID string, req model.CreateBookingRequest) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		created, err := client.CreateBooking(context.Background(), req)
		return createdMsg{showID: showID, booking: created, err: err}
	}
}

func (m appModel) payCmd(req model.PaymentRequest) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		err := client.Pay(context.Background(), req)
		return paidMsg{bookingID: req.BookingID, err: err}
	}
}

func (m appModel) cancelBookingCmd(bookingID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		err := client.CancelBooking(context.Background(), bookingID)
		return cancelledMsg{bookingID: bookingID, err: err}
	}
}

func (m appModel) handleMovies(msg moviesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failWith(msg.err, stateSelectMovie)
	}
	m.movies = msg.movies
	m.movieList.SetItems(buildMovieItems(m.movies))
	if msg.stale {
		m.notice = "backend unreachable - showing the cached catalog"
	}
	m.state = stateSelectMovie
	m.resizeLists()
	return m, nil
}

func (m appModel) handleShows(msg showsMsg) (tea.Model, tea.Cmd) {
	if msg.movieID != m.movie.ID {
		return m, nil
	}
	if msg.err != nil {
		return m.failWith(msg.err, stateSelectMovie)
	}
	m.shows = msg.shows
	sort.SliceStable(m.shows, func(i, j int) bool {
		return m.shows[i].StartTime.Before(m.shows[j].StartTime)
	})
	m.showList.SetItems(buildShowItems(m.shows))
	m.showList.Title = "Shows - " + m.movie.Title
	m.state = stateSelectShow
	m.resizeLists()
	return m, nil
}

func (m appModel) handleShow(msg showMsg) (tea.Model, tea.Cmd) {
	if msg.showID != m.showID {
		return m, nil
	}
	if msg.err == nil {
		m.show = msg.show
		m.pricing = seatmap.PricingFromShow(msg.show)
	} else if m.pricing == (seatmap.Pricing{}) {
		m.notice = "show details unavailable - prices may be incomplete"
	}
	return m.sessionFetchDone()
}

func (m appModel) handleMovie(msg movieMsg) (tea.Model, tea.Cmd) {
	if msg.showID != m.showID || msg.err != nil {
		return m, nil
	}
	m.movie = msg.movie
	return m, nil
}

// handleSeatStatus replaces the availability sets wholesale and drops any
// selected seat the backend now reports as taken. A failed fetch leaves the
// sets empty: the grid renders open and the create call stays the arbiter.
func (m appModel) handleSeatStatus(msg seatStatusMsg) (tea.Model, tea.Cmd) {
	if msg.showID != m.showID {
		return m, nil
	}
	if msg.err != nil {
		m.availability = seatmap.NewAvailability()
		m.statusKnown = false
		m.notice = "live seat status unavailable - taken seats may not be marked"
		return m.sessionFetchDone()
	}

	m.availability.Replace(msg.status)
	m.statusKnown = true

	var taken []string
	for _, label := range m.selection.Labels() {
		rowIndex, seatNumber, ok := m.deps.Layout.ParseLabel(label)
		if !ok {
			continue
		}
		if m.availability.IsUnavailable(m.deps.Layout.SeatID(rowIndex, seatNumber)) {
			m.selection.Toggle(label, m.availability)
			taken = append(taken, label)
		}
	}
	if len(taken) > 0 {
		m.notice = fmt.Sprintf("seats %s were taken while you were choosing", strings.Join(taken, ", "))
	}
	return m.sessionFetchDone()
}

func (m appModel) sessionFetchDone() (tea.Model, tea.Cmd) {
	if m.sessionWaits > 0 {
		m.sessionWaits--
	}
	if m.sessionWaits == 0 && m.state == stateLoadingSession {
		m.state = stateSelectSeats
	}
	return m, nil
}

func (m appModel) handleBookings(msg bookingsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.state == stateLoadingBookings {
			return m.failWith(msg.err, stateSelectMovie)
		}
		// Guard check degrades: the create call will reject a duplicate
		// pending booking anyway.
		m.pending = nil
		return m, nil
	}

	m.bookings = msg.bookings
	if m.deps.Timers != nil {
		if timers, err := m.deps.Timers.RememberPending(m.bookings); err == nil {
			m.timers = timers
		}
	}
	if m.showID != "" {
		m.pending = booking.FindPending(m.bookings, m.showID)
	}

	if m.state == stateLoadingBookings {
		m.bookingList.SetItems(buildBookingItems(m.bookings, m.timers, time.Now()))
		m.state = stateMyBookings
		m.resizeLists()
		if m.hasPendingBooking() {
			return m, timerTickCmd()
		}
	}
	return m, nil
}

func (m appModel) handleCreated(msg createdMsg) (tea.Model, tea.Cmd) {
	if msg.showID != m.showID {
		return m, nil
	}
	if msg.err != nil {
		m.state = stateSelectSeats
		m.notice = "booking failed: " + friendlyError(msg.err)
		// Somebody else may have taken the seats; refresh before retrying.
		return m, m.fetchSeatStatusCmd(m.showID)
	}

	b := msg.booking
	m.payment = paymentContext{
		bookingID:  b.ID,
		showID:     m.showID,
		labels:     m.selection.Labels(),
		total:      b.TotalAmount,
		movieTitle: m.movie.Title,
		when:       m.show.StartTime,
		auditorium: m.show.Auditorium,
	}
	if m.payment.total == 0 {
		m.payment.total = m.pricing.Total(m.selection)
	}
	m.bookings = append(m.bookings, b)
	if m.deps.Timers != nil {
		if timers, err := m.deps.Timers.RememberPending([]model.Booking{b}); err == nil {
			m.timers = timers
		}
	}
	m.selection.Clear()
	m.notice = ""
	m.state = statePayment
	return m, nil
}

func (m appModel) handlePaid(msg paidMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = statePayment
		m.notice = "payment failed: " + friendlyError(msg.err)
		return m, nil
	}
	for i := range m.bookings {
		if m.bookings[i].ID == msg.bookingID {
			m.bookings[i].Status = model.StatusConfirmed
		}
	}
	m.payment = paymentContext{}
	m.notice = "payment confirmed - enjoy the show"
	m.state = stateSelectMovie
	return m, nil
}

func (m appModel) handleCancelled(msg cancelledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "cancel failed: " + friendlyError(msg.err)
		return m, nil
	}
	m.notice = fmt.Sprintf("booking #%s cancelled", msg.bookingID)
	m.state = stateLoadingBookings
	return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick)
}

func friendlyError(err error) string {
	if err == nil {
		return ""
	}
	if service.IsUnauthorized(err) {
		return "your session expired, sign in again with 'moviebook login'"
	}
	if errors.Is(err, service.ErrNotJSON) {
		return "the backend answered with something that is not data"
	}
	var apiErr *service.APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}
	return err.Error()
}
