// Package tui is the interactive booking session: browse movies and shows,
// pick seats on the auditorium grid, confirm, and hand the created booking
// to the payment step. One Bubble Tea model owns the whole flow.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviebook-cli/auth"
	"moviebook-cli/booking"
	"moviebook-cli/model"
	"moviebook-cli/seatmap"
	"moviebook-cli/service"
)

type appState int

const (
	stateLoadingMovies appState = iota
	stateSelectMovie
	stateLoadingShows
	stateSelectShow
	stateLoadingSession
	stateSelectSeats
	stateConfirm
	stateSubmitting
	statePayment
	statePaying
	stateLoadingBookings
	stateMyBookings
	stateError
)

// MovieCache is the movie catalog cache injected into the model.
type MovieCache interface {
	Load() (movies []model.Movie, fresh bool, err error)
	Save(movies []model.Movie) error
}

// TimerStore records when pending bookings were first seen, for the
// payment-countdown display.
type TimerStore interface {
	RememberPending(bookings []model.Booking) (map[string]time.Time, error)
}

// Deps are the collaborators of the booking session. The token provider
// lives inside the client; identity is decoded once at startup.
type Deps struct {
	Client   *service.Client
	Identity auth.Identity
	Layout   seatmap.Layout
	Movies   MovieCache
	Timers   TimerStore
}

// paymentContext is the handoff payload from a created booking to the
// payment step.
type paymentContext struct {
	bookingID  string
	showID     string
	labels     []string
	total      float64
	movieTitle string
	when       time.Time
	auditorium string
}

type appModel struct {
	deps Deps

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movieList   list.Model
	showList    list.Model
	bookingList list.Model

	movies   []model.Movie
	shows    []model.Show
	bookings []model.Booking

	movie model.Movie

	// Active booking session. showID is the identity check that discards
	// fetch results arriving after the user moved to another show.
	showID       string
	show         model.Show
	sessionWaits int
	selection    *seatmap.Selection
	availability *seatmap.Availability
	pricing      seatmap.Pricing
	statusKnown  bool
	pending      *model.Booking
	cursorRow    int
	cursorSeat   int
	notice       string

	payment paymentContext

	timers map[string]time.Time
	now    time.Time

	spinner spinner.Model
}

// New builds the TUI root model. A zero Layout is replaced by the default
// auditorium convention.
func New(deps Deps) tea.Model {
	if deps.Layout.Rows == 0 {
		deps.Layout = seatmap.DefaultLayout()
	}

	m := appModel{
		deps:         deps,
		state:        stateLoadingMovies,
		selection:    seatmap.NewSelection(deps.Layout),
		availability: seatmap.NewAvailability(),
		timers:       map[string]time.Time{},
		now:          time.Now(),
		cursorSeat:   1,
	}

	m.movieList = newList("Now Showing")
	m.showList = newList("Shows")
	m.bookingList = newList("My Bookings")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		return next.updateActiveList(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case timerTickMsg:
		m.now = time.Time(msg)
		if m.state == stateMyBookings && m.hasPendingBooking() {
			m.bookingList.SetItems(buildBookingItems(m.bookings, m.timers, m.now))
			return m, timerTickCmd()
		}
		return m, nil

	case moviesMsg:
		return m.handleMovies(msg)
	case showsMsg:
		return m.handleShows(msg)
	case showMsg:
		return m.handleShow(msg)
	case movieMsg:
		return m.handleMovie(msg)
	case seatStatusMsg:
		return m.handleSeatStatus(msg)
	case bookingsMsg:
		return m.handleBookings(msg)
	case createdMsg:
		return m.handleCreated(msg)
	case paidMsg:
		return m.handlePaid(msg)
	case cancelledMsg:
		return m.handleCancelled(msg)
	}

	return m.updateActiveList(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "q":
		if m.state == stateSelectMovie {
			return m, tea.Quit, true
		}
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next := m.goBack()
		return next, nil, true
	case "b":
		if m.state == stateSelectMovie || m.state == stateSelectShow {
			return m.openMyBookings()
		}
	case "r":
		switch m.state {
		case stateSelectSeats:
			if m.showID != "" {
				m.notice = ""
				return m, tea.Batch(m.fetchSeatStatusCmd(m.showID), m.fetchBookingsCmd()), true
			}
		case stateMyBookings:
			m.state = stateLoadingBookings
			return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick), true
		}
	case "x":
		if m.state == stateMyBookings {
			return m.cancelSelectedBooking()
		}
	case "c":
		if m.state == stateSelectSeats {
			return m.openConfirm()
		}
	}

	if m.state == stateSelectSeats {
		if next, handled := m.handleSeatKey(msg); handled {
			return next, nil, true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			m.state = stateLoadingShows
			return m, tea.Batch(m.fetchShowsCmd(m.movie.ID), m.spinner.Tick), true
		case stateSelectShow:
			item, ok := m.showList.SelectedItem().(showItem)
			if !ok {
				return m, nil, true
			}
			return m.startSession(item.show)
		case stateConfirm:
			return m.submitBooking()
		case statePayment:
			m.notice = ""
			m.state = statePaying
			req := model.PaymentRequest{BookingID: m.payment.bookingID, Amount: m.payment.total}
			return m, tea.Batch(m.payCmd(req), m.spinner.Tick), true
		case stateMyBookings:
			return m.continuePendingBooking()
		}
	}
	return m, nil, false
}

// startSession begins the seat-selection workflow for a show. The selection
// is cleared unconditionally: it belongs to exactly one show id. The session
// fetches are independent and issued together; each degrades on failure
// without aborting the others.
func (m appModel) startSession(show model.Show) (appModel, tea.Cmd, bool) {
	m.showID = show.ID
	m.show = show
	m.selection.Clear()
	m.availability = seatmap.NewAvailability()
	m.pricing = seatmap.PricingFromShow(show)
	m.statusKnown = false
	m.pending = nil
	m.notice = ""
	m.cursorRow = 0
	m.cursorSeat = 1
	m.sessionWaits = 2
	m.state = stateLoadingSession

	cmds := []tea.Cmd{
		m.fetchShowCmd(show.ID),
		m.fetchSeatStatusCmd(show.ID),
		m.fetchBookingsCmd(),
		m.spinner.Tick,
	}
	if m.movie.ID == "" && show.MovieID != "" {
		cmds = append(cmds, m.fetchMovieCmd(show.ID, show.MovieID))
	}
	return m, tea.Batch(cmds...), true
}

// openConfirm moves to the confirmation step unless the pending-booking
// guard blocks it or nothing is selected. Both rejections are local no-ops
// with a message; no network call happens here.
func (m appModel) openConfirm() (appModel, tea.Cmd, bool) {
	if m.pending != nil {
		m.notice = fmt.Sprintf(
			"booking #%s for this show is awaiting payment - pay or cancel it first (esc, then b)",
			m.pending.ID)
		return m, nil, true
	}
	if m.selection.Count() == 0 {
		m.notice = "select at least one seat first"
		return m, nil, true
	}
	m.notice = ""
	m.state = stateConfirm
	return m, nil, true
}

// submitBooking re-checks the guard, then sends the create request exactly
// once. A failure returns to seat selection; retrying means confirming
// again.
func (m appModel) submitBooking() (appModel, tea.Cmd, bool) {
	if m.pending != nil {
		m.state = stateSelectSeats
		m.notice = fmt.Sprintf("booking #%s is still awaiting payment", m.pending.ID)
		return m, nil, true
	}
	req, err := booking.BuildCreateRequest(m.showID, m.selection, m.pricing)
	if err != nil {
		m.state = stateSelectSeats
		m.notice = err.Error()
		return m, nil, true
	}
	m.state = stateSubmitting
	return m, tea.Batch(m.createBookingCmd(m.showID, req), m.spinner.Tick), true
}

func (m appModel) openMyBookings() (appModel, tea.Cmd, bool) {
	m.notice = ""
	m.state = stateLoadingBookings
	return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick), true
}

func (m appModel) cancelSelectedBooking() (appModel, tea.Cmd, bool) {
	item, ok := m.bookingList.SelectedItem().(bookingItem)
	if !ok {
		return m, nil, true
	}
	if !item.booking.IsPending() {
		m.notice = "only pending bookings can be cancelled"
		return m, nil, true
	}
	m.notice = ""
	return m, tea.Batch(m.cancelBookingCmd(item.booking.ID), m.spinner.Tick), true
}

// continuePendingBooking resumes payment for an already created booking.
func (m appModel) continuePendingBooking() (appModel, tea.Cmd, bool) {
	item, ok := m.bookingList.SelectedItem().(bookingItem)
	if !ok {
		return m, nil, true
	}
	b := item.booking
	if !b.IsPending() {
		m.notice = "this booking is not awaiting payment"
		return m, nil, true
	}
	labels := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		labels = append(labels, seat.Label())
	}
	m.payment = paymentContext{
		bookingID: b.ID,
		showID:    b.ShowID,
		labels:    labels,
		total:     b.TotalAmount,
	}
	m.notice = ""
	m.state = statePayment
	return m, nil, true
}

func (m appModel) goBack() appModel {
	switch m.state {
	case stateSelectShow:
		m.movie = model.Movie{}
		m.state = stateSelectMovie
	case stateSelectSeats:
		// Leaving the seat screen discards the session; coming back later
		// starts from a clean selection.
		m.showID = ""
		m.notice = ""
		m.state = stateSelectShow
	case stateConfirm:
		m.state = stateSelectSeats
	case statePayment:
		m.notice = "booking is still pending - find it under My Bookings (b)"
		m.state = stateSelectMovie
	case stateMyBookings:
		m.notice = ""
		m.state = stateSelectMovie
	case stateError:
		m.err = nil
		m.state = m.lastState
	}
	return m
}

func (m appModel) failWith(err error, back appState) (appModel, tea.Cmd) {
	m.err = err
	m.lastState = back
	m.state = stateError
	return m, nil
}

func (m appModel) hasPendingBooking() bool {
	for _, b := range m.bookings {
		if b.IsPending() {
			return true
		}
	}
	return false
}

func (m appModel) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectShow:
		m.showList, cmd = m.showList.Update(msg)
	case stateMyBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil || !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		value := string(msg.Runes)
		// single-letter hotkeys take precedence over filtering
		if value == "b" || value == "r" || value == "x" || value == "q" {
			return false
		}
		m.appendFilter(listPtr, value)
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	listPtr.SetFilterText(listPtr.FilterValue() + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	runes := []rune(value)
	if len(runes) <= 1 {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(string(runes[:len(runes)-1]))
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectShow:
		return &m.showList
	case stateMyBookings:
		return &m.bookingList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingMovies, stateLoadingShows, stateLoadingSession,
		stateSubmitting, statePaying, stateLoadingBookings:
		return true
	}
	return false
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.showList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}
