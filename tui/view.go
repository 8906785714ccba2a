package tui

import (
	"fmt"
	"strings"
)

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())

	switch m.state {
	case stateLoadingMovies:
		b.WriteString(m.loadingView("loading movies"))
	case stateSelectMovie:
		b.WriteString(m.movieList.View())
		if m.notice != "" {
			b.WriteString("\n" + noticeStyle.Render(" "+m.notice))
		}
		b.WriteString("\n" + faintStyle.Render(" enter pick | b my bookings | / filter | q quit"))
	case stateLoadingShows:
		b.WriteString(m.loadingView("loading shows for " + m.movie.Title))
	case stateSelectShow:
		b.WriteString(m.showList.View())
		b.WriteString("\n" + faintStyle.Render(" enter pick a show | b my bookings | esc back"))
	case stateLoadingSession:
		b.WriteString(m.loadingView("opening seat map"))
	case stateSelectSeats:
		b.WriteString(m.sessionHeader() + "\n\n")
		b.WriteString(m.renderSeatMap())
		b.WriteString("\n" + m.seatFooter())
	case stateConfirm:
		b.WriteString(m.confirmView())
	case stateSubmitting:
		b.WriteString(m.loadingView("creating booking"))
	case statePayment:
		b.WriteString(m.paymentView())
	case statePaying:
		b.WriteString(m.loadingView("processing payment"))
	case stateLoadingBookings:
		b.WriteString(m.loadingView("loading your bookings"))
	case stateMyBookings:
		b.WriteString(m.bookingList.View())
		if m.notice != "" {
			b.WriteString("\n" + noticeStyle.Render(" "+m.notice))
		}
		b.WriteString("\n" + faintStyle.Render(" enter pay pending | x cancel | r refresh | esc back"))
	case stateError:
		b.WriteString(m.errorView())
	}

	b.WriteString("\n")
	return b.String()
}

func (m appModel) headerView() string {
	title := titleStyle.Render(" moviebook ")
	who := ""
	if m.deps.Identity.Email != "" {
		who = faintStyle.Render(fmt.Sprintf("  %s (%s)", m.deps.Identity.Email, strings.ToLower(m.deps.Identity.Role)))
	} else {
		who = faintStyle.Render("  not signed in - browsing only")
	}
	return title + who + "\n\n"
}

func (m appModel) sessionHeader() string {
	parts := []string{}
	if m.movie.Title != "" {
		parts = append(parts, titleStyle.Render(m.movie.Title))
	}
	if !m.show.StartTime.IsZero() {
		parts = append(parts, m.show.StartTime.Local().Format("Mon Jan 2 15:04"))
	}
	if m.show.Auditorium != "" {
		parts = append(parts, m.show.Auditorium)
	}
	if len(parts) == 0 {
		return " show " + m.showID
	}
	return " " + strings.Join(parts, "  ")
}

func (m appModel) loadingView(what string) string {
	return fmt.Sprintf(" %s %s...", m.spinner.View(), what)
}

func (m appModel) confirmView() string {
	var b strings.Builder
	b.WriteString(m.sessionHeader() + "\n\n")
	b.WriteString(" confirm your booking\n\n")

	layout := m.deps.Layout
	for _, label := range m.selection.Labels() {
		rowIndex, _, ok := layout.ParseLabel(label)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("   %-5s %-8s %8.2f\n",
			label, strings.ToLower(layout.SeatType(rowIndex)), m.pricing.PriceFor(layout, rowIndex)))
	}
	b.WriteString(fmt.Sprintf("\n   total %17.2f\n", m.pricing.Total(m.selection)))
	b.WriteString("\n" + faintStyle.Render(" enter book these seats | esc go back"))
	return b.String()
}

func (m appModel) paymentView() string {
	var b strings.Builder
	b.WriteString(" booking " + titleStyle.Render("#"+m.payment.bookingID) + " created\n\n")
	if m.payment.movieTitle != "" {
		line := "   " + m.payment.movieTitle
		if !m.payment.when.IsZero() {
			line += "  " + m.payment.when.Local().Format("Mon Jan 2 15:04")
		}
		if m.payment.auditorium != "" {
			line += "  " + m.payment.auditorium
		}
		b.WriteString(line + "\n")
	}
	if len(m.payment.labels) > 0 {
		b.WriteString(fmt.Sprintf("   seats: %s\n", strings.Join(m.payment.labels, ", ")))
	}
	b.WriteString(fmt.Sprintf("   amount due: %.2f\n", m.payment.total))
	b.WriteString("\n   seats are held for 10 minutes; unpaid bookings expire\n")
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render("   "+m.notice) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render(" enter pay now | esc pay later from My Bookings"))
	return b.String()
}

func (m appModel) errorView() string {
	message := "something went wrong"
	if m.err != nil {
		message = friendlyError(m.err)
	}
	return noticeStyle.Render(" "+message) + "\n\n" + faintStyle.Render(" esc go back | ctrl+c quit")
}
