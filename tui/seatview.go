package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	screenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7")).
			Bold(true)

	seatOpenStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	seatPremiumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	seatSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	seatBookedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatLockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
)

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, bool) {
	layout := m.deps.Layout
	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < layout.Rows-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorSeat > 1 {
			m.cursorSeat--
		}
	case "right", "l":
		if m.cursorSeat < layout.SeatsPerRow {
			m.cursorSeat++
		}
	case " ", "enter":
		label := layout.Label(m.cursorRow, m.cursorSeat)
		seatID := layout.SeatID(m.cursorRow, m.cursorSeat)
		if m.availability.IsUnavailable(seatID) && !m.selection.Has(label) {
			m.notice = fmt.Sprintf("seat %s is taken", label)
			return m, true
		}
		m.selection.Toggle(label, m.availability)
		m.notice = ""
	default:
		return m, false
	}
	return m, true
}

// renderSeatMap draws the auditorium: screen bar on top, lettered rows below
// with the premium rows at the back. Booked seats render XX, locked ##.
func (m appModel) renderSeatMap() string {
	layout := m.deps.Layout
	var b strings.Builder

	rowWidth := layout.SeatsPerRow * 3
	screen := "S C R E E N"
	pad := (rowWidth - len(screen)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString("    " + screenStyle.Render(strings.Repeat(" ", pad)+screen+strings.Repeat(" ", rowWidth-pad-len(screen))))
	b.WriteString("\n\n")

	for rowIndex := 0; rowIndex < layout.Rows; rowIndex++ {
		b.WriteString(fmt.Sprintf(" %s  ", layout.RowLetter(rowIndex)))
		for seatNumber := 1; seatNumber <= layout.SeatsPerRow; seatNumber++ {
			b.WriteString(m.renderSeatCell(rowIndex, seatNumber))
		}
		if layout.IsPremium(rowIndex) {
			b.WriteString("  " + seatPremiumStyle.Render("premium"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n    ")
	b.WriteString(seatOpenStyle.Render("nn") + faintStyle.Render(" open  "))
	b.WriteString(seatSelectedStyle.Render("nn") + faintStyle.Render(" selected  "))
	b.WriteString(seatBookedStyle.Render("XX") + faintStyle.Render(" booked  "))
	b.WriteString(seatLockedStyle.Render("##") + faintStyle.Render(" locked"))
	b.WriteString("\n")
	return b.String()
}

func (m appModel) renderSeatCell(rowIndex int, seatNumber int) string {
	layout := m.deps.Layout
	seatID := layout.SeatID(rowIndex, seatNumber)
	label := layout.Label(rowIndex, seatNumber)

	var text string
	var style lipgloss.Style
	switch {
	case m.availability.IsBooked(seatID):
		text, style = "XX", seatBookedStyle
	case m.availability.IsLocked(seatID):
		text, style = "##", seatLockedStyle
	case m.selection.Has(label):
		text, style = fmt.Sprintf("%2d", seatNumber), seatSelectedStyle
	case layout.IsPremium(rowIndex):
		text, style = fmt.Sprintf("%2d", seatNumber), seatPremiumStyle
	default:
		text, style = fmt.Sprintf("%2d", seatNumber), seatOpenStyle
	}

	if rowIndex == m.cursorRow && seatNumber == m.cursorSeat {
		style = style.Reverse(true)
	}
	return style.Render(text) + " "
}

// seatFooter summarizes the selection below the grid: prices, picked seats
// and the running total, plus the pending-booking banner when the guard is
// active.
func (m appModel) seatFooter() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("    regular %.2f | premium %.2f\n", m.pricing.Regular, m.pricing.Premium))
	if m.selection.Count() > 0 {
		b.WriteString(fmt.Sprintf("    seats: %s\n", strings.Join(m.selection.Labels(), ", ")))
		b.WriteString(fmt.Sprintf("    total: %.2f\n", m.pricing.Total(m.selection)))
	} else {
		b.WriteString(faintStyle.Render("    no seats selected") + "\n")
	}

	if m.pending != nil {
		b.WriteString(pendingStyle.Render(fmt.Sprintf(
			"    booking #%s for this show is awaiting payment", m.pending.ID)) + "\n")
	}
	if !m.statusKnown {
		b.WriteString(noticeStyle.Render("    seat status not confirmed - the backend has the final word") + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render("    "+m.notice) + "\n")
	}

	b.WriteString(faintStyle.Render("    arrows/hjkl move | space/enter toggle | c confirm | r refresh | esc back"))
	return b.String()
}
