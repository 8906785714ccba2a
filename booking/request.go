package booking

import (
	"errors"

	"moviebook-cli/model"
	"moviebook-cli/seatmap"
)

var ErrEmptySelection = errors.New("no seats selected")

// BuildCreateRequest assembles the create-booking body from the current
// selection: one seat entry per label with its derived id, row label, seat
// type and price, and the selection total as the amount. The backend
// re-validates availability; this only reflects what the user confirmed.
func BuildCreateRequest(showID string, selection *seatmap.Selection, pricing seatmap.Pricing) (model.CreateBookingRequest, error) {
	labels := selection.Labels()
	if len(labels) == 0 {
		return model.CreateBookingRequest{}, ErrEmptySelection
	}

	layout := selection.Layout()
	seats := make([]model.SeatRequest, 0, len(labels))
	total := 0.0
	for _, label := range labels {
		rowIndex, seatNumber, ok := layout.ParseLabel(label)
		if !ok {
			continue
		}
		price := pricing.PriceFor(layout, rowIndex)
		seats = append(seats, model.SeatRequest{
			SeatID:     layout.SeatID(rowIndex, seatNumber),
			RowLabel:   layout.RowLetter(rowIndex),
			SeatNumber: seatNumber,
			SeatType:   layout.SeatType(rowIndex),
			Price:      price,
		})
		total += price
	}
	if len(seats) == 0 {
		return model.CreateBookingRequest{}, ErrEmptySelection
	}

	return model.CreateBookingRequest{
		ShowID:      showID,
		TotalAmount: total,
		Seats:       seats,
	}, nil
}
