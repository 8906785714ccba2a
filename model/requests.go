package model

// Request bodies sent to the backend. These are always emitted in the
// canonical camelCase form; the alias tolerance is only for decoding.

type CreateBookingRequest struct {
	ShowID      string        `json:"showId"`
	TotalAmount float64       `json:"totalAmount"`
	Seats       []SeatRequest `json:"seats"`
}

type SeatRequest struct {
	SeatID     int     `json:"seatId"`
	RowLabel   string  `json:"rowLabel"`
	SeatNumber int     `json:"seatNumber"`
	SeatType   string  `json:"seatType"`
	Price      float64 `json:"price"`
}

type PaymentRequest struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
}
