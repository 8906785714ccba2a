package model

import (
	"encoding/json"
	"time"
)

// Show is read-only reference data once fetched; pricing and auditorium feed
// the seat-selection screen and are never mutated client-side.
type Show struct {
	ID           string
	MovieID      string
	StartTime    time.Time
	EndTime      time.Time
	Auditorium   string
	PriceRegular float64
	PricePremium float64
}

func (s *Show) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.ID = pickID(obj, "id", "showId", "show_id")
	s.MovieID = pickID(obj, "movieId", "movie_id", "movie")
	s.StartTime = pickTime(obj, "startTime", "start_time", "start")
	s.EndTime = pickTime(obj, "endTime", "end_time", "end")
	s.Auditorium = pickString(obj,
		"auditorium", "auditoriumName", "auditorium_name",
		"theatre", "theatreName", "theater", "theaterId")
	s.PriceRegular = pickFloat(obj, "priceRegular", "price_regular", "price")
	s.PricePremium = pickFloat(obj, "pricePremium", "price_premium", "pricepremium")
	return nil
}
