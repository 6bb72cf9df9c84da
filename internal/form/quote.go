package form

import (
	"math"
	"time"
)

type Quote struct {
	Nights int     `json:"nights"`
	Guests int     `json:"guests"`
	Rate   float64 `json:"rate"`
	Total  float64 `json:"total"`
}

// NewQuote prices nights × guests × rate. Nights round up to whole days and never go
// negative, so inverted dates price at zero.
func NewQuote(checkIn, checkOut time.Time, guests int, rate float64) Quote {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	nights = max(nights, 0)
	guests = max(guests, 0)

	return Quote{
		Nights: nights,
		Guests: guests,
		Rate:   rate,
		Total:  float64(nights) * float64(guests) * rate,
	}
}
