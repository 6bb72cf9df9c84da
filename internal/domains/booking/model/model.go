package model

import "strings"

const (
	EntityName = "booking"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	AccommodationGlamping = "glamping"
	AccommodationHomestay = "homestay"
	AccommodationPod      = "pod"
)

// Accommodation is one bookable stay type.
type Accommodation struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	NightlyRate float64 `json:"nightlyRate"`
}

// Catalog lists every accommodation in display order.
var Catalog = []Accommodation{
	{Code: AccommodationGlamping, Name: "Luxury Glamping Tent", NightlyRate: 6500},
	{Code: AccommodationHomestay, Name: "Authentic Homestay", NightlyRate: 3500},
	{Code: AccommodationPod, Name: "Mountain Wellness Pod", NightlyRate: 5000},
}

// LookupAccommodation finds a catalog entry by code or display name, ignoring case.
func LookupAccommodation(value string) (Accommodation, bool) {
	value = strings.TrimSpace(value)

	for _, accommodation := range Catalog {
		if strings.EqualFold(accommodation.Code, value) || strings.EqualFold(accommodation.Name, value) {
			return accommodation, true
		}
	}

	return Accommodation{}, false
}

// AccommodationCodes is the catalog as a validator oneof parameter.
func AccommodationCodes() string {
	codes := make([]string, len(Catalog))
	for i, accommodation := range Catalog {
		codes[i] = accommodation.Code
	}

	return strings.Join(codes, " ")
}

type Booking struct {
	ID              string  `json:"id"`
	Reference       string  `json:"bookingReference,omitempty"`
	GuestName       string  `json:"guestName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Guests          int     `json:"guests"`
	Accommodation   string  `json:"accommodation"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`
	TotalAmount     float64 `json:"totalAmount,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// AccommodationName is the display name when the stored value is a catalog code.
func (b Booking) AccommodationName() string {
	if accommodation, ok := LookupAccommodation(b.Accommodation); ok {
		return accommodation.Name
	}

	return b.Accommodation
}
