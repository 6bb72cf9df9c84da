package dto

import (
	"homestay/internal/domains/booking/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	"strings"
)

type CreateBookingRequest struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	CheckInDate       string `json:"checkInDate"`
	CheckOutDate      string `json:"checkOutDate"`
	NumberOfGuests    int    `json:"numberOfGuests"`
	AccommodationType string `json:"accommodationType"`
	SpecialRequests   string `json:"specialRequests,omitempty"`
}

type UpdateBookingRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Record is a booking as the backend sends it. Older records use the short field names.
type Record struct {
	ID                string      `json:"id"`
	MongoID           string      `json:"_id"`
	BookingReference  string      `json:"bookingReference"`
	FullName          string      `json:"fullName"`
	GuestName         string      `json:"guestName"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	PhoneNumber       string      `json:"phoneNumber"`
	Phone             string      `json:"phone"`
	CheckInDate       string      `json:"checkInDate"`
	CheckIn           string      `json:"checkIn"`
	CheckOutDate      string      `json:"checkOutDate"`
	CheckOut          string      `json:"checkOut"`
	NumberOfGuests    gDto.Number `json:"numberOfGuests"`
	Guests            gDto.Number `json:"guests"`
	AccommodationType string      `json:"accommodationType"`
	Accommodation     string      `json:"accommodation"`
	SpecialRequests   string      `json:"specialRequests"`
	Status            string      `json:"status"`
	TotalAmount       gDto.Number `json:"totalAmount"`
	CreatedAt         string      `json:"createdAt"`
}

func (r Record) ToModel() model.Booking {
	guests := r.NumberOfGuests.Int()
	if guests == 0 {
		guests = r.Guests.Int()
	}

	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.StatusPending
	}

	return model.Booking{
		ID:              shared.FirstNonEmpty(r.ID, r.MongoID),
		Reference:       r.BookingReference,
		GuestName:       shared.FirstNonEmpty(r.FullName, r.GuestName, r.Name),
		Email:           r.Email,
		Phone:           shared.FirstNonEmpty(r.PhoneNumber, r.Phone),
		CheckIn:         shared.FirstNonEmpty(r.CheckInDate, r.CheckIn),
		CheckOut:        shared.FirstNonEmpty(r.CheckOutDate, r.CheckOut),
		Guests:          guests,
		Accommodation:   shared.FirstNonEmpty(r.AccommodationType, r.Accommodation),
		SpecialRequests: r.SpecialRequests,
		Status:          status,
		TotalAmount:     r.TotalAmount.Float(),
		CreatedAt:       r.CreatedAt,
	}
}

// CreateBookingResponse is what the backend answers to a new booking. The reference is
// nested under booking on current deployments and top-level on older ones.
type CreateBookingResponse struct {
	Booking          *Record `json:"booking,omitempty"`
	BookingReference string  `json:"bookingReference,omitempty"`
	ID               string  `json:"id,omitempty"`
}

func (r CreateBookingResponse) Reference() string {
	if r.Booking != nil && r.Booking.BookingReference != "" {
		return r.Booking.BookingReference
	}

	return r.BookingReference
}

func RecordsToModels(records []Record) []model.Booking {
	bookings := make([]model.Booking, len(records))
	for i, record := range records {
		bookings[i] = record.ToModel()
	}

	return bookings
}
