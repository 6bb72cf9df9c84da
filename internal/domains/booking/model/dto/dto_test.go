package dto_test

import (
	"encoding/json"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected model.Booking
	}{
		{
			name: "current field names",
			payload: `{"id":"b1","bookingReference":"BK-1001","fullName":"Priya Sharma","email":"priya@example.com",
				"phoneNumber":"9876543210","checkInDate":"2024-12-15","checkOutDate":"2024-12-18",
				"numberOfGuests":2,"accommodationType":"glamping","status":"confirmed","totalAmount":19500}`,
			expected: model.Booking{
				ID: "b1", Reference: "BK-1001", GuestName: "Priya Sharma", Email: "priya@example.com",
				Phone: "9876543210", CheckIn: "2024-12-15", CheckOut: "2024-12-18", Guests: 2,
				Accommodation: "glamping", Status: "confirmed", TotalAmount: 19500,
			},
		},
		{
			name: "legacy field names",
			payload: `{"_id":"64ab","guestName":"Rajesh Kumar","email":"rajesh@example.com","phone":"+91 9876543211",
				"checkIn":"2024-12-16","checkOut":"2024-12-19","guests":"4","accommodation":"Authentic Homestay"}`,
			expected: model.Booking{
				ID: "64ab", GuestName: "Rajesh Kumar", Email: "rajesh@example.com", Phone: "+91 9876543211",
				CheckIn: "2024-12-16", CheckOut: "2024-12-19", Guests: 4, Accommodation: "Authentic Homestay",
				Status: model.StatusPending,
			},
		},
		{
			name:     "canonical name wins over alias",
			payload:  `{"id":"b2","_id":"x","fullName":"A","guestName":"B","checkInDate":"2024-12-01","checkIn":"2024-11-01","status":"Cancelled"}`,
			expected: model.Booking{ID: "b2", GuestName: "A", CheckIn: "2024-12-01", Status: model.StatusCancelled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record dto.Record
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &record))

			assert.Equal(t, tt.expected, record.ToModel())
		})
	}
}

func TestCreateBookingResponse_Reference(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "nested", payload: `{"booking":{"bookingReference":"BK-2001"}}`, want: "BK-2001"},
		{name: "top level", payload: `{"bookingReference":"BK-2002"}`, want: "BK-2002"},
		{name: "nested wins", payload: `{"booking":{"bookingReference":"BK-1"},"bookingReference":"BK-2"}`, want: "BK-1"},
		{name: "nested without reference", payload: `{"booking":{"id":"b"},"bookingReference":"BK-3"}`, want: "BK-3"},
		{name: "missing", payload: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.CreateBookingResponse
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &res))

			assert.Equal(t, tt.want, res.Reference())
		})
	}
}

func TestLookupAccommodation(t *testing.T) {
	accommodation, ok := model.LookupAccommodation("Luxury Glamping Tent")
	require.True(t, ok)
	assert.Equal(t, model.AccommodationGlamping, accommodation.Code)
	assert.Equal(t, 6500.0, accommodation.NightlyRate)

	accommodation, ok = model.LookupAccommodation(" POD ")
	require.True(t, ok)
	assert.Equal(t, 5000.0, accommodation.NightlyRate)

	_, ok = model.LookupAccommodation("villa")
	assert.False(t, ok)

	assert.Equal(t, "glamping homestay pod", model.AccommodationCodes())
	assert.Equal(t, "Authentic Homestay", model.Booking{Accommodation: "homestay"}.AccommodationName())
	assert.Equal(t, "Treehouse", model.Booking{Accommodation: "Treehouse"}.AccommodationName())
}
