package dto_test

import (
	"encoding/json"
	"homestay/internal/domains/payment/model"
	"homestay/internal/domains/payment/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected model.Payment
	}{
		{
			name: "current names with plain booking id",
			payload: `{"id":"p1","bookingId":"BK001","guestName":"Priya Sharma","amount":19500,
				"paymentDate":"2024-12-01","paymentMethod":"UPI","status":"completed","referenceTransactionId":"UPI123"}`,
			expected: model.Payment{
				ID: "p1", BookingID: "BK001", GuestName: "Priya Sharma", Amount: 19500,
				Date: "2024-12-01", Method: "UPI", Status: "completed", Reference: "UPI123",
			},
		},
		{
			name:     "populated booking prefers its reference",
			payload:  `{"_id":"p2","bookingId":{"_id":"64ab","id":"b2","bookingReference":"BK-2002"},"amount":"3500","date":"2024-12-02","method":"Cash","reference":"R-9"}`,
			expected: model.Payment{ID: "p2", BookingID: "BK-2002", Amount: 3500, Date: "2024-12-02", Method: "Cash", Status: model.StatusPending, Reference: "R-9"},
		},
		{
			name:     "populated booking falls back to id then _id",
			payload:  `{"id":"p3","bookingId":{"_id":"64ab"}}`,
			expected: model.Payment{ID: "p3", BookingID: "64ab", Status: model.StatusPending},
		},
		{
			name:     "null booking",
			payload:  `{"id":"p4","bookingId":null,"status":"pending"}`,
			expected: model.Payment{ID: "p4", Status: model.StatusPending},
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

func TestSummarize(t *testing.T) {
	totals := model.Summarize([]model.Payment{
		{Amount: 19500, Status: model.StatusCompleted},
		{Amount: 10500, Status: model.StatusPending},
		{Amount: 15000, Status: model.StatusCompleted},
		{Amount: 999, Status: "refunded"},
	})

	assert.Equal(t, 34500.0, totals.Revenue)
	assert.Equal(t, 10500.0, totals.Pending)
}

func TestIsMethod(t *testing.T) {
	assert.True(t, model.IsMethod("UPI"))
	assert.True(t, model.IsMethod("bank transfer"))
	assert.False(t, model.IsMethod("Crypto"))
}
