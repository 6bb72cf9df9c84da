package dto_test

import (
	"encoding/json"
	"homestay/internal/domains/guest/model"
	"homestay/internal/domains/guest/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ToModel(t *testing.T) {
	today := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		payload    string
		wantName   string
		wantStatus string
		wantVisits int
	}{
		{name: "server status kept", payload: `{"id":"g1","fullName":"Priya Sharma","visitDate":"2024-11-01","status":"Active"}`, wantName: "Priya Sharma", wantStatus: model.StatusActive},
		{name: "visit today is current", payload: `{"id":"g2","name":"Rajesh Kumar","visitDate":"2024-12-15"}`, wantName: "Rajesh Kumar", wantStatus: model.StatusCurrent},
		{name: "visit later is upcoming", payload: `{"_id":"g3","name":"Anjali Patel","visitDate":"2024-12-25","totalVisits":"3"}`, wantName: "Anjali Patel", wantStatus: model.StatusUpcoming, wantVisits: 3},
		{name: "visit earlier is past", payload: `{"id":"g4","name":"Maya Desai","lastVisit":"2024-12-10"}`, wantName: "Maya Desai", wantStatus: model.StatusPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record dto.Record
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &record))

			guest := record.ToModel(today)

			assert.NotEmpty(t, guest.ID)
			assert.Equal(t, tt.wantName, guest.Name)
			assert.Equal(t, tt.wantStatus, guest.Status)
			assert.Equal(t, tt.wantVisits, guest.TotalVisits)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, model.StatusCurrent, model.DeriveStatus("2024-12-15", today))
	assert.Equal(t, model.StatusUpcoming, model.DeriveStatus("2024-12-16", today))
	assert.Equal(t, model.StatusPast, model.DeriveStatus("2024-12-14", today))
	assert.Equal(t, model.StatusUpcoming, model.DeriveStatus("soon", today))
}
