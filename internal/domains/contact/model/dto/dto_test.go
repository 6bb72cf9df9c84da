package dto_test

import (
	"encoding/json"
	"homestay/internal/domains/contact/model"
	"homestay/internal/domains/contact/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantName   string
		wantStatus string
		wantDate   string
	}{
		{name: "explicit status", payload: `{"id":"C003","name":"Rahul Verma","status":"replied","date":"2024-12-03"}`, wantName: "Rahul Verma", wantStatus: model.StatusReplied, wantDate: "2024-12-03"},
		{name: "read flag", payload: `{"_id":"c1","fullName":"John Doe","isRead":true,"createdAt":"2024-12-05T10:00:00Z"}`, wantName: "John Doe", wantStatus: model.StatusRead, wantDate: "2024-12-05T10:00:00Z"},
		{name: "unread flag", payload: `{"_id":"c2","fullName":"Sara Khan","isRead":false}`, wantName: "Sara Khan", wantStatus: model.StatusNew},
		{name: "nothing", payload: `{"_id":"c3"}`, wantStatus: model.StatusNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record dto.Record
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &record))

			contact := record.ToModel()
			assert.Equal(t, tt.wantName, contact.Name)
			assert.Equal(t, tt.wantStatus, contact.Status)
			assert.Equal(t, tt.wantDate, contact.Date)
		})
	}
}

func TestCount(t *testing.T) {
	counts := model.Count([]model.Contact{
		{Status: model.StatusNew}, {Status: model.StatusNew}, {Status: model.StatusRead}, {Status: model.StatusReplied}, {Status: "spam"},
	})

	assert.Equal(t, model.Counts{New: 2, Read: 1, Replied: 1}, counts)
}
