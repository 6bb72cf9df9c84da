package dto_test

import (
	"encoding/json"
	"homestay/internal/domains/review/model"
	"homestay/internal/domains/review/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected model.Review
	}{
		{
			name:    "current names",
			payload: `{"_id":"r1","fullName":"Priya Sharma","location":"Delhi","rating":5,"review":"An absolutely magical experience!","isApproved":true,"createdAt":"2024-11-10"}`,
			expected: model.Review{
				ID: "r1", Name: "Priya Sharma", Location: "Delhi", Rating: 5,
				Text: "An absolutely magical experience!", Status: model.StatusApproved, Date: "2024-11-10",
			},
		},
		{
			name:     "legacy names",
			payload:  `{"id":"R002","guestName":"Rajesh Kumar","rating":"4","text":"Lovely","status":"published","date":"2024-11-15"}`,
			expected: model.Review{ID: "R002", Name: "Rajesh Kumar", Rating: 4, Text: "Lovely", Status: model.StatusPublished, Date: "2024-11-15"},
		},
		{
			name:     "not approved without status",
			payload:  `{"id":"r3","isApproved":false}`,
			expected: model.Review{ID: "r3", Status: model.StatusPending},
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

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, model.AverageRating(nil))
	assert.Equal(t, 4.7, model.AverageRating([]model.Review{{Rating: 5}, {Rating: 5}, {Rating: 4}}))
	assert.Equal(t, 4.5, model.AverageRating([]model.Review{{Rating: 5}, {Rating: 4}}))
}

func TestSort(t *testing.T) {
	reviews := []model.Review{
		{ID: "a", Rating: 4, Date: "2024-11-10"},
		{ID: "b", Rating: 5, Date: "2024-10-01"},
		{ID: "c", Rating: 3, Date: "2024-12-01"},
	}

	ids := func(rs []model.Review) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}

		return out
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids(model.Sort(reviews, model.SortRecent)))
	assert.Equal(t, []string{"b", "a", "c"}, ids(model.Sort(reviews, model.SortRating)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(model.Sort(reviews, "")))
	assert.Equal(t, "a", reviews[0].ID, "input untouched")
	assert.True(t, model.Review{Status: model.StatusPublished}.IsApproved())
	assert.False(t, model.Review{Status: model.StatusRejected}.IsApproved())
}
