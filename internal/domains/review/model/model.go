package model

import (
	"homestay/shared/timezone"
	"math"
	"sort"
)

const (
	EntityName = "review"

	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPublished = "published"
	StatusRejected  = "rejected"

	// DefaultLocation is stored when a reviewer leaves location blank.
	DefaultLocation = "Not specified"

	MinRating = 1
	MaxRating = 5
)

const (
	SortRecent = "recent"
	SortRating = "rating"
)

type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// IsApproved treats published as approved.
func (r Review) IsApproved() bool {
	return r.Status == StatusApproved || r.Status == StatusPublished
}

// AverageRating is the mean rating rounded to one decimal, 0 for no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

// Sort orders reviews newest first, or by rating descending. The input is not modified.
func Sort(reviews []Review, by string) []Review {
	sorted := append([]Review(nil), reviews...)

	switch by {
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortRecent:
		sort.SliceStable(sorted, func(i, j int) bool {
			left, _ := timezone.ParseDate(sorted[i].Date)
			right, _ := timezone.ParseDate(sorted[j].Date)

			return left.After(right)
		})
	}

	return sorted
}
