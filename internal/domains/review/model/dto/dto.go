package dto

import (
	"homestay/internal/domains/review/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	"strings"
)

type CreateReviewRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Review   string `json:"review"`
	Rating   int    `json:"rating"`
}

type UpdateReviewRequest struct {
	Status     string `json:"status,omitempty"     validate:"omitempty,oneof=pending approved published rejected"`
	IsApproved *bool  `json:"isApproved,omitempty"`
}

type Record struct {
	ID         string      `json:"id"`
	MongoID    string      `json:"_id"`
	FullName   string      `json:"fullName"`
	GuestName  string      `json:"guestName"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Location   string      `json:"location"`
	Rating     gDto.Number `json:"rating"`
	Review     string      `json:"review"`
	Text       string      `json:"text"`
	Status     string      `json:"status"`
	IsApproved *bool       `json:"isApproved"`
	Date       string      `json:"date"`
	CreatedAt  string      `json:"createdAt"`
}

// ToModel normalizes the record. Without a status, isApproved decides between approved and pending.
func (r Record) ToModel() model.Review {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.StatusPending
		if r.IsApproved != nil && *r.IsApproved {
			status = model.StatusApproved
		}
	}

	return model.Review{
		ID:       shared.FirstNonEmpty(r.ID, r.MongoID),
		Name:     shared.FirstNonEmpty(r.FullName, r.GuestName, r.Name),
		Email:    r.Email,
		Location: r.Location,
		Rating:   r.Rating.Int(),
		Text:     shared.FirstNonEmpty(r.Review, r.Text),
		Status:   status,
		Date:     shared.FirstNonEmpty(r.Date, r.CreatedAt),
	}
}

func RecordsToModels(records []Record) []model.Review {
	reviews := make([]model.Review, len(records))
	for i, record := range records {
		reviews[i] = record.ToModel()
	}

	return reviews
}
