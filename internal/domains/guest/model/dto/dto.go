package dto

import (
	"homestay/internal/domains/guest/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	"strings"
	"time"
)

type CreateGuestRequest struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address,omitempty"`
	VisitDate         string `json:"visitDate"`
	AccommodationType string `json:"accommodationType"`
	Notes             string `json:"notes,omitempty"`
}

type UpdateGuestRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active current upcoming past"`
	Notes  string `json:"notes,omitempty"`
}

type Record struct {
	ID                string      `json:"id"`
	MongoID           string      `json:"_id"`
	FullName          string      `json:"fullName"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	PhoneNumber       string      `json:"phoneNumber"`
	Address           string      `json:"address"`
	VisitDate         string      `json:"visitDate"`
	LastVisit         string      `json:"lastVisit"`
	AccommodationType string      `json:"accommodationType"`
	Accommodation     string      `json:"accommodation"`
	Notes             string      `json:"notes"`
	Status            string      `json:"status"`
	TotalVisits       gDto.Number `json:"totalVisits"`
}

// ToModel normalizes the record. A missing status is derived from the visit date against today.
func (r Record) ToModel(today time.Time) model.Guest {
	visitDate := shared.FirstNonEmpty(r.VisitDate, r.LastVisit)

	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.DeriveStatus(visitDate, today)
	}

	return model.Guest{
		ID:            shared.FirstNonEmpty(r.ID, r.MongoID),
		Name:          shared.FirstNonEmpty(r.FullName, r.Name),
		Email:         r.Email,
		Phone:         shared.FirstNonEmpty(r.Phone, r.PhoneNumber),
		Address:       r.Address,
		VisitDate:     visitDate,
		Accommodation: shared.FirstNonEmpty(r.AccommodationType, r.Accommodation),
		Notes:         r.Notes,
		Status:        status,
		TotalVisits:   r.TotalVisits.Int(),
	}
}

func RecordsToModels(records []Record, today time.Time) []model.Guest {
	guests := make([]model.Guest, len(records))
	for i, record := range records {
		guests[i] = record.ToModel(today)
	}

	return guests
}
