package dto

import (
	"homestay/internal/domains/contact/model"
	"homestay/shared"
	"strings"
)

type CreateContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

type UpdateContactRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=new read replied"`
	IsRead *bool  `json:"isRead,omitempty"`
}

type Record struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	FullName    string `json:"fullName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PhoneNumber string `json:"phoneNumber"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	IsRead      *bool  `json:"isRead"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

// ToModel normalizes the record. Without a status, isRead decides between read and new.
func (r Record) ToModel() model.Contact {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.StatusNew
		if r.IsRead != nil && *r.IsRead {
			status = model.StatusRead
		}
	}

	return model.Contact{
		ID:      shared.FirstNonEmpty(r.ID, r.MongoID),
		Name:    shared.FirstNonEmpty(r.FullName, r.Name),
		Email:   r.Email,
		Phone:   shared.FirstNonEmpty(r.Phone, r.PhoneNumber),
		Subject: r.Subject,
		Message: r.Message,
		Status:  status,
		Date:    shared.FirstNonEmpty(r.Date, r.CreatedAt),
	}
}

func RecordsToModels(records []Record) []model.Contact {
	contacts := make([]model.Contact, len(records))
	for i, record := range records {
		contacts[i] = record.ToModel()
	}

	return contacts
}
