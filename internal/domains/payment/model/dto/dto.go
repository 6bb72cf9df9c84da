package dto

import (
	"bytes"
	"encoding/json"
	"homestay/internal/domains/payment/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	"strings"
)

type CreatePaymentRequest struct {
	BookingID              string  `json:"bookingId"`
	GuestName              string  `json:"guestName"`
	Amount                 float64 `json:"amount"`
	PaymentDate            string  `json:"paymentDate"`
	PaymentMethod          string  `json:"paymentMethod"`
	ReferenceTransactionID string  `json:"referenceTransactionId,omitempty"`
	Description            string  `json:"description,omitempty"`
	Status                 string  `json:"status,omitempty"`
}

type UpdatePaymentRequest struct {
	Status      string `json:"status,omitempty"      validate:"omitempty,oneof=pending completed"`
	Description string `json:"description,omitempty"`
}

// StatisticsParams bound the statistics window. Empty bounds are not sent.
type StatisticsParams struct {
	StartDate string
	EndDate   string
}

// BookingRef is the payment's booking, sent either as a plain id or as the populated booking.
type BookingRef string

func (b *BookingRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var populated struct {
			BookingReference string `json:"bookingReference"`
			ID               string `json:"id"`
			MongoID          string `json:"_id"`
		}

		if err := json.Unmarshal(trimmed, &populated); err != nil {
			return err
		}

		*b = BookingRef(shared.FirstNonEmpty(populated.BookingReference, populated.ID, populated.MongoID))

		return nil
	}

	var plain *string
	if err := json.Unmarshal(trimmed, &plain); err != nil {
		return err
	}

	if plain != nil {
		*b = BookingRef(*plain)
	}

	return nil
}

type Record struct {
	ID                     string      `json:"id"`
	MongoID                string      `json:"_id"`
	BookingID              BookingRef  `json:"bookingId"`
	GuestName              string      `json:"guestName"`
	Amount                 gDto.Number `json:"amount"`
	PaymentDate            string      `json:"paymentDate"`
	Date                   string      `json:"date"`
	PaymentMethod          string      `json:"paymentMethod"`
	Method                 string      `json:"method"`
	Status                 string      `json:"status"`
	ReferenceTransactionID string      `json:"referenceTransactionId"`
	Reference              string      `json:"reference"`
	Description            string      `json:"description"`
}

func (r Record) ToModel() model.Payment {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.StatusPending
	}

	return model.Payment{
		ID:          shared.FirstNonEmpty(r.ID, r.MongoID),
		BookingID:   string(r.BookingID),
		GuestName:   r.GuestName,
		Amount:      r.Amount.Float(),
		Date:        shared.FirstNonEmpty(r.PaymentDate, r.Date),
		Method:      shared.FirstNonEmpty(r.PaymentMethod, r.Method),
		Status:      status,
		Reference:   shared.FirstNonEmpty(r.ReferenceTransactionID, r.Reference),
		Description: r.Description,
	}
}

func RecordsToModels(records []Record) []model.Payment {
	payments := make([]model.Payment, len(records))
	for i, record := range records {
		payments[i] = record.ToModel()
	}

	return payments
}
