package model

import "strings"

const (
	EntityName = "payment"

	StatusPending   = "pending"
	StatusCompleted = "completed"
)

const (
	MethodUPI          = "UPI"
	MethodCreditCard   = "Credit Card"
	MethodDebitCard    = "Debit Card"
	MethodBankTransfer = "Bank Transfer"
	MethodCash         = "Cash"
	MethodOther        = "Other"
)

// Methods lists the accepted payment methods in display order.
var Methods = []string{MethodUPI, MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodCash, MethodOther}

// IsMethod reports whether value is one of Methods, ignoring case.
func IsMethod(value string) bool {
	_, ok := LookupMethod(value)

	return ok
}

// LookupMethod returns the canonical spelling of a payment method.
func LookupMethod(value string) (string, bool) {
	for _, method := range Methods {
		if strings.EqualFold(method, strings.TrimSpace(value)) {
			return method, true
		}
	}

	return "", false
}

type Payment struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	GuestName   string  `json:"guestName"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
	Reference   string  `json:"reference,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Totals sums completed payments as revenue and pending ones as outstanding.
type Totals struct {
	Revenue float64 `json:"revenue"`
	Pending float64 `json:"pending"`
}

func Summarize(payments []Payment) Totals {
	var totals Totals

	for _, payment := range payments {
		switch payment.Status {
		case StatusCompleted:
			totals.Revenue += payment.Amount
		case StatusPending:
			totals.Pending += payment.Amount
		}
	}

	return totals
}
