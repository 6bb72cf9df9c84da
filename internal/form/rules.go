package form

import (
	"fmt"
	"homestay/internal/domains/booking/model"
	paymentModel "homestay/internal/domains/payment/model"
	"homestay/shared/timezone"
	"homestay/shared/validator"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MaxGuests = 20

	msgEmailRequired = "Email is required"
	msgEmailInvalid  = "Please enter a valid email address"
	msgPhoneRequired = "Phone number is required"
	msgPhoneInvalid  = "Please enter a valid 10-digit phone number"

	msgCheckInRequired  = "Check-in date is required"
	msgCheckInInvalid   = "Please enter a valid check-in date"
	msgCheckInPast      = "Check-in date cannot be in the past"
	msgCheckOutRequired = "Check-out date is required"
	msgCheckOutInvalid  = "Please enter a valid check-out date"
	msgCheckOutBefore   = "Check-out date must be after check-in date"

	msgGuestsInvalid = "Please enter a valid number of guests"
	msgGuestsMin     = "Number of guests must be at least 1"
	msgGuestsMax     = "For groups larger than 20 guests, please contact us directly"

	msgAccommodationRequired = "Please select an accommodation type"
	msgAccommodationInvalid  = "Please select a valid accommodation type"

	msgRatingInvalid = "Please select a rating between 1 and 5"

	msgAmountInvalid = "Please enter a valid amount"
	msgAmountMin     = "Amount must be greater than 0"
	msgMethodInvalid = "Please select a valid payment method"
)

// Clock returns the current time. Date rules compare against its calendar day.
type Clock func() time.Time

// Name checks a person's name: 3 to 50 characters, letters and spaces only.
func Name(label string) Rule {
	return func(value string, _ map[string]string) string {
		value = strings.TrimSpace(value)

		switch {
		case !validator.Check(value, "min=3"):
			return label + " must be at least 3 characters long"
		case !validator.Check(value, "max=50"):
			return label + " must not exceed 50 characters"
		case !validator.Check(value, "personname"):
			return label + " should only contain letters and spaces"
		}

		return ""
	}
}

func Email(value string, _ map[string]string) string {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return msgEmailRequired
	case !validator.Check(value, "looseemail"):
		return msgEmailInvalid
	}

	return ""
}

func Phone(value string, _ map[string]string) string {
	switch {
	case strings.TrimSpace(value) == "":
		return msgPhoneRequired
	case !validator.Check(value, "phone"):
		return msgPhoneInvalid
	}

	return ""
}

// CheckIn rejects dates before today's calendar day.
func CheckIn(clock Clock) Rule {
	return func(value string, _ map[string]string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return msgCheckInRequired
		}

		checkIn, err := timezone.ParseDate(value)
		if err != nil {
			return msgCheckInInvalid
		}

		if checkIn.Before(timezone.StartOfDay(clock())) {
			return msgCheckInPast
		}

		return ""
	}
}

// CheckOut must fall strictly after the value of checkInField when that holds a valid date.
func CheckOut(checkInField string) Rule {
	return func(value string, values map[string]string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return msgCheckOutRequired
		}

		checkOut, err := timezone.ParseDate(value)
		if err != nil {
			return msgCheckOutInvalid
		}

		checkIn, err := timezone.ParseDate(strings.TrimSpace(values[checkInField]))
		if err != nil {
			return ""
		}

		if !checkOut.After(checkIn) {
			return msgCheckOutBefore
		}

		return ""
	}
}

// Guests accepts 1 to MaxGuests. Larger groups are told to get in touch instead of being clamped.
func Guests(value string, _ map[string]string) string {
	guests, err := strconv.Atoi(strings.TrimSpace(value))

	switch {
	case err != nil:
		return msgGuestsInvalid
	case !validator.Check(guests, "gte=1"):
		return msgGuestsMin
	case !validator.Check(guests, fmt.Sprintf("lte=%d", MaxGuests)):
		return msgGuestsMax
	}

	return ""
}

func Accommodation(value string, _ map[string]string) string {
	if strings.TrimSpace(value) == "" {
		return msgAccommodationRequired
	}

	if _, ok := model.LookupAccommodation(value); !ok {
		return msgAccommodationInvalid
	}

	return ""
}

// Required fails with "<label> is required" on blank input.
func Required(label string) Rule {
	return func(value string, _ map[string]string) string {
		if strings.TrimSpace(value) == "" {
			return label + " is required"
		}

		return ""
	}
}

// Length bounds the trimmed text. min 0 makes the field optional; optional fields are only
// checked against min when not blank.
func Length(label string, minLen, maxLen int, optional bool) Rule {
	return func(value string, _ map[string]string) string {
		value = strings.TrimSpace(value)

		if optional && value == "" {
			return ""
		}

		if minLen > 0 && !validator.Check(value, fmt.Sprintf("min=%d", minLen)) {
			return fmt.Sprintf("%s must be at least %d characters long", label, minLen)
		}

		if !validator.Check(value, fmt.Sprintf("max=%d", maxLen)) {
			return fmt.Sprintf("%s must not exceed %d characters", label, maxLen)
		}

		return ""
	}
}

// All returns the first failing rule's message.
func All(rules ...Rule) Rule {
	return func(value string, values map[string]string) string {
		for _, rule := range rules {
			if msg := rule(value, values); msg != "" {
				return msg
			}
		}

		return ""
	}
}

func Rating(value string, _ map[string]string) string {
	rating, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || !validator.Check(rating, "gte=1,lte=5") {
		return msgRatingInvalid
	}

	return ""
}

func Amount(value string, _ map[string]string) string {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)

	switch {
	case err != nil, math.IsInf(amount, 0), math.IsNaN(amount):
		return msgAmountInvalid
	case !validator.Check(amount, "gt=0"):
		return msgAmountMin
	}

	return ""
}

func PaymentMethod(value string, _ map[string]string) string {
	if !paymentModel.IsMethod(value) {
		return msgMethodInvalid
	}

	return ""
}

// Date requires a parseable calendar date.
func Date(label string) Rule {
	return func(value string, _ map[string]string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return label + " is required"
		}

		if _, err := timezone.ParseDate(value); err != nil {
			return "Please enter a valid " + strings.ToLower(label)
		}

		return ""
	}
}
