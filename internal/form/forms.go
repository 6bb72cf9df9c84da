package form

import (
	"homestay/internal/domains/booking/model"
	bookingDto "homestay/internal/domains/booking/model/dto"
	contactDto "homestay/internal/domains/contact/model/dto"
	guestDto "homestay/internal/domains/guest/model/dto"
	paymentModel "homestay/internal/domains/payment/model"
	paymentDto "homestay/internal/domains/payment/model/dto"
	reviewModel "homestay/internal/domains/review/model"
	reviewDto "homestay/internal/domains/review/model/dto"
	"homestay/shared/constant"
	"homestay/shared/timezone"
	"strconv"
	"strings"
)

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldCheckIn         = "checkIn"
	FieldCheckOut        = "checkOut"
	FieldGuests          = "guests"
	FieldAccommodation   = "accommodation"
	FieldSpecialRequests = "specialRequests"
	FieldSubject         = "subject"
	FieldMessage         = "message"
	FieldLocation        = "location"
	FieldRating          = "rating"
	FieldAddress         = "address"
	FieldVisitDate       = "visitDate"
	FieldNotes           = "notes"
	FieldBookingID       = "bookingId"
	FieldGuestName       = "guestName"
	FieldAmount          = "amount"
	FieldDate            = "date"
	FieldMethod          = "method"
	FieldReference       = "reference"
	FieldDescription     = "description"
)

type BookingForm struct{ *Form }

func NewBookingForm(clock Clock) *BookingForm {
	return &BookingForm{New(
		Field{Name: FieldName, Rule: Name("Name")},
		Field{Name: FieldEmail, Rule: Email},
		Field{Name: FieldPhone, Rule: Phone},
		Field{Name: FieldCheckIn, Rule: CheckIn(clock), Dependents: []string{FieldCheckOut}},
		Field{Name: FieldCheckOut, Rule: CheckOut(FieldCheckIn)},
		Field{Name: FieldGuests, Rule: Guests, Default: "1"},
		Field{Name: FieldAccommodation, Rule: Accommodation, Default: model.AccommodationGlamping},
		Field{Name: FieldSpecialRequests, Rule: Length("Special requests", 0, 500, true)},
	)}
}

func (f *BookingForm) ToCreateRequest() bookingDto.CreateBookingRequest {
	values := f.Values()
	guests, _ := strconv.Atoi(strings.TrimSpace(values[FieldGuests]))

	accommodation := strings.TrimSpace(values[FieldAccommodation])
	if entry, ok := model.LookupAccommodation(accommodation); ok {
		accommodation = entry.Code
	}

	return bookingDto.CreateBookingRequest{
		FullName:          strings.TrimSpace(values[FieldName]),
		Email:             strings.TrimSpace(values[FieldEmail]),
		PhoneNumber:       strings.TrimSpace(values[FieldPhone]),
		CheckInDate:       strings.TrimSpace(values[FieldCheckIn]),
		CheckOutDate:      strings.TrimSpace(values[FieldCheckOut]),
		NumberOfGuests:    guests,
		AccommodationType: accommodation,
		SpecialRequests:   strings.TrimSpace(values[FieldSpecialRequests]),
	}
}

// Quote prices the current dates and guests. ok is false until both dates parse.
func (f *BookingForm) Quote(rate float64) (Quote, bool) {
	values := f.Values()

	checkIn, err := timezone.ParseDate(strings.TrimSpace(values[FieldCheckIn]))
	if err != nil {
		return Quote{}, false
	}

	checkOut, err := timezone.ParseDate(strings.TrimSpace(values[FieldCheckOut]))
	if err != nil {
		return Quote{}, false
	}

	guests, _ := strconv.Atoi(strings.TrimSpace(values[FieldGuests]))

	return NewQuote(checkIn, checkOut, guests, rate), true
}

type ContactForm struct{ *Form }

func NewContactForm() *ContactForm {
	return &ContactForm{New(
		Field{Name: FieldName, Rule: Name("Name")},
		Field{Name: FieldEmail, Rule: Email},
		Field{Name: FieldSubject, Rule: All(Required("Subject"), Length("Subject", 0, 100, false))},
		Field{Name: FieldMessage, Rule: All(Required("Message"), Length("Message", 0, 1000, false))},
	)}
}

func (f *ContactForm) ToCreateRequest() contactDto.CreateContactRequest {
	values := f.Values()

	return contactDto.CreateContactRequest{
		FullName: strings.TrimSpace(values[FieldName]),
		Email:    strings.TrimSpace(values[FieldEmail]),
		Subject:  strings.TrimSpace(values[FieldSubject]),
		Message:  strings.TrimSpace(values[FieldMessage]),
	}
}

type ReviewForm struct{ *Form }

func NewReviewForm() *ReviewForm {
	return &ReviewForm{New(
		Field{Name: FieldName, Rule: Name("Name")},
		Field{Name: FieldEmail, Rule: Email},
		Field{Name: FieldLocation, Rule: Length("Location", 2, 50, true)},
		Field{Name: FieldRating, Rule: Rating, Default: strconv.Itoa(reviewModel.MaxRating)},
		Field{Name: FieldMessage, Rule: Length("Review", 20, 1000, false)},
	)}
}

func (f *ReviewForm) ToCreateRequest() reviewDto.CreateReviewRequest {
	values := f.Values()
	rating, _ := strconv.Atoi(strings.TrimSpace(values[FieldRating]))

	location := strings.TrimSpace(values[FieldLocation])
	if location == "" {
		location = reviewModel.DefaultLocation
	}

	return reviewDto.CreateReviewRequest{
		FullName: strings.TrimSpace(values[FieldName]),
		Email:    strings.TrimSpace(values[FieldEmail]),
		Location: location,
		Review:   strings.TrimSpace(values[FieldMessage]),
		Rating:   rating,
	}
}

// GuestForm is the back-office "add guest" form. The visit date starts on today.
type GuestForm struct{ *Form }

func NewGuestForm(clock Clock) *GuestForm {
	today := timezone.Format(clock(), constant.DateOnlyFormat)

	return &GuestForm{New(
		Field{Name: FieldName, Rule: Name("Name")},
		Field{Name: FieldEmail, Rule: Email},
		Field{Name: FieldPhone, Rule: Phone},
		Field{Name: FieldAddress, Rule: Length("Address", 0, 200, true)},
		Field{Name: FieldVisitDate, Rule: Date("Visit date"), Default: today},
		Field{Name: FieldAccommodation, Rule: Accommodation, Default: model.AccommodationGlamping},
		Field{Name: FieldNotes, Rule: Length("Notes", 0, 500, true)},
	)}
}

func (f *GuestForm) ToCreateRequest() guestDto.CreateGuestRequest {
	values := f.Values()

	accommodation := strings.TrimSpace(values[FieldAccommodation])
	if entry, ok := model.LookupAccommodation(accommodation); ok {
		accommodation = entry.Code
	}

	return guestDto.CreateGuestRequest{
		FullName:          strings.TrimSpace(values[FieldName]),
		Email:             strings.TrimSpace(values[FieldEmail]),
		Phone:             strings.TrimSpace(values[FieldPhone]),
		Address:           strings.TrimSpace(values[FieldAddress]),
		VisitDate:         strings.TrimSpace(values[FieldVisitDate]),
		AccommodationType: accommodation,
		Notes:             strings.TrimSpace(values[FieldNotes]),
	}
}

// PaymentForm records a payment taken outside the system; new entries are completed.
type PaymentForm struct{ *Form }

func NewPaymentForm() *PaymentForm {
	return &PaymentForm{New(
		Field{Name: FieldBookingID, Rule: Required("Booking ID")},
		Field{Name: FieldGuestName, Rule: Required("Guest name")},
		Field{Name: FieldAmount, Rule: Amount},
		Field{Name: FieldDate, Rule: Date("Payment date")},
		Field{Name: FieldMethod, Rule: PaymentMethod, Default: paymentModel.MethodUPI},
		Field{Name: FieldReference},
		Field{Name: FieldDescription, Rule: Length("Description", 0, 500, true)},
	)}
}

func (f *PaymentForm) ToCreateRequest() paymentDto.CreatePaymentRequest {
	values := f.Values()
	amount, _ := strconv.ParseFloat(strings.TrimSpace(values[FieldAmount]), 64)

	method, ok := paymentModel.LookupMethod(values[FieldMethod])
	if !ok {
		method = strings.TrimSpace(values[FieldMethod])
	}

	return paymentDto.CreatePaymentRequest{
		BookingID:              strings.TrimSpace(values[FieldBookingID]),
		GuestName:              strings.TrimSpace(values[FieldGuestName]),
		Amount:                 amount,
		PaymentDate:            strings.TrimSpace(values[FieldDate]),
		PaymentMethod:          method,
		ReferenceTransactionID: strings.TrimSpace(values[FieldReference]),
		Description:            strings.TrimSpace(values[FieldDescription]),
		Status:                 paymentModel.StatusCompleted,
	}
}

// LoadRequest fills the form from an API payload so it can be validated like typed input.
func (f *BookingForm) LoadRequest(req bookingDto.CreateBookingRequest) {
	f.Fill(map[string]string{
		FieldName:            req.FullName,
		FieldEmail:           req.Email,
		FieldPhone:           req.PhoneNumber,
		FieldCheckIn:         req.CheckInDate,
		FieldCheckOut:        req.CheckOutDate,
		FieldGuests:          strconv.Itoa(req.NumberOfGuests),
		FieldAccommodation:   req.AccommodationType,
		FieldSpecialRequests: req.SpecialRequests,
	})
}

func (f *ContactForm) LoadRequest(req contactDto.CreateContactRequest) {
	f.Fill(map[string]string{
		FieldName:    req.FullName,
		FieldEmail:   req.Email,
		FieldSubject: req.Subject,
		FieldMessage: req.Message,
	})
}

func (f *ReviewForm) LoadRequest(req reviewDto.CreateReviewRequest) {
	f.Fill(map[string]string{
		FieldName:     req.FullName,
		FieldEmail:    req.Email,
		FieldLocation: req.Location,
		FieldRating:   strconv.Itoa(req.Rating),
		FieldMessage:  req.Review,
	})
}

func (f *GuestForm) LoadRequest(req guestDto.CreateGuestRequest) {
	values := map[string]string{
		FieldName:          req.FullName,
		FieldEmail:         req.Email,
		FieldPhone:         req.Phone,
		FieldAddress:       req.Address,
		FieldAccommodation: req.AccommodationType,
		FieldNotes:         req.Notes,
	}

	if req.VisitDate != "" {
		values[FieldVisitDate] = req.VisitDate
	}

	f.Fill(values)
}

func (f *PaymentForm) LoadRequest(req paymentDto.CreatePaymentRequest) {
	values := map[string]string{
		FieldBookingID:   req.BookingID,
		FieldGuestName:   req.GuestName,
		FieldAmount:      strconv.FormatFloat(req.Amount, 'f', -1, 64),
		FieldDate:        req.PaymentDate,
		FieldReference:   req.ReferenceTransactionID,
		FieldDescription: req.Description,
	}

	if req.PaymentMethod != "" {
		values[FieldMethod] = req.PaymentMethod
	}

	f.Fill(values)
}
