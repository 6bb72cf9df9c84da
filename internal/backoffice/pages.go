package backoffice

import (
	"context"
	"homestay/infras/otel"
	"homestay/internal/client"
	bookingModel "homestay/internal/domains/booking/model"
	bookingService "homestay/internal/domains/booking/service"
	contactModel "homestay/internal/domains/contact/model"
	contactService "homestay/internal/domains/contact/service"
	guestModel "homestay/internal/domains/guest/model"
	guestService "homestay/internal/domains/guest/service"
	paymentModel "homestay/internal/domains/payment/model"
	paymentService "homestay/internal/domains/payment/service"
	reviewModel "homestay/internal/domains/review/model"
	reviewService "homestay/internal/domains/review/service"
	"homestay/shared/dto"
)

const (
	ActionConfirm  = "confirm"
	ActionCancel   = "cancel"
	ActionDelete   = "delete"
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionMarkRead = "read"
)

func fetcher[T any](list func(context.Context, dto.ListParams) client.Result[[]T]) func(context.Context, dto.ListParams) ([]T, error) {
	return func(ctx context.Context, params dto.ListParams) ([]T, error) {
		res := list(ctx, params)
		if !res.Success {
			return nil, res.Err()
		}

		return res.Data, nil
	}
}

func runner[R any](call func(context.Context, string) client.Result[R]) func(context.Context, string) error {
	return func(ctx context.Context, id string) error {
		res := call(ctx, id)
		if !res.Success {
			return res.Err()
		}

		return nil
	}
}

// BookingFields is what the bookings search matches against.
func BookingFields(b bookingModel.Booking) []string {
	return []string{b.GuestName, b.Email, b.ID, b.Reference}
}

func GuestFields(g guestModel.Guest) []string {
	return []string{g.Name, g.Email, g.ID}
}

func PaymentFields(p paymentModel.Payment) []string {
	return []string{p.GuestName, p.BookingID, p.ID}
}

func ReviewFields(r reviewModel.Review) []string {
	return []string{r.Name, r.Location, r.Text}
}

func ContactFields(c contactModel.Contact) []string {
	return []string{c.Name, c.Email, c.Subject, c.Message}
}

func NewBookings(svc bookingService.Booking, confirmer Confirmer, otel otel.Otel) *Page[bookingModel.Booking] {
	withStatus := func(status string) func(bookingModel.Booking) bookingModel.Booking {
		return func(b bookingModel.Booking) bookingModel.Booking {
			b.Status = status

			return b
		}
	}

	return NewPage(Config[bookingModel.Booking]{
		Entity: bookingModel.EntityName,
		Fetch:  fetcher(svc.GetAll),
		ID:     func(b bookingModel.Booking) string { return b.ID },
		Search: BookingFields,
		Actions: []Action[bookingModel.Booking]{
			{Name: ActionConfirm, Run: runner(svc.Confirm), Patch: withStatus(bookingModel.StatusConfirmed)},
			{
				Name:    ActionCancel,
				Confirm: "Are you sure you want to cancel this booking?",
				Run:     runner(svc.Cancel),
				Patch:   withStatus(bookingModel.StatusCancelled),
			},
			{Name: ActionDelete, Confirm: "Are you sure you want to delete this booking?", Run: runner(svc.Delete), Removes: true},
		},
	}, confirmer, otel)
}

func NewGuests(svc guestService.Guest, confirmer Confirmer, otel otel.Otel) *Page[guestModel.Guest] {
	return NewPage(Config[guestModel.Guest]{
		Entity: guestModel.EntityName,
		Fetch:  fetcher(svc.GetAll),
		ID:     func(g guestModel.Guest) string { return g.ID },
		Search: GuestFields,
		Actions: []Action[guestModel.Guest]{
			{Name: ActionDelete, Confirm: "Are you sure you want to delete this guest?", Run: runner(svc.Delete), Removes: true},
		},
	}, confirmer, otel)
}

func NewPayments(svc paymentService.Payment, confirmer Confirmer, otel otel.Otel) *Page[paymentModel.Payment] {
	return NewPage(Config[paymentModel.Payment]{
		Entity: paymentModel.EntityName,
		Fetch:  fetcher(svc.GetAll),
		ID:     func(p paymentModel.Payment) string { return p.ID },
		Search: PaymentFields,
		Actions: []Action[paymentModel.Payment]{
			{Name: ActionDelete, Confirm: "Are you sure you want to delete this payment record?", Run: runner(svc.Delete), Removes: true},
		},
	}, confirmer, otel)
}

// PaymentTotals sums revenue and outstanding amounts over the fetched page.
func PaymentTotals(page *Page[paymentModel.Payment]) paymentModel.Totals {
	return paymentModel.Summarize(page.Items())
}

func NewReviews(svc reviewService.Review, confirmer Confirmer, otel otel.Otel) *Page[reviewModel.Review] {
	withStatus := func(status string) func(reviewModel.Review) reviewModel.Review {
		return func(r reviewModel.Review) reviewModel.Review {
			r.Status = status

			return r
		}
	}

	return NewPage(Config[reviewModel.Review]{
		Entity: reviewModel.EntityName,
		Fetch:  fetcher(svc.GetAll),
		ID:     func(r reviewModel.Review) string { return r.ID },
		Search: ReviewFields,
		Actions: []Action[reviewModel.Review]{
			{Name: ActionApprove, Run: runner(svc.Approve), Patch: withStatus(reviewModel.StatusApproved)},
			{
				Name:    ActionReject,
				Confirm: "Are you sure you want to reject this review?",
				Run:     runner(svc.Reject),
				Patch:   withStatus(reviewModel.StatusRejected),
			},
			{Name: ActionDelete, Confirm: "Are you sure you want to delete this review?", Run: runner(svc.Delete), Removes: true},
		},
	}, confirmer, otel)
}

// RatingFilter keeps reviews with exactly rating stars. 0 keeps everything.
func RatingFilter(rating int) func(reviewModel.Review) bool {
	if rating == 0 {
		return nil
	}

	return func(r reviewModel.Review) bool { return r.Rating == rating }
}

func AverageRating(page *Page[reviewModel.Review]) float64 {
	return reviewModel.AverageRating(page.Items())
}

func NewContacts(svc contactService.Contact, confirmer Confirmer, otel otel.Otel) *Page[contactModel.Contact] {
	return NewPage(Config[contactModel.Contact]{
		Entity: contactModel.EntityName,
		Fetch:  fetcher(svc.GetAll),
		ID:     func(c contactModel.Contact) string { return c.ID },
		Search: ContactFields,
		Actions: []Action[contactModel.Contact]{
			{
				Name: ActionMarkRead,
				Run:  runner(svc.MarkAsRead),
				Patch: func(c contactModel.Contact) contactModel.Contact {
					c.Status = contactModel.StatusRead

					return c
				},
			},
			{Name: ActionDelete, Confirm: "Are you sure you want to delete this message?", Run: runner(svc.Delete), Removes: true},
		},
	}, confirmer, otel)
}

func ContactCounts(page *Page[contactModel.Contact]) contactModel.Counts {
	return contactModel.Count(page.Items())
}
