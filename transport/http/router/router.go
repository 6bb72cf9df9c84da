package router

import (
	"homestay/internal/handlers/admin"
	"homestay/internal/handlers/booking"
	"homestay/internal/handlers/contact"
	"homestay/internal/handlers/guest"
	"homestay/internal/handlers/handoff"
	"homestay/internal/handlers/payment"
	"homestay/internal/handlers/quote"
	"homestay/internal/handlers/review"
	"homestay/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Admin   admin.Handler
	Booking booking.Handler
	Contact contact.Handler
	Guest   guest.Handler
	Handoff handoff.Handler
	Payment payment.Handler
	Quote   quote.Handler
	Review  review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Session        middleware.Session
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Quote.Router(routerGroup)
		r.DomainHandlers.Handoff.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			r.DomainHandlers.Admin.Router(adminGroup)

			adminGroup.Group(func(guarded chi.Router) {
				guarded.Use(r.Session.Admin)

				r.DomainHandlers.Admin.AdminRouter(guarded)
				r.DomainHandlers.Booking.AdminRouter(guarded)
				r.DomainHandlers.Guest.AdminRouter(guarded)
				r.DomainHandlers.Payment.AdminRouter(guarded)
				r.DomainHandlers.Review.AdminRouter(guarded)
				r.DomainHandlers.Contact.AdminRouter(guarded)
			})
		})
	})
}

func New(domainHandlers DomainHandlers, session middleware.Session) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Session:        session,
	}
}
