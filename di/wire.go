//go:build wireinject
// +build wireinject

package di

import (
	"homestay/config"
	"homestay/infras/jwt"
	"homestay/infras/otel"
	"homestay/infras/redis"
	"homestay/internal/auth"
	"homestay/internal/backoffice"
	"homestay/internal/client"
	"homestay/internal/handoff"
	"homestay/shared/cache"
	"homestay/transport/http"
	"homestay/transport/http/middleware"
	"homestay/transport/http/router"
	"io"

	adminService "homestay/internal/domains/admin/service"
	bookingService "homestay/internal/domains/booking/service"
	contactService "homestay/internal/domains/contact/service"
	guestService "homestay/internal/domains/guest/service"
	paymentService "homestay/internal/domains/payment/service"
	reviewService "homestay/internal/domains/review/service"

	adminHandler "homestay/internal/handlers/admin"
	bookingHandler "homestay/internal/handlers/booking"
	contactHandler "homestay/internal/handlers/contact"
	guestHandler "homestay/internal/handlers/guest"
	handoffHandler "homestay/internal/handlers/handoff"
	paymentHandler "homestay/internal/handlers/payment"
	quoteHandler "homestay/internal/handlers/quote"
	reviewHandler "homestay/internal/handlers/review"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	handoff.New,
)

// sessionState keeps each caller's token and session flags in redis under its session id,
// so every gateway instance sees the same sessions.
var sessionState = wire.NewSet(
	auth.NewRedisStorage,
	auth.NewTokenStore,
	auth.NewSession,
	client.New,
)

// consoleState keeps them in process memory for the lifetime of the console.
var consoleState = wire.NewSet(
	auth.NewMemoryStorage,
	auth.NewTokenStore,
	auth.NewSession,
	client.New,
	wire.InterfaceValue(new(cache.RedisCache), cache.Noop{}),
)

var domains = wire.NewSet(
	adminService.New,
	bookingService.New,
	contactService.New,
	guestService.New,
	paymentService.New,
	reviewService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adminHandler.New,
	bookingHandler.New,
	contactHandler.New,
	guestHandler.New,
	handoffHandler.New,
	paymentHandler.New,
	quoteHandler.New,
	reviewHandler.New,
	router.New,
)

var pages = wire.NewSet(
	backoffice.NewPrompter,
	wire.Bind(new(backoffice.Confirmer), new(*backoffice.Prompter)),
	backoffice.NewBookings,
	backoffice.NewGuests,
	backoffice.NewPayments,
	backoffice.NewReviews,
	backoffice.NewContacts,
	backoffice.NewConsole,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		sessionState,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeConsole(out io.Writer) *backoffice.Console {
	wire.Build(
		configurations,
		otel.New,
		jwt.New,
		consoleState,
		domains,
		pages,
	)

	return &backoffice.Console{}
}
