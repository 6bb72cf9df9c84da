package booking

import (
	"context"
	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/backoffice"
	"homestay/internal/client"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/internal/domains/booking/service"
	"homestay/internal/form"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/logger"
	"homestay/shared/timezone"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/reference/{reference}", handler.GetBookingByReference)
	})
}

// AdminRouter mounts the back-office routes. The caller applies the session guard.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Patch("/{id}/cancel", handler.CancelBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBookingResponse is what a guest sees after submitting the booking form.
type CreateBookingResponse struct {
	BookingReference string     `json:"bookingReference"`
	ID               string     `json:"id,omitempty"`
	Quote            form.Quote `json:"quote"`
}

// CreateBooking validates the booking form and forwards it to the backend.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking form"
// @Success 201 {object} response.Data[CreateBookingResponse]
// @Failure 422 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookingForm := form.NewBookingForm(timezone.Now)
	bookingForm.LoadRequest(req)

	if err := bookingForm.Err(); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Debug().Interface("fields", failure.GetFields(err)).Msg("booking form rejected")

		response.WithError(w, err)

		return
	}

	quote, _ := bookingForm.Quote(handler.config.Pricing.PerPersonNightlyRate)

	res := handler.service.Create(ctx, bookingForm.ToCreateRequest())
	if !res.Success {
		err := res.Err()

		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	id := res.Data.ID
	if id == "" && res.Data.Booking != nil {
		id = res.Data.Booking.ToModel().ID
	}

	scope.AddEvent("Booking created " + res.Data.Reference())

	response.WithJSON(w, http.StatusCreated, CreateBookingResponse{
		BookingReference: res.Data.Reference(),
		ID:               id,
		Quote:            quote,
	})
}

// GetBookingByReference lets a guest look up their booking.
// @Summary Get a booking by reference
// @Tags Booking
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} response.Data[model.Booking]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/reference/{reference} [get]
func (handler *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	res := handler.service.GetByReference(ctx, chi.URLParam(r, constant.RequestParamReference))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

// GetBookings lists bookings. status is sent to the backend; search filters the fetched page.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param status query string false "pending, confirmed, cancelled or all"
// @Param search query string false "Matches guest name, email, id or reference"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[[]model.Booking]
// @Router /v1/admin/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res := handler.service.GetAll(ctx, queryParams.ListParams)
	if !res.Success {
		err := res.Err()

		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, backoffice.Search(res.Data, queryParams.Search, backoffice.BookingFields))
}

// GetBookingByID
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string false "Guest email"
// @Success 200 {object} response.Data[model.Booking]
// @Router /v1/admin/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	email := r.URL.Query().Get(constant.RequestParamEmail)

	res := handler.service.GetByID(ctx, id, email)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

// UpdateBooking
// @Summary Update a booking's status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update"
// @Success 200 {object} response.Data[model.Booking]
// @Router /v1/admin/bookings/{id} [put]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	var req dto.UpdateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

// ConfirmBooking
// @Summary Confirm a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.Booking]
// @Router /v1/admin/bookings/{id}/confirm [patch]
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, model.StatusConfirmed, handler.service.Confirm)
}

// CancelBooking
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.Booking]
// @Router /v1/admin/bookings/{id}/cancel [patch]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, model.StatusCancelled, handler.service.Cancel)
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, status string, call func(ctx context.Context, id string) client.Result[model.Booking]) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res := call(ctx, id)
	if !res.Success {
		err := res.Err()

		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("id", id).Str("status", status).Msg("failed to change booking status")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)
	scope.AddEvent("Booking " + id + " " + status + " by " + admin)

	response.WithResult(w, http.StatusOK, res)
}

// DeleteBooking
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Router /v1/admin/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res := handler.service.Delete(ctx, id)
	if !res.Success {
		err := res.Err()

		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)
	scope.AddEvent("Booking deleted by " + admin)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
