package quote

import (
	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/domains/booking/model"
	"homestay/internal/form"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/timezone"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		config: cfg,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/quotes", handler.CreateQuote)
	router.Get("/accommodations", handler.GetAccommodations)
}

type QuoteRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// CreateQuote prices a stay with the same rules the booking form applies.
// @Summary Price a stay
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Dates and guests"
// @Success 200 {object} response.Data[form.Quote]
// @Failure 422 {object} response.Error
// @Router /v1/quotes [post]
func (handler *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuote")
	defer scope.End()

	var req QuoteRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookingForm := form.NewBookingForm(timezone.Now)
	bookingForm.Fill(map[string]string{
		form.FieldCheckIn:  req.CheckIn,
		form.FieldCheckOut: req.CheckOut,
		form.FieldGuests:   strconv.Itoa(req.Guests),
	})

	fields := map[string]string{}

	for _, field := range []string{form.FieldCheckIn, form.FieldCheckOut, form.FieldGuests} {
		if msg := bookingForm.Blur(field); msg != "" {
			fields[field] = msg
		}
	}

	if len(fields) > 0 {
		err := failure.Validation(form.SubmitErrorMessage, fields)

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quote, _ := bookingForm.Quote(handler.config.Pricing.PerPersonNightlyRate)

	response.WithJSON(w, http.StatusOK, quote)
}

// GetAccommodations
// @Summary List accommodation types
// @Tags Quote
// @Produce json
// @Success 200 {object} response.Data[[]model.Accommodation]
// @Router /v1/accommodations [get]
func (handler *Handler) GetAccommodations(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, model.Catalog)
}
