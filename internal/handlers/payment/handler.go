package payment

import (
	"homestay/infras/otel"
	"homestay/internal/backoffice"
	"homestay/internal/domains/payment/model"
	"homestay/internal/domains/payment/model/dto"
	"homestay/internal/domains/payment/service"
	"homestay/internal/form"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/statistics", handler.GetPaymentStatistics)
		routerGroup.Get("/booking/{bookingId}", handler.GetPaymentsByBookingID)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Put("/{id}", handler.UpdatePayment)
		routerGroup.Delete("/{id}", handler.DeletePayment)
	})
}

// CreatePayment records a payment; new entries are stored as completed.
// @Summary Record a payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} response.Data[model.Payment]
// @Failure 422 {object} response.Error
// @Router /v1/admin/payments [post]
func (handler *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	var req dto.CreatePaymentRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	paymentForm := form.NewPaymentForm()
	paymentForm.LoadRequest(req)

	if err := paymentForm.Err(); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Create(ctx, paymentForm.ToCreateRequest())
	if !res.Success {
		logger.FromContext(ctx).Error().Err(res.Err()).Msg("failed to record payment")
	}

	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusCreated, res)
}

// PaymentsResponse carries the list with its revenue and outstanding totals.
type PaymentsResponse struct {
	Payments []model.Payment `json:"payments"`
	Totals   model.Totals    `json:"totals"`
}

// GetPayments
// @Summary List payments
// @Tags Payment
// @Produce json
// @Param status query string false "pending, completed or all"
// @Param search query string false "Matches guest name, booking id or id"
// @Success 200 {object} response.Data[PaymentsResponse]
// @Router /v1/admin/payments [get]
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res := handler.service.GetAll(ctx, queryParams.ListParams)
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	response.WithJSON(w, http.StatusOK, PaymentsResponse{
		Payments: backoffice.Search(res.Data, queryParams.Search, backoffice.PaymentFields),
		Totals:   model.Summarize(res.Data),
	})
}

// GetPaymentStatistics
// @Summary Payment statistics
// @Tags Payment
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} response.Data[gDto.Statistics]
// @Router /v1/admin/payments/statistics [get]
func (handler *Handler) GetPaymentStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentStatistics")
	defer scope.End()

	params := dto.StatisticsParams{
		StartDate: r.URL.Query().Get(constant.RequestParamStartDate),
		EndDate:   r.URL.Query().Get(constant.RequestParamEndDate),
	}

	res := handler.service.GetStatistics(ctx, params)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) GetPaymentsByBookingID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByBookingID")
	defer scope.End()

	res := handler.service.GetByBookingID(ctx, chi.URLParam(r, constant.RequestParamBookingID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	res := handler.service.GetByID(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	var req dto.UpdatePaymentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res := handler.service.Delete(ctx, id)
	if !res.Success {
		scope.TraceError(res.Err())
		logger.FromContext(ctx).Error().Err(res.Err()).Str("id", id).Msg("failed to delete payment")

		response.WithError(w, res.Err())

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment deleted successfully")
}
