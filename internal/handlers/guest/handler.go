package guest

import (
	"homestay/infras/otel"
	"homestay/internal/backoffice"
	"homestay/internal/domains/guest/model/dto"
	"homestay/internal/domains/guest/service"
	"homestay/internal/form"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	"homestay/shared/timezone"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AdminRouter mounts the guest register. Guests are back-office only.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/statistics", handler.GetGuestStatistics)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest
// @Summary Add a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest"
// @Success 201 {object} response.Data[model.Guest]
// @Failure 422 {object} response.Error
// @Router /v1/admin/guests [post]
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	var req dto.CreateGuestRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	guestForm := form.NewGuestForm(timezone.Now)
	guestForm.LoadRequest(req)

	if err := guestForm.Err(); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Create(ctx, guestForm.ToCreateRequest())
	if !res.Success {
		logger.FromContext(ctx).Error().Err(res.Err()).Msg("failed to create guest")
	}

	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusCreated, res)
}

// GetGuests
// @Summary List guests
// @Tags Guest
// @Produce json
// @Param status query string false "active, current, upcoming, past or all"
// @Param search query string false "Matches name, email or id"
// @Success 200 {object} response.Data[[]model.Guest]
// @Router /v1/admin/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res := handler.service.GetAll(ctx, queryParams.ListParams)
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	response.WithJSON(w, http.StatusOK, backoffice.Search(res.Data, queryParams.Search, backoffice.GuestFields))
}

func (handler *Handler) GetGuestStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestStatistics")
	defer scope.End()

	res := handler.service.GetStatistics(ctx)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	res := handler.service.GetByID(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	var req dto.UpdateGuestRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	res := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
