package handoff

import (
	"homestay/infras/otel"
	"homestay/internal/handoff"
	"homestay/shared/constant"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store handoff.Store
	otel  otel.Otel
}

func New(store handoff.Store, otel otel.Otel) Handler {
	return Handler{
		store: store,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quick-booking", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SaveQuickBooking)
		routerGroup.Get("/{id}", handler.TakeQuickBooking)
	})
}

type SaveResponse struct {
	ID string `json:"id"`
}

// TakeResponse is the saved selection and the booking form fields it prefills.
type TakeResponse struct {
	handoff.QuickBooking
	Values map[string]string `json:"values"`
}

// SaveQuickBooking stores the quick search widget's selection for the booking page.
// @Summary Save a quick booking selection
// @Tags QuickBooking
// @Accept json
// @Produce json
// @Param request body handoff.QuickBooking true "Selection"
// @Success 201 {object} response.Data[SaveResponse]
// @Router /v1/quick-booking [post]
func (handler *Handler) SaveQuickBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveQuickBooking")
	defer scope.End()

	var req handoff.QuickBooking
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.store.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, SaveResponse{ID: id})
}

// TakeQuickBooking returns the selection once; a second read is a 404.
// @Summary Consume a quick booking selection
// @Tags QuickBooking
// @Produce json
// @Param id path string true "Selection id"
// @Success 200 {object} response.Data[TakeResponse]
// @Failure 404 {object} response.Error
// @Router /v1/quick-booking/{id} [get]
func (handler *Handler) TakeQuickBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TakeQuickBooking")
	defer scope.End()

	quick, err := handler.store.Take(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, TakeResponse{QuickBooking: quick, Values: quick.Values()})
}
