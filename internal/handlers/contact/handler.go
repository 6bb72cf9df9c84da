package contact

import (
	"homestay/infras/otel"
	"homestay/internal/backoffice"
	"homestay/internal/domains/contact/model/dto"
	"homestay/internal/domains/contact/service"
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
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contacts", handler.CreateContact)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Get("/{id}", handler.GetContactByID)
		routerGroup.Put("/{id}", handler.UpdateContact)
		routerGroup.Patch("/{id}/read", handler.MarkContactAsRead)
		routerGroup.Delete("/{id}", handler.DeleteContact)
	})
}

// CreateContact submits the public contact form.
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact form"
// @Success 201 {object} response.Data[model.Contact]
// @Failure 422 {object} response.Error
// @Router /v1/contacts [post]
func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	var req dto.CreateContactRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	contactForm := form.NewContactForm()
	contactForm.LoadRequest(req)

	if err := contactForm.Err(); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Create(ctx, contactForm.ToCreateRequest())
	if !res.Success {
		logger.FromContext(ctx).Error().Err(res.Err()).Msg("failed to send contact message")
	}

	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusCreated, res)
}

// GetContacts
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Param status query string false "new, read, replied or all"
// @Param search query string false "Matches name, email, subject or message"
// @Success 200 {object} response.Data[[]model.Contact]
// @Router /v1/admin/contacts [get]
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res := handler.service.GetAll(ctx, queryParams.ListParams)
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	response.WithJSON(w, http.StatusOK, backoffice.Search(res.Data, queryParams.Search, backoffice.ContactFields))
}

func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	res := handler.service.GetByID(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContact")
	defer scope.End()

	var req dto.UpdateContactRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

// MarkContactAsRead
// @Summary Mark a contact message as read
// @Tags Contact
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Data[model.Contact]
// @Router /v1/admin/contacts/{id}/read [patch]
func (handler *Handler) MarkContactAsRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkContactAsRead")
	defer scope.End()

	res := handler.service.MarkAsRead(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res := handler.service.Delete(ctx, id)
	if !res.Success {
		scope.TraceError(res.Err())
		logger.FromContext(ctx).Error().Err(res.Err()).Str("id", id).Msg("failed to delete contact")

		response.WithError(w, res.Err())

		return
	}

	response.WithMessage(w, http.StatusOK, "Contact deleted successfully")
}
