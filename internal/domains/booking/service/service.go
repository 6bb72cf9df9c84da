package service

import (
	"context"
	"encoding/json"
	"homestay/infras/otel"
	"homestay/internal/client"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"net/http"
	"net/url"
)

const (
	endpoint = "/booking"
	listKey  = "bookings"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) client.Result[dto.CreateBookingResponse]
	GetByReference(ctx context.Context, reference string) client.Result[model.Booking]
	GetAll(ctx context.Context, params gDto.ListParams) client.Result[[]model.Booking]
	// GetByID fetches one booking. A non-empty email lets a guest read their own booking.
	GetByID(ctx context.Context, id, email string) client.Result[model.Booking]
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) client.Result[model.Booking]
	Confirm(ctx context.Context, id string) client.Result[model.Booking]
	Cancel(ctx context.Context, id string) client.Result[model.Booking]
	Delete(ctx context.Context, id string) client.Result[json.RawMessage]
}

type serviceImpl struct {
	client client.Client
	otel   otel.Otel
}

func New(c client.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		client: c,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res client.Result[dto.CreateBookingResponse]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return client.Request[dto.CreateBookingResponse](ctx, s.client, endpoint, client.Options{
		Method: http.MethodPost,
		Body:   req,
	})
}

func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res client.Result[model.Booking]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByReference")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/reference/"+url.PathEscape(reference), client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams) (res client.Result[[]model.Booking]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	raw := s.client.Do(ctx, client.Query(endpoint, params), client.Options{Method: http.MethodGet})

	return client.Map(client.List[dto.Record](raw, listKey), dto.RecordsToModels)
}

func (s *serviceImpl) GetByID(ctx context.Context, id, email string) (res client.Result[model.Booking]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	path := endpoint + "/" + url.PathEscape(id)
	if email != "" {
		path = gDto.WithQuery(path, url.Values{constant.RequestParamEmail: {email}})
	}

	return s.one(ctx, path, client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res client.Result[model.Booking]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodPut, Body: req})
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res client.Result[model.Booking]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id)+"/confirm", client.Options{Method: http.MethodPatch})
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res client.Result[model.Booking]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id)+"/cancel", client.Options{Method: http.MethodPatch})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res client.Result[json.RawMessage]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.client.Do(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodDelete})
}

func (s *serviceImpl) one(ctx context.Context, path string, opts client.Options) client.Result[model.Booking] {
	return client.Map(client.Request[dto.Record](ctx, s.client, path, opts), dto.Record.ToModel)
}
