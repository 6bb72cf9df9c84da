package service

import (
	"context"
	"encoding/json"
	"homestay/infras/otel"
	"homestay/internal/client"
	"homestay/internal/domains/payment/model"
	"homestay/internal/domains/payment/model/dto"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"net/http"
	"net/url"
)

const (
	endpoint = "/payment"
	listKey  = "payments"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) client.Result[model.Payment]
	GetAll(ctx context.Context, params gDto.ListParams) client.Result[[]model.Payment]
	GetStatistics(ctx context.Context, params dto.StatisticsParams) client.Result[gDto.Statistics]
	GetByBookingID(ctx context.Context, bookingID string) client.Result[[]model.Payment]
	GetByID(ctx context.Context, id string) client.Result[model.Payment]
	Update(ctx context.Context, id string, req dto.UpdatePaymentRequest) client.Result[model.Payment]
	Delete(ctx context.Context, id string) client.Result[json.RawMessage]
}

type serviceImpl struct {
	client client.Client
	otel   otel.Otel
}

func New(c client.Client, otel otel.Otel) Payment {
	return &serviceImpl{
		client: c,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res client.Result[model.Payment]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint, client.Options{Method: http.MethodPost, Body: req})
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams) (res client.Result[[]model.Payment]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.list(ctx, client.Query(endpoint, params))
}

func (s *serviceImpl) GetStatistics(ctx context.Context, params dto.StatisticsParams) (res client.Result[gDto.Statistics]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	values := url.Values{}
	if params.StartDate != "" {
		values.Set(constant.RequestParamStartDate, params.StartDate)
	}

	if params.EndDate != "" {
		values.Set(constant.RequestParamEndDate, params.EndDate)
	}

	return client.Request[gDto.Statistics](ctx, s.client, gDto.WithQuery(endpoint+"/statistics", values), client.Options{Method: http.MethodGet})
}

// GetByBookingID lists the payments recorded against one booking.
func (s *serviceImpl) GetByBookingID(ctx context.Context, bookingID string) (res client.Result[[]model.Payment]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetByBookingID")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.list(ctx, endpoint+"/booking/"+url.PathEscape(bookingID))
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res client.Result[model.Payment]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdatePaymentRequest) (res client.Result[model.Payment]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodPut, Body: req})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res client.Result[json.RawMessage]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.client.Do(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodDelete})
}

func (s *serviceImpl) one(ctx context.Context, path string, opts client.Options) client.Result[model.Payment] {
	return client.Map(client.Request[dto.Record](ctx, s.client, path, opts), dto.Record.ToModel)
}

func (s *serviceImpl) list(ctx context.Context, path string) client.Result[[]model.Payment] {
	raw := s.client.Do(ctx, path, client.Options{Method: http.MethodGet})

	return client.Map(client.List[dto.Record](raw, listKey), dto.RecordsToModels)
}
