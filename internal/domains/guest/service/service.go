package service

import (
	"context"
	"encoding/json"
	"homestay/infras/otel"
	"homestay/internal/client"
	"homestay/internal/domains/guest/model"
	"homestay/internal/domains/guest/model/dto"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/timezone"
	"net/http"
	"net/url"
	"time"
)

const (
	endpoint = "/guest"
	listKey  = "guests"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) client.Result[model.Guest]
	GetAll(ctx context.Context, params gDto.ListParams) client.Result[[]model.Guest]
	GetStatistics(ctx context.Context) client.Result[gDto.Statistics]
	GetByID(ctx context.Context, id string) client.Result[model.Guest]
	Update(ctx context.Context, id string, req dto.UpdateGuestRequest) client.Result[model.Guest]
	Delete(ctx context.Context, id string) client.Result[json.RawMessage]
}

type serviceImpl struct {
	client client.Client
	otel   otel.Otel
	now    func() time.Time
}

func New(c client.Client, otel otel.Otel) Guest {
	return NewWithClock(c, otel, timezone.Now)
}

// NewWithClock is New with the clock used to derive visit status.
func NewWithClock(c client.Client, otel otel.Otel, now func() time.Time) Guest {
	return &serviceImpl{
		client: c,
		otel:   otel,
		now:    now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res client.Result[model.Guest]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint, client.Options{Method: http.MethodPost, Body: req})
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams) (res client.Result[[]model.Guest]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	raw := s.client.Do(ctx, client.Query(endpoint, params), client.Options{Method: http.MethodGet})
	today := s.now()

	return client.Map(client.List[dto.Record](raw, listKey), func(records []dto.Record) []model.Guest {
		return dto.RecordsToModels(records, today)
	})
}

func (s *serviceImpl) GetStatistics(ctx context.Context) (res client.Result[gDto.Statistics]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return client.Request[gDto.Statistics](ctx, s.client, endpoint+"/statistics", client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res client.Result[model.Guest]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (res client.Result[model.Guest]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodPut, Body: req})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res client.Result[json.RawMessage]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.client.Do(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodDelete})
}

func (s *serviceImpl) one(ctx context.Context, path string, opts client.Options) client.Result[model.Guest] {
	today := s.now()

	return client.Map(client.Request[dto.Record](ctx, s.client, path, opts), func(record dto.Record) model.Guest {
		return record.ToModel(today)
	})
}
