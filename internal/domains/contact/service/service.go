package service

import (
	"context"
	"encoding/json"
	"homestay/infras/otel"
	"homestay/internal/client"
	"homestay/internal/domains/contact/model"
	"homestay/internal/domains/contact/model/dto"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"net/http"
	"net/url"
)

const (
	endpoint = "/contact"
	listKey  = "contacts"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) client.Result[model.Contact]
	GetAll(ctx context.Context, params gDto.ListParams) client.Result[[]model.Contact]
	GetByID(ctx context.Context, id string) client.Result[model.Contact]
	Update(ctx context.Context, id string, req dto.UpdateContactRequest) client.Result[model.Contact]
	MarkAsRead(ctx context.Context, id string) client.Result[model.Contact]
	Delete(ctx context.Context, id string) client.Result[json.RawMessage]
}

type serviceImpl struct {
	client client.Client
	otel   otel.Otel
}

func New(c client.Client, otel otel.Otel) Contact {
	return &serviceImpl{
		client: c,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res client.Result[model.Contact]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint, client.Options{Method: http.MethodPost, Body: req})
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams) (res client.Result[[]model.Contact]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	raw := s.client.Do(ctx, client.Query(endpoint, params), client.Options{Method: http.MethodGet})

	return client.Map(client.List[dto.Record](raw, listKey), dto.RecordsToModels)
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res client.Result[model.Contact]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateContactRequest) (res client.Result[model.Contact]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodPut, Body: req})
}

func (s *serviceImpl) MarkAsRead(ctx context.Context, id string) (res client.Result[model.Contact]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.MarkAsRead")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id)+"/read", client.Options{Method: http.MethodPatch})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res client.Result[json.RawMessage]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.client.Do(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodDelete})
}

func (s *serviceImpl) one(ctx context.Context, path string, opts client.Options) client.Result[model.Contact] {
	return client.Map(client.Request[dto.Record](ctx, s.client, path, opts), dto.Record.ToModel)
}
