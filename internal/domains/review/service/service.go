package service

import (
	"context"
	"encoding/json"
	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/client"
	"homestay/internal/domains/review/model"
	"homestay/internal/domains/review/model/dto"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	endpoint = "/review"
	listKey  = "reviews"

	cacheGetApprovedReview = "review:approved"
	cacheReviewGeneration  = "review:generation"

	initialGeneration = "0"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) client.Result[model.Review]
	// GetApproved lists publicly visible reviews. Responses are cached until a moderation
	// action changes the set or the cache TTL passes.
	GetApproved(ctx context.Context, params gDto.ListParams) client.Result[[]model.Review]
	GetAll(ctx context.Context, params gDto.ListParams) client.Result[[]model.Review]
	GetByID(ctx context.Context, id string) client.Result[model.Review]
	Update(ctx context.Context, id string, req dto.UpdateReviewRequest) client.Result[model.Review]
	Approve(ctx context.Context, id string) client.Result[model.Review]
	Reject(ctx context.Context, id string) client.Result[model.Review]
	Delete(ctx context.Context, id string) client.Result[json.RawMessage]
}

type serviceImpl struct {
	client client.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(c client.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		client: c,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res client.Result[model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint, client.Options{Method: http.MethodPost, Body: req})
}

func (s *serviceImpl) GetApproved(ctx context.Context, params gDto.ListParams) (res client.Result[[]model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetApproved")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	// approved is implied by the endpoint
	params.Status = constant.Empty

	generation, ok := s.generation(ctx)
	if !ok {
		return s.list(ctx, client.Query(endpoint+"/approved", params))
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(s.cachePrefix(), generation), params)

	var cached []model.Review
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for approved reviews")

		return client.Result[[]model.Review]{Success: true, Data: cached, StatusCode: http.StatusOK}
	}

	res = s.list(ctx, client.Query(endpoint+"/approved", params))
	if !res.Success {
		return res
	}

	// a save that lands after a moderation action goes under a retired generation

	data := res.Data

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, data, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save approved reviews to cache")
		}
	}()

	return res
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams) (res client.Result[[]model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.list(ctx, client.Query(endpoint, params))
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res client.Result[model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodGet})
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (res client.Result[model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	res = s.one(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodPut, Body: req})
	s.invalidateIf(ctx, res.Success)

	return res
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (res client.Result[model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	res = s.one(ctx, endpoint+"/"+url.PathEscape(id)+"/approve", client.Options{Method: http.MethodPatch})
	s.invalidateIf(ctx, res.Success)

	return res
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (res client.Result[model.Review]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	res = s.one(ctx, endpoint+"/"+url.PathEscape(id)+"/reject", client.Options{Method: http.MethodPatch})
	s.invalidateIf(ctx, res.Success)

	return res
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res client.Result[json.RawMessage]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	res = s.client.Do(ctx, endpoint+"/"+url.PathEscape(id), client.Options{Method: http.MethodDelete})
	s.invalidateIf(ctx, res.Success)

	return res
}

func (s *serviceImpl) cachePrefix() string {
	return shared.BuildCacheKey(s.cfg.Cache.Prefix, cacheGetApprovedReview)
}

// generation names the current set of approved-review entries. It is false when the
// cache cannot be read, and the list is then served uncached.
func (s *serviceImpl) generation(ctx context.Context) (string, bool) {
	var generation string

	if err := s.cache.Get(ctx, s.generationKey(), &generation); err != nil {
		if cache.IsMiss(err) {
			return initialGeneration, true
		}

		log.Warn().Err(err).Msg("review cache generation unavailable, skipping cache")

		return "", false
	}

	return generation, true
}

func (s *serviceImpl) generationKey() string {
	return shared.BuildCacheKey(s.cfg.Cache.Prefix, cacheReviewGeneration)
}

// invalidateIf retires the current generation before dropping its entries, so no
// approved list fetched before the change is read again.
func (s *serviceImpl) invalidateIf(ctx context.Context, changed bool) {
	if !changed {
		return
	}

	c := context.WithoutCancel(ctx)

	if err := s.cache.Save(c, s.generationKey(), uuid.NewString(), 0); err != nil {
		log.Error().Err(err).Msg("failed to retire approved reviews cache generation")
	}

	shared.InvalidateCaches(c, s.cache, s.cachePrefix())
}

func (s *serviceImpl) one(ctx context.Context, path string, opts client.Options) client.Result[model.Review] {
	return client.Map(client.Request[dto.Record](ctx, s.client, path, opts), dto.Record.ToModel)
}

func (s *serviceImpl) list(ctx context.Context, path string) client.Result[[]model.Review] {
	raw := s.client.Do(ctx, path, client.Options{Method: http.MethodGet})

	return client.Map(client.List[dto.Record](raw, listKey), dto.RecordsToModels)
}
