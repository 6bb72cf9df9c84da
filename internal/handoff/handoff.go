// Package handoff carries the quick search widget's selections over to the full booking
// form. An entry is read once: Take deletes it.
package handoff

import (
	"context"
	"fmt"
	"homestay/config"
	"homestay/infras/otel"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const notFoundMessage = "quick booking not found"

type QuickBooking struct {
	CheckIn       string `json:"checkIn,omitempty"`
	CheckOut      string `json:"checkOut,omitempty"`
	Guests        int    `json:"guests,omitempty"       validate:"gte=0,lte=20"`
	Accommodation string `json:"accommodation,omitempty"`
}

// Values maps the selections onto booking form field names, skipping blanks.
func (q QuickBooking) Values() map[string]string {
	values := make(map[string]string, 4)

	if q.CheckIn != "" {
		values["checkIn"] = q.CheckIn
	}

	if q.CheckOut != "" {
		values["checkOut"] = q.CheckOut
	}

	if q.Guests > 0 {
		values["guests"] = fmt.Sprint(q.Guests)
	}

	if q.Accommodation != "" {
		values["accommodation"] = q.Accommodation
	}

	return values
}

type Store interface {
	Save(ctx context.Context, booking QuickBooking) (string, error)
	// Take returns the entry and deletes it. A missing or already taken id is a not found failure.
	Take(ctx context.Context, id string) (QuickBooking, error)
}

type store struct {
	cache  cache.RedisCache
	prefix string
	ttl    int
	otel   otel.Otel
}

func New(redisCache cache.RedisCache, cfg *config.Config, otel otel.Otel) Store {
	return &store{
		cache:  redisCache,
		prefix: shared.BuildCacheKey(cfg.Cache.Prefix, constant.StorageKeyQuickBooking),
		ttl:    cfg.Handoff.TTLSeconds,
		otel:   otel,
	}
}

func (s *store) Save(ctx context.Context, booking QuickBooking) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".handoff.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&booking); err != nil {
		return "", err
	}

	id = uuid.NewString()

	if err = s.cache.Save(ctx, shared.BuildCacheKey(s.prefix, id), booking, s.ttl); err != nil {
		log.Error().Err(err).Msg("failed to save quick booking")

		return "", failure.InternalError(fmt.Errorf("failed to save quick booking: %w", err))
	}

	return id, nil
}

func (s *store) Take(ctx context.Context, id string) (booking QuickBooking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".handoff.Take")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = uuid.Validate(id); err != nil {
		return QuickBooking{}, failure.NotFound(notFoundMessage)
	}

	if err = s.cache.Take(ctx, shared.BuildCacheKey(s.prefix, id), &booking); err != nil {
		if cache.IsMiss(err) {
			return QuickBooking{}, failure.NotFound(notFoundMessage)
		}

		return QuickBooking{}, failure.InternalError(fmt.Errorf("failed to take quick booking: %w", err))
	}

	return booking, nil
}
