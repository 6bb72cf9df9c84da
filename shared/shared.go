package shared

import (
	"context"
	"homestay/shared/cache"
	"homestay/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the key prefix and its parts, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, prefix)

	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return strings.Join(segments, cacheKeySeparator)
}

// BuildCacheKeyWithQuery keys a list response by the query that produced it.
func BuildCacheKeyWithQuery(prefix string, params dto.ListParams) string {
	return BuildCacheKey(prefix, params.Values().Encode())
}

// InvalidateCaches drops every key under prefix. Failures are logged and otherwise ignored;
// a stale entry expires on its own TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
