package cache_test

import (
	"context"
	"homestay/infras/otel/mocks"
	"homestay/shared/cache"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_FailuresAreTraced(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	tests := []struct {
		name string
		call func(c cache.RedisCache) error
	}{
		{name: "save", call: func(c cache.RedisCache) error { return c.Save(ctx, "k", "v", 10) }},
		{name: "save unmarshalable", call: func(c cache.RedisCache) error { return c.Save(ctx, "k", make(chan int), 10) }},
		{name: "get", call: func(c cache.RedisCache) error {
			var value string

			return c.Get(ctx, "k", &value)
		}},
		{name: "take", call: func(c cache.RedisCache) error {
			var value string

			return c.Take(ctx, "k", &value)
		}},
		{name: "delete", call: func(c cache.RedisCache) error { return c.Delete(ctx, "k") }},
		{name: "clear", call: func(c cache.RedisCache) error { return c.Clear(ctx, "k*") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ot := mocks.NewOtel()
			redisCache := cache.NewRedisCache(client, ot)

			err := tt.call(redisCache)
			require.Error(t, err)

			traced := ot.Errors()
			require.Len(t, traced, 1, "the returned error must be recorded on the span once")
			assert.Equal(t, err, traced[0])
		})
	}
}
