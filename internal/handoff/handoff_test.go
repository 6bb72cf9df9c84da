package handoff_test

import (
	"context"
	"errors"
	"fmt"
	"homestay/config"
	"homestay/infras/otel/mocks"
	"homestay/internal/handoff"
	"homestay/shared/cache"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Prefix = "homestay"
	cfg.Handoff.TTLSeconds = 1800

	return cfg
}

func TestStore_SaveAndTake(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	store := handoff.New(mockCache, testConfig(), mocks.NewOtel())

	quick := handoff.QuickBooking{CheckIn: "2024-12-10", CheckOut: "2024-12-12", Guests: 2, Accommodation: "pod"}

	var savedKey string

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), quick, 1800).
		DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
			savedKey = key

			return nil
		})

	id, err := store.Save(ctx, quick)
	require.NoError(t, err)
	assert.Equal(t, "homestay:quickBookingData:"+id, savedKey)

	mockCache.EXPECT().
		Take(gomock.Any(), savedKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*handoff.QuickBooking) = quick

			return nil
		})

	got, err := store.Take(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, quick, got)
	assert.Equal(t, map[string]string{
		"checkIn":       "2024-12-10",
		"checkOut":      "2024-12-12",
		"guests":        "2",
		"accommodation": "pod",
	}, got.Values())

	mockCache.EXPECT().
		Take(gomock.Any(), savedKey, gomock.Any()).
		Return(fmt.Errorf("take: %w", cache.Nil))

	_, err = store.Take(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err), "consumed once")
}

func TestStore_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	store := handoff.New(mockCache, testConfig(), mocks.NewOtel())

	tests := []struct {
		name     string
		run      func() error
		wantCode int
	}{
		{
			name: "too many guests",
			run: func() error {
				_, err := store.Save(ctx, handoff.QuickBooking{Guests: 21})
				return err
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed id",
			run: func() error {
				_, err := store.Take(ctx, "not-an-id")
				return err
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "redis down on save",
			run: func() error {
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 1800).Return(errors.New("connection refused"))

				_, err := store.Save(ctx, handoff.QuickBooking{Guests: 1})
				return err
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}

}
