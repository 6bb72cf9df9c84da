package shared_test

import (
	"context"
	"errors"
	"homestay/shared"
	"homestay/shared/cache/mocks"
	"homestay/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "review:approved", expected: "review:approved"},
		{name: "with parts", prefix: "homestay", parts: []string{"token", "authToken"}, expected: "homestay:token:authToken"},
		{name: "empty parts skipped", prefix: "homestay", parts: []string{"", "handoff", ""}, expected: "homestay:handoff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	assert.Equal(t, "review:approved", shared.BuildCacheKeyWithQuery("review:approved", dto.ListParams{}))
	assert.Equal(t, "review:approved:limit=6&page=1",
		shared.BuildCacheKeyWithQuery("review:approved", dto.ListParams{Page: 1, Limit: 6}))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "review:approved*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "review:approved")

	mockCache.EXPECT().Clear(gomock.Any(), "review:approved*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "review:approved")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "2024-12-01", shared.FirstNonEmpty("", "  ", "2024-12-01", "2024-12-02"))
	assert.Equal(t, "", shared.FirstNonEmpty())
	assert.Equal(t, "", shared.FirstNonEmpty("", " "))
}
