package auth_test

import (
	"context"
	"errors"
	"homestay/config"
	"homestay/infras/jwt"
	jwtMocks "homestay/infras/jwt/mocks"
	"homestay/internal/auth"
	"homestay/shared/cache"
	cacheMocks "homestay/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTokenStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		storage auth.Storage
		want    string
	}{
		{name: "memory storage keeps the token", storage: auth.NewMemoryStorage(), want: "token-123"},
		{name: "absent storage reads empty", storage: auth.NoopStorage{}, want: ""},
		{name: "nil storage reads empty", storage: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := auth.NewTokenStore(tt.storage)

			assert.Empty(t, tokens.Get(ctx))

			tokens.Set(ctx, "token-123")
			assert.Equal(t, tt.want, tokens.Get(ctx))

			tokens.Remove(ctx)
			assert.Empty(t, tokens.Get(ctx))
		})
	}
}

func TestRedisStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := auth.WithSessionID(context.Background(), "sid-1")
	cfg := &config.Config{}
	cfg.Cache.Prefix = "homestay"
	cfg.Session.TTLSeconds = 3600

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	storage := auth.NewRedisStorage(mockCache, cfg)
	tokens := auth.NewTokenStore(storage)

	t.Run("hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "homestay:storage:sid-1:authToken", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*string) = "token-abc"

				return nil
			})

		assert.Equal(t, "token-abc", tokens.Get(ctx))
	})

	t.Run("miss", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "homestay:storage:sid-1:authToken", gomock.Any()).
			Return(cache.Nil)

		assert.Empty(t, tokens.Get(ctx))
	})

	t.Run("redis down reads empty", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "homestay:storage:sid-1:authToken", gomock.Any()).
			Return(errors.New("connection refused"))

		assert.Empty(t, tokens.Get(ctx))
	})

	t.Run("set expires with the session ttl", func(t *testing.T) {
		mockCache.EXPECT().
			Save(gomock.Any(), "homestay:storage:sid-1:authToken", "token-abc", 3600).
			Return(nil)

		tokens.Set(ctx, "token-abc")
	})

	t.Run("remove", func(t *testing.T) {
		mockCache.EXPECT().
			Delete(gomock.Any(), "homestay:storage:sid-1:authToken").
			Return(errors.New("connection refused"))

		tokens.Remove(ctx)
	})

	t.Run("another session reads its own slot", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "homestay:storage:sid-2:authToken", gomock.Any()).
			Return(cache.Nil)

		assert.Empty(t, tokens.Get(auth.WithSessionID(context.Background(), "sid-2")))
	})

	t.Run("no session id never touches redis", func(t *testing.T) {
		anonymous := context.Background()

		tokens.Set(anonymous, "token-abc")
		assert.Empty(t, tokens.Get(anonymous))
		tokens.Remove(anonymous)
	})
}

func TestMemoryStorage_SeparatesSessions(t *testing.T) {
	storage := auth.NewMemoryStorage()
	tokens := auth.NewTokenStore(storage)

	first := auth.WithSessionID(context.Background(), "sid-1")
	second := auth.WithSessionID(context.Background(), "sid-2")

	tokens.Set(first, "token-1")

	assert.Equal(t, "token-1", tokens.Get(first))
	assert.Empty(t, tokens.Get(second))
	assert.Empty(t, tokens.Get(context.Background()))

	tokens.Set(context.Background(), "console")
	assert.Equal(t, "console", tokens.Get(context.Background()))
	assert.Equal(t, "token-1", tokens.Get(first))
}

func TestNewSessionID(t *testing.T) {
	first, second := auth.NewSessionID(), auth.NewSessionID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, auth.SessionID(auth.WithSessionID(context.Background(), first)))
	assert.Empty(t, auth.SessionID(context.Background()))
}

func TestSession_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(s auth.Session, tokens auth.TokenStore, mockJWT *jwtMocks.MockJWT)
		wantEmail string
		wantOK    bool
	}{
		{
			name:  "never logged in",
			setup: func(auth.Session, auth.TokenStore, *jwtMocks.MockJWT) {},
		},
		{
			name: "flag without token",
			setup: func(s auth.Session, _ auth.TokenStore, _ *jwtMocks.MockJWT) {
				s.Start(ctx, "admin@homestay.in")
			},
		},
		{
			name: "flag and live token",
			setup: func(s auth.Session, tokens auth.TokenStore, mockJWT *jwtMocks.MockJWT) {
				s.Start(ctx, "admin@homestay.in")
				tokens.Set(ctx, "live")
				mockJWT.EXPECT().Check("live").Return(&jwt.Claims{}, nil)
			},
			wantEmail: "admin@homestay.in",
			wantOK:    true,
		},
		{
			name: "email falls back to token claims",
			setup: func(s auth.Session, tokens auth.TokenStore, mockJWT *jwtMocks.MockJWT) {
				s.Start(ctx, "")
				tokens.Set(ctx, "live")
				mockJWT.EXPECT().Check("live").Return(&jwt.Claims{Email: "claims@homestay.in"}, nil)
			},
			wantEmail: "claims@homestay.in",
			wantOK:    true,
		},
		{
			name: "expired token ends the session",
			setup: func(s auth.Session, tokens auth.TokenStore, mockJWT *jwtMocks.MockJWT) {
				s.Start(ctx, "admin@homestay.in")
				tokens.Set(ctx, "expired")
				mockJWT.EXPECT().Check("expired").Return(nil, jwt.ErrExpiredToken)
			},
		},
		{
			name: "ended session",
			setup: func(s auth.Session, tokens auth.TokenStore, _ *jwtMocks.MockJWT) {
				s.Start(ctx, "admin@homestay.in")
				tokens.Set(ctx, "live")
				s.End(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := auth.NewMemoryStorage()
			tokens := auth.NewTokenStore(storage)
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			session := auth.NewSession(storage, tokens, mockJWT)

			tt.setup(session, tokens, mockJWT)

			email, ok := session.Authenticated(ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEmail, email)

			if !tt.wantOK {
				assert.Empty(t, tokens.Get(ctx), "token must not survive a dead session")
			}
		})
	}
}
