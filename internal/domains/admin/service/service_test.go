package service_test

import (
	"context"
	"homestay/infras/jwt"
	jwtMocks "homestay/infras/jwt/mocks"
	"homestay/infras/otel/mocks"
	"homestay/internal/auth"
	"homestay/internal/client"
	clientMocks "homestay/internal/client/mocks"
	"homestay/internal/domains/admin/model/dto"
	"homestay/internal/domains/admin/service"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	req := dto.LoginRequest{Email: "admin@homestay.in", Password: "secret"}

	tests := []struct {
		name        string
		raw         string
		status      int
		wantSuccess bool
		wantToken   string
		wantSession bool
	}{
		{name: "success stores token", raw: `{"token":"tok-1"}`, status: http.StatusOK, wantSuccess: true, wantToken: "tok-1", wantSession: true},
		{name: "success without token", raw: `{"message":"ok"}`, status: http.StatusOK, wantSuccess: true},
		{name: "wrong password", raw: "Invalid credentials", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := clientMocks.NewMockClient(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			storage := auth.NewMemoryStorage()
			tokens := auth.NewTokenStore(storage)
			session := auth.NewSession(storage, tokens, mockJWT)
			svc := service.New(mockClient, tokens, session, mocks.NewOtel())

			res := client.OK(tt.raw)
			if tt.status != http.StatusOK {
				res = client.Fail(tt.status, tt.raw)
			}

			mockClient.EXPECT().
				Do(gomock.Any(), "/admin/login", client.Options{Method: http.MethodPost, Body: req}).
				Return(res)

			if tt.wantSession {
				mockJWT.EXPECT().Check(tt.wantToken).Return(&jwt.Claims{}, nil)
			}

			got := svc.Login(ctx, req)

			assert.Equal(t, tt.wantSuccess, got.Success)
			assert.Equal(t, tt.wantToken, tokens.Get(ctx))

			email, ok := session.Authenticated(ctx)
			assert.Equal(t, tt.wantSession, ok)

			if tt.wantSession {
				assert.Equal(t, req.Email, email)
			}
		})
	}
}

func TestAdminService_LogoutRegisterProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockClient := clientMocks.NewMockClient(ctrl)
	storage := auth.NewMemoryStorage()
	tokens := auth.NewTokenStore(storage)
	session := auth.NewSession(storage, tokens, jwt.New())
	svc := service.New(mockClient, tokens, session, mocks.NewOtel())

	register := dto.RegisterRequest{Name: "Asha", Email: "asha@homestay.in", Password: "secret1"}

	mockClient.EXPECT().
		Do(gomock.Any(), "/admin/register", client.Options{Method: http.MethodPost, Body: register}).
		Return(client.OK(`{"token":"tok-r"}`))

	res := svc.Register(ctx, register)
	require.True(t, res.Success)
	assert.Equal(t, "tok-r", res.Data.Token)
	assert.Empty(t, tokens.Get(ctx), "register does not log in")

	mockClient.EXPECT().
		Do(gomock.Any(), "/admin/profile", client.Options{Method: http.MethodGet}).
		Return(client.OK(`{"_id":"a1","name":"Asha","email":"asha@homestay.in"}`))

	profile := svc.Profile(ctx)
	require.True(t, profile.Success)
	assert.Equal(t, "a1", profile.Data.ID)
	assert.Equal(t, "Asha", profile.Data.Name)

	tokens.Set(ctx, "opaque")
	session.Start(ctx, "asha@homestay.in")

	_, ok := session.Authenticated(ctx)
	require.True(t, ok)

	svc.Logout(ctx)

	_, ok = session.Authenticated(ctx)
	assert.False(t, ok)
	assert.Empty(t, tokens.Get(ctx))
}
