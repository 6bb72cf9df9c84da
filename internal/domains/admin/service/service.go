package service

import (
	"context"
	"homestay/infras/otel"
	"homestay/internal/auth"
	"homestay/internal/client"
	"homestay/internal/domains/admin/model"
	"homestay/internal/domains/admin/model/dto"
	"homestay/shared/constant"
	"net/http"

	"github.com/rs/zerolog/log"
)

const endpoint = "/admin"

type Admin interface {
	Register(ctx context.Context, req dto.RegisterRequest) client.Result[dto.TokenResponse]
	// Login stores the returned token and starts the admin session before returning.
	Login(ctx context.Context, req dto.LoginRequest) client.Result[dto.TokenResponse]
	Logout(ctx context.Context)
	Profile(ctx context.Context) client.Result[model.Admin]
}

type serviceImpl struct {
	client  client.Client
	tokens  auth.TokenStore
	session auth.Session
	otel    otel.Otel
}

func New(c client.Client, tokens auth.TokenStore, session auth.Session, otel otel.Otel) Admin {
	return &serviceImpl{
		client:  c,
		tokens:  tokens,
		session: session,
		otel:    otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res client.Result[dto.TokenResponse]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	return client.Request[dto.TokenResponse](ctx, s.client, endpoint+"/register", client.Options{
		Method: http.MethodPost,
		Body:   req,
	})
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res client.Result[dto.TokenResponse]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	res = client.Request[dto.TokenResponse](ctx, s.client, endpoint+"/login", client.Options{
		Method: http.MethodPost,
		Body:   req,
	})

	if res.Success && res.Data.Token != "" {
		s.tokens.Set(ctx, res.Data.Token)
		s.session.Start(ctx, req.Email)

		log.Info().Str("email", req.Email).Msg("admin logged in")
	}

	return res
}

func (s *serviceImpl) Logout(ctx context.Context) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Logout")
	defer scope.End()

	s.session.End(ctx)
}

func (s *serviceImpl) Profile(ctx context.Context) (res client.Result[model.Admin]) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(res.Err()) }()

	profile := client.Request[dto.Record](ctx, s.client, endpoint+"/profile", client.Options{Method: http.MethodGet})

	return client.Map(profile, dto.Record.ToModel)
}
