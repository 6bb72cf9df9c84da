package auth

import (
	"context"
	"homestay/infras/jwt"
	"homestay/shared/constant"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Session is the admin's logged-in state: a flag, the admin email and the bearer token.
type Session interface {
	Start(ctx context.Context, email string)
	End(ctx context.Context)
	// Authenticated reports the admin email when the flag is set and a usable token is held.
	Authenticated(ctx context.Context) (string, bool)
}

type session struct {
	storage Storage
	tokens  TokenStore
	jwt     jwt.JWT
}

func NewSession(storage Storage, tokens TokenStore, jwtService jwt.JWT) Session {
	return &session{
		storage: storage,
		tokens:  tokens,
		jwt:     jwtService,
	}
}

func (s *session) Start(ctx context.Context, email string) {
	s.storage.Set(ctx, constant.StorageKeyAdminAuthenticated, strconv.FormatBool(true))
	s.storage.Set(ctx, constant.StorageKeyAdminEmail, email)
}

// End clears the session flags and the token.
func (s *session) End(ctx context.Context) {
	s.storage.Remove(ctx, constant.StorageKeyAdminAuthenticated)
	s.storage.Remove(ctx, constant.StorageKeyAdminEmail)
	s.tokens.Remove(ctx)
}

func (s *session) Authenticated(ctx context.Context) (string, bool) {
	flag, _ := s.storage.Get(ctx, constant.StorageKeyAdminAuthenticated)
	if authenticated, _ := strconv.ParseBool(flag); !authenticated {
		return "", false
	}

	token := s.tokens.Get(ctx)
	if token == "" {
		return "", false
	}

	claims, err := s.jwt.Check(token)
	if err != nil {
		log.Debug().Err(err).Msg("admin token rejected, ending session")
		s.End(ctx)

		return "", false
	}

	email, _ := s.storage.Get(ctx, constant.StorageKeyAdminEmail)
	if email == "" {
		email = claims.Email
	}

	return email, true
}
