package auth

import (
	"context"
	"homestay/shared/constant"

	"github.com/google/uuid"
)

// NewSessionID mints the opaque id a gateway caller presents to reach its own session.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID scopes every storage slot read or written with ctx to one session.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.ContextKeySessionID, sessionID)
}

func SessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	return sessionID
}
