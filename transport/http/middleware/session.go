package middleware

import (
	"context"
	"homestay/infras/otel"
	"homestay/internal/auth"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/logger"
	"homestay/transport/http/response"
	"net/http"
)

// Session guards the back-office routes.
type Session interface {
	Admin(next http.Handler) http.Handler
}

type sessionImpl struct {
	session auth.Session
	otel    otel.Otel
}

func NewSessionMiddleware(session auth.Session, otel otel.Otel) Session {
	return &sessionImpl{
		session: session,
		otel:    otel,
	}
}

// sessionID reads the caller's session id from the session cookie, or from the
// X-Session-ID header for clients without a cookie jar.
func sessionID(request *http.Request) string {
	if cookie, err := request.Cookie(constant.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return request.Header.Get(constant.RequestHeaderSessionID)
}

// Admin lets the request through only while the caller's own admin session is active.
// The session id and admin email ride on the context, so downstream backend calls carry
// that caller's token.
func (m *sessionImpl) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := sessionID(request)
		sessionCtx := auth.WithSessionID(request.Context(), id)

		ctx, scope := m.otel.NewScope(sessionCtx, constant.OtelHandlerScopeName, "session.middleware")

		email, ok := "", false
		if id != "" {
			email, ok = m.session.Authenticated(ctx)
		}

		if !ok {
			err := failure.SessionRequiredError

			logger.FromContext(ctx).Debug().Str("path", request.URL.Path).Msg("admin session required")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.SetAttribute("admin.email", email)
		scope.End()

		ctx = context.WithValue(sessionCtx, constant.ContextKeyAdminEmail, email)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
