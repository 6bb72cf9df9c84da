package admin

import (
	"homestay/infras/otel"
	"homestay/internal/auth"
	"homestay/internal/domains/admin/model/dto"
	"homestay/internal/domains/admin/service"
	"homestay/shared/constant"
	"homestay/shared/logger"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/login", handler.Login)
	router.Post("/register", handler.Register)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/logout", handler.Logout)
	router.Get("/profile", handler.Profile)
}

// LoginResponse never echoes the bearer token; the gateway keeps it under SessionID.
type LoginResponse struct {
	Email     string `json:"email"`
	SessionID string `json:"sessionId"`
}

func sessionCookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get(constant.RequestHeaderForwardProto) == "https",
		SameSite: http.SameSiteLaxMode,
	}
}

// Login
// @Summary Admin login
// @Description Starts a new admin session for this caller and sets the session cookie. The backend
// @Description token stays in the gateway's token store; later requests present the cookie or X-Session-ID.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[LoginResponse]
// @Failure 401 {object} response.Error
// @Router /v1/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	sessionID := auth.NewSessionID()
	ctx = auth.WithSessionID(ctx, sessionID)

	res := handler.service.Login(ctx, req)
	if !res.Success {
		err := res.Err()

		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("email", req.Email).Msg("admin login failed")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, sessionCookie(r, sessionID, 0))
	response.WithJSON(w, http.StatusOK, LoginResponse{Email: req.Email, SessionID: sessionID})
}

// Register
// @Summary Register an admin account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account"
// @Success 201 {object} response.Message
// @Router /v1/admin/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	var req dto.RegisterRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Register(ctx, req)
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	response.WithMessage(w, http.StatusCreated, "Admin registered successfully")
}

// Logout
// @Summary End the admin session
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Router /v1/admin/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.service.Logout(ctx)
	http.SetCookie(w, sessionCookie(r, "", -1))

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// Profile
// @Summary Current admin
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[model.Admin]
// @Router /v1/admin/profile [get]
func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Profile")
	defer scope.End()

	res := handler.service.Profile(ctx)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}
