package http_test

import (
	"context"
	"encoding/json"
	"homestay/config"
	"homestay/infras/jwt"
	jwtMocks "homestay/infras/jwt/mocks"
	"homestay/infras/otel/mocks"
	"homestay/internal/auth"
	"homestay/internal/client"
	clientMocks "homestay/internal/client/mocks"
	adminDto "homestay/internal/domains/admin/model/dto"
	adminService "homestay/internal/domains/admin/service"
	bookingService "homestay/internal/domains/booking/service"
	contactService "homestay/internal/domains/contact/service"
	guestService "homestay/internal/domains/guest/service"
	paymentService "homestay/internal/domains/payment/service"
	reviewService "homestay/internal/domains/review/service"
	adminHandler "homestay/internal/handlers/admin"
	bookingHandler "homestay/internal/handlers/booking"
	contactHandler "homestay/internal/handlers/contact"
	guestHandler "homestay/internal/handlers/guest"
	handoffHandler "homestay/internal/handlers/handoff"
	paymentHandler "homestay/internal/handlers/payment"
	quoteHandler "homestay/internal/handlers/quote"
	reviewHandler "homestay/internal/handlers/review"
	"homestay/internal/handoff"
	"homestay/shared/cache"
	"homestay/shared/constant"
	"homestay/shared/timezone"
	transport "homestay/transport/http"
	"homestay/transport/http/middleware"
	"homestay/transport/http/router"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gateway struct {
	handler http.Handler
	client  *clientMocks.MockClient
	tokens  auth.TokenStore
}

func newGateway(t *testing.T) gateway {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "homestay"
	cfg.Pricing.PerPersonNightlyRate = 1500
	cfg.Handoff.TTLSeconds = 1800

	ot := mocks.NewOtel()
	mockClient := clientMocks.NewMockClient(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockJWT.EXPECT().Check(gomock.Any()).Return(&jwt.Claims{}, nil).AnyTimes()

	storage := auth.NewMemoryStorage()
	tokens := auth.NewTokenStore(storage)
	session := auth.NewSession(storage, tokens, mockJWT)

	handlers := router.DomainHandlers{
		Admin:   adminHandler.New(adminService.New(mockClient, tokens, session, ot), ot),
		Booking: bookingHandler.New(bookingService.New(mockClient, ot), cfg, ot),
		Contact: contactHandler.New(contactService.New(mockClient, ot), ot),
		Guest:   guestHandler.New(guestService.New(mockClient, ot), ot),
		Handoff: handoffHandler.New(handoff.New(cache.Noop{}, cfg, ot), ot),
		Payment: paymentHandler.New(paymentService.New(mockClient, ot), ot),
		Quote:   quoteHandler.New(cfg, ot),
		Review:  reviewHandler.New(reviewService.New(mockClient, cfg, cache.Noop{}, ot), ot),
	}

	server := transport.New(cfg, router.New(handlers, middleware.NewSessionMiddleware(session, ot)), middleware.NewAppMiddleware(ot, cfg))

	return gateway{handler: server.Handler(), client: mockClient, tokens: tokens}
}

func (g gateway) do(t *testing.T, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	g.handler.ServeHTTP(recorder, request)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestHealth(t *testing.T) {
	g := newGateway(t)

	recorder := g.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", decode(t, recorder)["message"])
	assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))
}

func TestCreateBooking(t *testing.T) {
	checkIn := timezone.Now().AddDate(0, 0, 10).Format("2006-01-02")
	checkOut := timezone.Now().AddDate(0, 0, 12).Format("2006-01-02")

	valid := `{"fullName":"Asha Rai","email":"asha@example.com","phoneNumber":"9876543210",` +
		`"checkInDate":"` + checkIn + `","checkOutDate":"` + checkOut + `","numberOfGuests":2,"accommodationType":"glamping"}`

	tests := []struct {
		name       string
		body       string
		backend    bool
		wantCode   int
		wantFields []string
	}{
		{name: "valid form", body: valid, backend: true, wantCode: http.StatusCreated},
		{
			name:       "invalid form never reaches the backend",
			body:       `{"fullName":"A1","email":"nope","phoneNumber":"123","numberOfGuests":25}`,
			wantCode:   http.StatusUnprocessableEntity,
			wantFields: []string{"name", "email", "phone", "checkIn", "checkOut", "guests"},
		},
		{name: "malformed body", body: `{`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGateway(t)

			if tt.backend {
				g.client.EXPECT().
					Do(gomock.Any(), "/booking", gomock.Any()).
					Return(client.OK(`{"booking":{"_id":"b1","bookingReference":"HS-1001"}}`))
			}

			recorder := g.do(t, http.MethodPost, "/v1/bookings", tt.body)
			require.Equal(t, tt.wantCode, recorder.Code, recorder.Body.String())

			body := decode(t, recorder)

			if tt.backend {
				data := body["data"].(map[string]any)
				assert.Equal(t, "HS-1001", data["bookingReference"])

				quote := data["quote"].(map[string]any)
				assert.EqualValues(t, 2, quote["nights"])
				assert.EqualValues(t, 6000, quote["total"])

				return
			}

			if len(tt.wantFields) > 0 {
				fields := body["fields"].(map[string]any)
				for _, field := range tt.wantFields {
					assert.Contains(t, fields, field)
				}
			}
		})
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	g := newGateway(t)

	for _, target := range []string{
		"/v1/admin/bookings",
		"/v1/admin/guests",
		"/v1/admin/payments",
		"/v1/admin/reviews",
		"/v1/admin/contacts",
		"/v1/admin/profile",
	} {
		recorder := g.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, target)
	}
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constant.SessionCookieName {
			return cookie
		}
	}

	t.Fatalf("no %s cookie in response", constant.SessionCookieName)

	return nil
}

func TestAdminLoginThenList(t *testing.T) {
	g := newGateway(t)

	g.client.EXPECT().
		Do(gomock.Any(), "/admin/login", client.Options{
			Method: http.MethodPost,
			Body:   adminDto.LoginRequest{Email: "admin@homestay.in", Password: "secret"},
		}).
		Return(client.OK(`{"token":"tok-1"}`))
	g.client.EXPECT().
		Do(gomock.Any(), "/booking?limit=100&page=1&status=pending", client.Options{Method: http.MethodGet}).
		DoAndReturn(func(ctx context.Context, _ string, _ client.Options) client.Result[json.RawMessage] {
			assert.Equal(t, "tok-1", g.tokens.Get(ctx), "backend call must carry the caller's token")

			return client.OK(`[{"_id":"b1","fullName":"Asha Rai"},{"_id":"b2","fullName":"Vikram Singh"}]`)
		})

	login := g.do(t, http.MethodPost, "/v1/admin/login", `{"email":"admin@homestay.in","password":"secret"}`)
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())
	assert.NotContains(t, login.Body.String(), "tok-1")

	cookie := sessionCookie(t, login)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, cookie.Value, decode(t, login)["data"].(map[string]any)["sessionId"])

	list := g.do(t, http.MethodGet, "/v1/admin/bookings?status=pending&search=vikram", "", cookie)
	require.Equal(t, http.StatusOK, list.Code, list.Body.String())

	rows := decode(t, list)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Vikram Singh", rows[0].(map[string]any)["guestName"])

	logout := g.do(t, http.MethodPost, "/v1/admin/logout", "", cookie)
	assert.Equal(t, http.StatusOK, logout.Code)
	assert.Negative(t, sessionCookie(t, logout).MaxAge)

	assert.Equal(t, http.StatusUnauthorized, g.do(t, http.MethodGet, "/v1/admin/bookings", "", cookie).Code)
}

func TestAdminSessionBelongsToItsCaller(t *testing.T) {
	g := newGateway(t)

	g.client.EXPECT().
		Do(gomock.Any(), "/admin/login", gomock.Any()).
		Return(client.OK(`{"token":"tok-1"}`))

	login := g.do(t, http.MethodPost, "/v1/admin/login", `{"email":"admin@homestay.in","password":"secret"}`)
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	cookie := sessionCookie(t, login)

	tests := []struct {
		name    string
		method  string
		target  string
		cookies []*http.Cookie
	}{
		{name: "list without credentials", method: http.MethodGet, target: "/v1/admin/bookings"},
		{name: "delete without credentials", method: http.MethodDelete, target: "/v1/admin/bookings/b1"},
		{name: "logout without credentials", method: http.MethodPost, target: "/v1/admin/logout"},
		{
			name:    "unknown session id",
			method:  http.MethodGet,
			target:  "/v1/admin/bookings",
			cookies: []*http.Cookie{{Name: constant.SessionCookieName, Value: "not-a-session"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := g.do(t, tt.method, tt.target, "", tt.cookies...)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}

	// the first caller is still logged in, also when presenting the id as a header
	g.client.EXPECT().
		Do(gomock.Any(), "/admin/profile", client.Options{Method: http.MethodGet}).
		Return(client.OK(`{"_id":"a1","email":"admin@homestay.in"}`))

	request := httptest.NewRequest(http.MethodGet, "/v1/admin/profile", nil)
	request.Header.Set(constant.RequestHeaderSessionID, cookie.Value)

	recorder := httptest.NewRecorder()
	g.handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
}

func TestCreateQuote(t *testing.T) {
	g := newGateway(t)

	checkIn := timezone.Now().AddDate(0, 0, 3).Format("2006-01-02")
	checkOut := timezone.Now().AddDate(0, 0, 6).Format("2006-01-02")

	ok := g.do(t, http.MethodPost, "/v1/quotes", `{"checkIn":"`+checkIn+`","checkOut":"`+checkOut+`","guests":3}`)
	require.Equal(t, http.StatusOK, ok.Code, ok.Body.String())

	quote := decode(t, ok)["data"].(map[string]any)
	assert.EqualValues(t, 3, quote["nights"])
	assert.EqualValues(t, 13500, quote["total"])

	bad := g.do(t, http.MethodPost, "/v1/quotes", `{"checkIn":"`+checkOut+`","checkOut":"`+checkIn+`","guests":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, bad.Code)

	fields := decode(t, bad)["fields"].(map[string]any)
	assert.Equal(t, "Check-out date must be after check-in date", fields["checkOut"])
	assert.Equal(t, "Number of guests must be at least 1", fields["guests"])
}

func TestQuickBookingUnknownID(t *testing.T) {
	g := newGateway(t)

	saved := g.do(t, http.MethodPost, "/v1/quick-booking", `{"checkIn":"2030-01-01","checkOut":"2030-01-03","guests":2,"accommodation":"pod"}`)
	require.Equal(t, http.StatusCreated, saved.Code, saved.Body.String())

	id := decode(t, saved)["data"].(map[string]any)["id"].(string)

	// nothing is kept without a cache backend
	assert.Equal(t, http.StatusNotFound, g.do(t, http.MethodGet, "/v1/quick-booking/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, g.do(t, http.MethodGet, "/v1/quick-booking/not-a-uuid", "").Code)
}
