package client_test

import (
	"context"
	"encoding/json"
	"homestay/config"
	"homestay/infras/otel/mocks"
	"homestay/internal/auth"
	"homestay/internal/client"
	"homestay/shared/dto"
	"homestay/shared/failure"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method  string
	path    string
	query   string
	headers http.Header
	body    string
}

func newBackend(t *testing.T, status int, body string, got *captured) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if got != nil {
			*got = captured{
				method:  r.Method,
				path:    r.URL.Path,
				query:   r.URL.RawQuery,
				headers: r.Header.Clone(),
				body:    string(raw),
			}
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func newClient(baseURL string, tokens auth.TokenStore) client.Client {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL + "/api"

	return client.New(cfg, tokens, mocks.NewOtel())
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantSuccess bool
		wantData    string
		wantError   string
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "data envelope is unwrapped",
			status:      http.StatusOK,
			body:        `{"success":true,"data":{"id":"b1"}}`,
			wantSuccess: true,
			wantData:    `{"id":"b1"}`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "body without data is returned whole",
			status:      http.StatusOK,
			body:        `{"bookings":[{"id":"b1"}]}`,
			wantSuccess: true,
			wantData:    `{"bookings":[{"id":"b1"}]}`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "null data falls back to the whole body",
			status:      http.StatusOK,
			body:        `{"data":null,"total":0}`,
			wantSuccess: true,
			wantData:    `{"data":null,"total":0}`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "empty list data is kept",
			status:      http.StatusOK,
			body:        `{"data":[]}`,
			wantSuccess: true,
			wantData:    `[]`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "bare array body",
			status:      http.StatusOK,
			body:        `[{"id":"r1"}]`,
			wantSuccess: true,
			wantData:    `[{"id":"r1"}]`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "non-2xx with message",
			status:      http.StatusBadRequest,
			body:        `{"message":"Invalid dates"}`,
			wantError:   "Invalid dates",
			wantMessage: "Invalid dates",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:       "non-2xx without message",
			status:     http.StatusInternalServerError,
			body:       `{}`,
			wantError:  "HTTP error! status: 500",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:      "unparseable body",
			status:    http.StatusOK,
			body:      `<html>oops</html>`,
			wantError: "invalid character '<' looking for beginning of value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newBackend(t, tt.status, tt.body, nil)
			c := newClient(server.URL, auth.NewTokenStore(auth.NewMemoryStorage()))

			res := c.Do(context.Background(), "/booking", client.Options{})

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantError, res.Error)
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.Equal(t, tt.wantStatus, res.StatusCode)

			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, string(res.Data))
			}
		})
	}
}

func TestClient_Do_Headers(t *testing.T) {
	ctx := context.Background()

	t.Run("token attached when present", func(t *testing.T) {
		var got captured
		server := newBackend(t, http.StatusOK, `{"data":{}}`, &got)

		tokens := auth.NewTokenStore(auth.NewMemoryStorage())
		tokens.Set(ctx, "tok")

		res := newClient(server.URL, tokens).Do(ctx, "/admin/profile", client.Options{})
		require.True(t, res.Success)

		assert.Equal(t, "/api/admin/profile", got.path)
		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, "Bearer tok", got.headers.Get("Authorization"))
		assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	})

	t.Run("no token no authorization header", func(t *testing.T) {
		var got captured
		server := newBackend(t, http.StatusOK, `{"data":{}}`, &got)

		newClient(server.URL, auth.NewTokenStore(auth.NoopStorage{})).Do(ctx, "/review/approved", client.Options{})

		assert.Empty(t, got.headers.Get("Authorization"))
	})

	shapes := map[string]any{
		"plain map":  map[string]string{"X-Trace": "abc"},
		"pair list":  [][2]string{{"X-Trace", "abc"}},
		"header obj": http.Header{"X-Trace": []string{"abc"}},
	}

	for name, headers := range shapes {
		t.Run("caller headers as "+name, func(t *testing.T) {
			var got captured
			server := newBackend(t, http.StatusOK, `{"data":{}}`, &got)

			newClient(server.URL, auth.NewTokenStore(nil)).Do(ctx, "/booking", client.Options{Headers: headers})

			assert.Equal(t, "abc", got.headers.Get("X-Trace"))
			assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
		})
	}

	t.Run("caller content type overrides default", func(t *testing.T) {
		var got captured
		server := newBackend(t, http.StatusOK, `{"data":{}}`, &got)

		newClient(server.URL, auth.NewTokenStore(nil)).Do(ctx, "/booking", client.Options{
			Headers: map[string]string{"Content-Type": "text/plain"},
		})

		assert.Equal(t, "text/plain", got.headers.Get("Content-Type"))
	})
}

func TestClient_Do_Body(t *testing.T) {
	var got captured
	server := newBackend(t, http.StatusCreated, `{"data":{"id":"c1"}}`, &got)

	payload := map[string]string{"name": "Priya Sharma"}
	res := newClient(server.URL, auth.NewTokenStore(nil)).Do(context.Background(), "/contact", client.Options{
		Method: http.MethodPost,
		Body:   payload,
	})

	require.True(t, res.Success)
	assert.Equal(t, http.MethodPost, got.method)
	assert.JSONEq(t, `{"name":"Priya Sharma"}`, got.body)
}

func TestClient_Do_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	res := newClient(server.URL, auth.NewTokenStore(nil)).Do(context.Background(), "/booking", client.Options{})

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, 0, res.StatusCode)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(res.Err()))
}

func TestRequest(t *testing.T) {
	type profile struct {
		Email string `json:"email"`
	}

	t.Run("decodes payload", func(t *testing.T) {
		server := newBackend(t, http.StatusOK, `{"data":{"email":"admin@homestay.in"}}`, nil)

		res := client.Request[profile](context.Background(), newClient(server.URL, auth.NewTokenStore(nil)), "/admin/profile", client.Options{})

		require.True(t, res.Success)
		assert.Equal(t, "admin@homestay.in", res.Data.Email)
	})

	t.Run("shape mismatch is a failure", func(t *testing.T) {
		server := newBackend(t, http.StatusOK, `{"data":{"email":42}}`, nil)

		res := client.Request[profile](context.Background(), newClient(server.URL, auth.NewTokenStore(nil)), "/admin/profile", client.Options{})

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "failed to decode response data")
	})
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, client.Result[json.RawMessage]{Success: true}.Err())

	err := client.Result[json.RawMessage]{Error: "Booking not found", StatusCode: http.StatusNotFound}.Err()
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.EqualError(t, err, "Booking not found")

	err = client.Result[json.RawMessage]{}.Err()
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.EqualError(t, err, "An unexpected error occurred")
}

func TestMap(t *testing.T) {
	res := client.Map(client.Result[int]{Success: true, Data: 2}, func(v int) string { return "n" + string(rune('0'+v)) })
	assert.Equal(t, "n2", res.Data)

	failed := client.Map(client.Result[int]{Error: "boom", StatusCode: 500}, func(int) string { return "never" })
	assert.False(t, failed.Success)
	assert.Empty(t, failed.Data)
	assert.Equal(t, "boom", failed.Error)
}

func TestQuery(t *testing.T) {
	tests := []struct {
		params   dto.ListParams
		expected string
	}{
		{params: dto.ListParams{}, expected: "/booking"},
		{params: dto.ListParams{Status: "all", Page: 1, Limit: 100}, expected: "/booking?limit=100&page=1"},
		{params: dto.ListParams{Status: "pending"}, expected: "/booking?status=pending"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, client.Query("/booking", tt.params))
	}
}

func TestNormalizeHeaders(t *testing.T) {
	assert.Empty(t, client.NormalizeHeaders(nil))
	assert.Empty(t, client.NormalizeHeaders(42))
	assert.Equal(t, map[string]string{"A": "2"}, client.NormalizeHeaders([][2]string{{"A", "1"}, {"A", "2"}}))
	assert.Equal(t, map[string]string{"A": "2"}, client.NormalizeHeaders(http.Header{"A": {"1", "2"}}))
}
