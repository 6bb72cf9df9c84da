package dto_test

import (
	"homestay/shared/constant"
	"homestay/shared/dto"
	"net/http"
	"net/url"
	"testing"
)

func TestListParams_Values(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.ListParams
		expected string
	}{
		{name: "nothing provided", params: dto.ListParams{}, expected: ""},
		{name: "all sentinel is omitted", params: dto.ListParams{Status: "all", Page: 1, Limit: 100}, expected: "limit=100&page=1"},
		{name: "upper case sentinel is omitted", params: dto.ListParams{Status: "ALL"}, expected: ""},
		{name: "status only", params: dto.ListParams{Status: "pending"}, expected: "status=pending"},
		{name: "negative page ignored", params: dto.ListParams{Page: -1, Limit: 5}, expected: "limit=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Values().Encode(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWithQuery(t *testing.T) {
	if got := dto.WithQuery("/booking", url.Values{}); got != "/booking" {
		t.Errorf("expected bare endpoint, got %s", got)
	}

	values := dto.ListParams{Status: "confirmed"}.Values()
	if got := dto.WithQuery("/booking", values); got != "/booking?status=confirmed" {
		t.Errorf("unexpected endpoint %s", got)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "with all valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20", "status": "pending", "search": " priya "},
			defaultRequest: false,
			expected:       dto.QueryParams{ListParams: dto.ListParams{Status: "pending", Page: 2, Limit: 20}, Search: "priya"},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{ListParams: dto.ListParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit}},
		},
		{
			name:           "with all status",
			queryParams:    map[string]string{"status": "all"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid", "limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{ListParams: dto.ListParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/admin/bookings")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}
