package dto

import (
	"homestay/shared/constant"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListParams are the optional list query parameters every resource root accepts.
// Zero values mean "not provided" and are never sent.
type ListParams struct {
	Status string `json:"status,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// NormalizeStatus translates the client-only "all" sentinel into "no filter".
func NormalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if strings.EqualFold(status, constant.StatusAll) {
		return constant.Empty
	}

	return status
}

// Values encodes the params, omitting everything that was not provided.
func (p ListParams) Values() url.Values {
	values := url.Values{}

	if status := NormalizeStatus(p.Status); status != "" {
		values.Set(constant.RequestParamStatus, status)
	}

	if p.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(p.Page))
	}

	if p.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(p.Limit))
	}

	return values
}

// WithQuery appends the encoded params to endpoint, or returns endpoint untouched when empty.
func WithQuery(endpoint string, values url.Values) string {
	query := values.Encode()
	if query == "" {
		return endpoint
	}

	return endpoint + "?" + query
}

// QueryParams is what the gateway's admin list endpoints accept.
type QueryParams struct {
	ListParams
	Search string `json:"search,omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// Invalid or non-positive page and limit values are ignored. With defaultRequest set,
// missing page and limit fall back to the defaults the admin pages use (page 1, limit 100).
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	q.Status = NormalizeStatus(queryParams.Get(constant.RequestParamStatus))
	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
