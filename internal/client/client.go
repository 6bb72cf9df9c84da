package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/auth"
	"homestay/shared/constant"
	"homestay/shared/dto"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const otelClientAttributeEndpoint = "client.endpoint"

// Options shape a single backend call. Headers accepts map[string]string, [][2]string,
// http.Header or nil.
type Options struct {
	Method  string
	Body    any
	Headers any
}

// Client performs exactly one request per call against the backend REST API.
type Client interface {
	Do(ctx context.Context, endpoint string, opts Options) Result[json.RawMessage]
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenStore
	otel       otel.Otel
}

// New builds a Client for cfg.Backend.BaseURL. No timeout is applied unless configured.
func New(cfg *config.Config, tokens auth.TokenStore, ot otel.Otel) Client {
	httpClient := &http.Client{}
	if cfg.Backend.TimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	}

	return &clientImpl{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		otel:       ot,
	}
}

// Request performs the call and decodes the payload into T.
func Request[T any](ctx context.Context, c Client, endpoint string, opts Options) Result[T] {
	return Decode[T](c.Do(ctx, endpoint, opts))
}

// Query appends the provided list params to endpoint.
func Query(endpoint string, params dto.ListParams) string {
	return dto.WithQuery(endpoint, params.Values())
}

// Do implements Client.
func (c *clientImpl) Do(ctx context.Context, endpoint string, opts Options) (res Result[json.RawMessage]) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+method)
	defer scope.End()

	scope.SetAttribute(otelClientAttributeEndpoint, endpoint)

	req, err := c.newRequest(ctx, method, endpoint, opts)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to build backend request")

		return Failed[json.RawMessage](err)
	}

	log.Debug().Str("method", method).Str("endpoint", endpoint).Msg("calling backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("backend request failed")

		return Failed[json.RawMessage](err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to read backend response")

		return Failed[json.RawMessage](err)
	}

	res = parse(resp.StatusCode, body)
	if !res.Success {
		scope.TraceError(fmt.Errorf("backend %s %s: %s", method, endpoint, res.Error))
		log.Error().
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("error", res.Error).
			Msg("backend call unsuccessful")

		return res
	}

	log.Debug().Str("method", method).Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("backend call succeeded")

	return res
}

func (c *clientImpl) newRequest(ctx context.Context, method, endpoint string, opts Options) (*http.Request, error) {
	var body io.Reader

	switch b := opts.Body.(type) {
	case nil:
	case []byte:
		body = bytes.NewReader(b)
	case json.RawMessage:
		body = bytes.NewReader(b)
	case string:
		body = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	for key, value := range NormalizeHeaders(opts.Headers) {
		req.Header.Set(key, value)
	}

	if token := c.tokens.Get(ctx); token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, constant.AuthorizationBearerPrefix+token)
	}

	return req, nil
}

// NormalizeHeaders flattens the accepted header shapes into one key to value map.
// For repeated keys the last value wins.
func NormalizeHeaders(headers any) map[string]string {
	out := make(map[string]string)

	switch h := headers.(type) {
	case nil:
	case map[string]string:
		for key, value := range h {
			out[key] = value
		}
	case [][2]string:
		for _, pair := range h {
			out[pair[0]] = pair[1]
		}
	case http.Header:
		for key, values := range h {
			if len(values) > 0 {
				out[key] = values[len(values)-1]
			}
		}
	default:
		log.Warn().Str("type", fmt.Sprintf("%T", headers)).Msg("unsupported header shape ignored")
	}

	return out
}
