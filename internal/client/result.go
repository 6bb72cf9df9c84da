package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"homestay/shared/constant"
	"homestay/shared/dto"
	"homestay/shared/failure"
	"net/http"
)

// Result is the uniform outcome of a backend call. Remote failures never surface as Go errors;
// callers branch on Success.
type Result[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"-"`
}

// Err converts a failed result into a *failure.Failure carrying the upstream status.
// Transport failures, which have no status, become 502.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}

	msg := r.Error
	if msg == "" {
		msg = constant.ResponseErrorUnexpected
	}

	if r.StatusCode == 0 {
		return failure.BadGateway(msg)
	}

	return failure.FromStatus(r.StatusCode, msg)
}

// Failed builds an unsuccessful result from a local error.
func Failed[T any](err error) Result[T] {
	msg := constant.ResponseErrorUnexpected
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	return Result[T]{Error: msg}
}

// Map carries a result over to another payload type. fn only runs on success.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := Result[U]{
		Success:    r.Success,
		Message:    r.Message,
		Error:      r.Error,
		StatusCode: r.StatusCode,
	}

	if r.Success {
		out.Data = fn(r.Data)
	}

	return out
}

// Decode turns a raw result into a typed one. A payload that does not fit T is a failure.
func Decode[T any](raw Result[json.RawMessage]) Result[T] {
	out := Result[T]{
		Success:    raw.Success,
		Message:    raw.Message,
		Error:      raw.Error,
		StatusCode: raw.StatusCode,
	}

	if !raw.Success || len(raw.Data) == 0 {
		return out
	}

	if err := json.Unmarshal(raw.Data, &out.Data); err != nil {
		out.Success = false
		out.Error = fmt.Sprintf("failed to decode response data: %v", err)
	}

	return out
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
}

// parse applies the backend's response conventions to a decoded body.
func parse(status int, body []byte) Result[json.RawMessage] {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// non-object JSON bodies are valid, they just carry no envelope
		if !json.Valid(body) {
			return Failed[json.RawMessage](err)
		}
	}

	message := messageText(env.Message)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		errMsg := message
		if errMsg == "" {
			errMsg = fmt.Sprintf("HTTP error! status: %d", status)
		}

		return Result[json.RawMessage]{
			Error:      errMsg,
			Message:    message,
			StatusCode: status,
		}
	}

	data := json.RawMessage(bytes.TrimSpace(body))
	if truthy(env.Data) {
		data = env.Data
	}

	return Result[json.RawMessage]{
		Success:    true,
		Data:       data,
		Message:    message,
		StatusCode: status,
	}
}

func messageText(raw json.RawMessage) string {
	if !truthy(raw) {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	return string(raw)
}

// truthy follows the backend client's loose notion of "present": null, false, 0 and ""
// count as absent, while empty objects and arrays do not.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	switch string(trimmed) {
	case "null", "false", "0", `""`, "0.0", "-0":
		return false
	}

	return true
}

// List decodes a list payload that may be a bare array or keyed under key.
func List[T any](raw Result[json.RawMessage], key string) Result[[]T] {
	out := Result[[]T]{
		Success:    raw.Success,
		Message:    raw.Message,
		Error:      raw.Error,
		StatusCode: raw.StatusCode,
	}

	if !raw.Success {
		return out
	}

	items, err := dto.DecodeList[T](raw.Data, key)
	if err != nil {
		out.Success = false
		out.Error = err.Error()

		return out
	}

	out.Data = items

	return out
}
