package client

import (
	"encoding/json"
	"net/http"
)

// OK is a successful raw result carrying payload, for tests and stubs.
func OK(payload string) Result[json.RawMessage] {
	return Result[json.RawMessage]{Success: true, Data: json.RawMessage(payload), StatusCode: http.StatusOK}
}

// Fail is an unsuccessful raw result with the given status and message.
func Fail(status int, msg string) Result[json.RawMessage] {
	return Result[json.RawMessage]{Error: msg, Message: msg, StatusCode: status}
}
