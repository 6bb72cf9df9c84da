package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeList accepts a bare JSON array or an object holding the array under key.
// An object without key decodes to an empty list.
func DecodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		items := []T{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}

		return items, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, fmt.Errorf("failed to decode list envelope: %w", err)
	}

	inner, ok := keyed[key]
	if !ok {
		return []T{}, nil
	}

	return DecodeList[T](inner, key)
}

// Number is a numeric field the backend sometimes sends as a string.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))

	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	if text == "" || text == "null" {
		*n = 0

		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", text, err)
	}

	*n = Number(value)

	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

func (n Number) Int() int {
	return int(n)
}

// Statistics is passed through from the backend untouched.
type Statistics map[string]any
