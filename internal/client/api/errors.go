package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures (DNS, connection refused,
// timeout). Callers distinguish it with errors.Is; anything wrapped in it
// never reached the server or never produced a status.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response. The body is kept verbatim so flows can show
// the server's validation payload exactly as it arrived.
type Error struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message())
}

// Message extracts the human-readable part of the error payload: the "error"
// field (login failures), then "detail" (permission/auth failures), falling
// back to the raw body.
func (e *Error) Message() string {
	var payload struct {
		Err    string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(e.Body, &payload); err == nil {
		if payload.Err != "" {
			return payload.Err
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return e.Raw()
}

// Raw returns the error payload stringified, for flows that surface it
// unchanged.
func (e *Error) Raw() string {
	if len(e.Body) == 0 {
		return ""
	}
	return string(e.Body)
}
