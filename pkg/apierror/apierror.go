package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failure reported by the Campus Connect backend, decoded from
// its JSON error envelope. HTTPStatus is the status of the response that
// carried it.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// envelope matches the backend's error bodies. Most endpoints report failures
// as {"message": "..."}; a few nest {"error": {"code": ..., "message": ...}}.
type envelope struct {
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

// Decode builds an APIError from a non-2xx response body. It never fails: an
// undecodable or empty body falls back to the status text.
func Decode(status int, body []byte) *APIError {
	out := &APIError{
		Code:       codeForStatus(status),
		Message:    http.StatusText(status),
		HTTPStatus: status,
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return out
	}

	if env.Error != nil {
		if env.Error.Code != "" {
			out.Code = env.Error.Code
		}
		if env.Error.Message != "" {
			out.Message = env.Error.Message
		}
		out.Details = env.Error.Details
		return out
	}

	if strings.TrimSpace(env.Message) != "" {
		out.Message = env.Message
	}

	return out
}

func (e *APIError) Unauthorized() bool {
	return e != nil && e.HTTPStatus == http.StatusUnauthorized
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		if status >= 500 {
			return "SERVER_ERROR"
		}
		return "REQUEST_FAILED"
	}
}
