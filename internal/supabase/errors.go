package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from any Supabase surface.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: %d: %s", e.StatusCode, e.Message)
}

// newAPIError decodes the error body. GoTrue and PostgREST disagree on field
// names, so all known variants are checked.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorField       string `json:"error"`
		ErrorCode        string `json:"error_code"`
		ErrorDescription string `json:"error_description"`
		Code             any    `json:"code"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Msg
	}
	if msg == "" {
		msg = payload.ErrorDescription
	}
	if msg == "" {
		msg = payload.ErrorField
	}
	if msg == "" {
		msg = strings.TrimSpace(truncate(body, 200))
	}
	code := payload.ErrorCode
	if code == "" {
		if s, ok := payload.Code.(string); ok {
			code = s
		}
	}
	return &APIError{StatusCode: status, Code: code, Message: msg}
}

// IsInvalidCredentials reports whether err is a GoTrue bad-login rejection.
func IsInvalidCredentials(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == "invalid_credentials" || apiErr.Code == "user_not_found" {
		return true
	}
	lower := strings.ToLower(apiErr.Message)
	return strings.Contains(lower, "invalid login credentials") ||
		strings.Contains(lower, "invalid password") ||
		strings.Contains(lower, "user not found")
}

// IsEmailNotConfirmed reports whether err means the account exists but the
// address was never confirmed.
func IsEmailNotConfirmed(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == "email_not_confirmed" {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "email not confirmed")
}

// IsAlreadyRegistered reports whether err is a duplicate-signup rejection.
func IsAlreadyRegistered(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	lower := strings.ToLower(apiErr.Message)
	return strings.Contains(lower, "already registered") || strings.Contains(lower, "already exists")
}

// IsAuthFailure reports whether err is any 4xx auth-surface rejection.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}
