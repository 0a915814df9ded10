package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"

	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
)

// Errors returned by the client form a closed set: *NetworkError,
// *TimeoutError, *HTTPError and *BackendError. Callers switch on these
// instead of reading response bodies.

// NetworkError means no response was received.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError means the fixed request timeout or the caller's deadline elapsed.
type TimeoutError struct {
	Method string
	Path   string
	Err    error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s %s: request timed out: %v", e.Method, e.Path, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Message and Errors are lifted from the
// response envelope when the body has one.
type HTTPError struct {
	Method  string
	Path    string
	Status  int
	Body    []byte
	Message string
	Errors  []string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// Is lets errors.Is match a 404 against ErrNotFound.
func (e *HTTPError) Is(target error) bool {
	return target == apperrors.ErrNotFound && e.Status == http.StatusNotFound
}

// BackendError is a 2xx response whose envelope reports success=false.
type BackendError struct {
	Message string
	Errors  []string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return "backend reported failure"
	}
	return "backend reported failure: " + e.Message
}

// StatusCSRFMismatch is the non-standard status the backend uses for a stale
// or missing CSRF token.
const StatusCSRFMismatch = 419

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// IsUnauthorized reports a 401: the session is missing or expired.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsCSRFMismatch reports a 419 from a stale or missing CSRF token.
func IsCSRFMismatch(err error) bool {
	return StatusOf(err) == StatusCSRFMismatch
}

// IsNotFound reports a 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// Recoverable reports whether placeholder data may stand in for a failed
// read. Auth rejections and cancelled contexts never qualify.
func Recoverable(err error) bool {
	if err == nil || IsUnauthorized(err) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

// MessageOf returns the message to show an end user. Backend messages are
// passed through verbatim.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var (
		httpErr    *HTTPError
		backendErr *BackendError
		timeoutErr *TimeoutError
		networkErr *NetworkError
	)
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Message != "" {
			return httpErr.Message
		}
		if len(httpErr.Errors) > 0 {
			return httpErr.Errors[0]
		}
		return fmt.Sprintf("request failed with status %d", httpErr.Status)
	case errors.As(err, &backendErr):
		if backendErr.Message != "" {
			return backendErr.Message
		}
		return "the server could not complete the request"
	case errors.As(err, &timeoutErr):
		return "the server took too long to respond"
	case errors.As(err, &networkErr):
		return "unable to reach the server, check your connection"
	}
	return err.Error()
}

func classifyTransportError(method, path string, err error) error {
	if isTimeout(err) {
		return &TimeoutError{Method: method, Path: path, Err: err}
	}
	return &NetworkError{Method: method, Path: path, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func newHTTPError(method, path string, status int, body []byte) *HTTPError {
	httpErr := &HTTPError{Method: method, Path: path, Status: status, Body: body}
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil {
		httpErr.Message = env.Message
		httpErr.Errors = flattenErrors(env.Errors)
	}
	return httpErr
}

// flattenErrors accepts either ["msg", ...] or {"field": ["msg", ...]}.
func flattenErrors(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var byField map[string][]string
	if err := json.Unmarshal(raw, &byField); err != nil {
		return nil
	}
	fields := make([]string, 0, len(byField))
	for field := range byField {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		list = append(list, byField[field]...)
	}
	return list
}
