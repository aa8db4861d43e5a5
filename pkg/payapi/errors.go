package payapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrEncoding           = errors.New("encoding request")
	ErrTransport          = errors.New("transport failure")
	ErrDecoding           = errors.New("decoding response")
	ErrConflictingPayload = errors.New("parameters do not fit the request method")
	ErrUnsupportedMethod  = errors.New("unsupported HTTP method")
	ErrNoMoreItems        = errors.New("no more items")
	ErrConfigRequired     = errors.New("config is required")
	ErrInvalidConfig      = errors.New("invalid config")
)

// Error types reported in APIError.Type.
const (
	ErrorTypeAPI            = "api_error"
	ErrorTypeCard           = "card_error"
	ErrorTypeIdempotency    = "idempotency_error"
	ErrorTypeInvalidRequest = "invalid_request_error"
)

// APIError is a non-2xx response with a structured error body.
type APIError struct {
	Type        string `json:"type"                   yaml:"type"`
	Code        string `json:"code,omitempty"         yaml:"code,omitempty"`
	DeclineCode string `json:"decline_code,omitempty" yaml:"decline_code,omitempty"`
	Message     string `json:"message,omitempty"      yaml:"message,omitempty"`
	Param       string `json:"param,omitempty"        yaml:"param,omitempty"`
	DocURL      string `json:"doc_url,omitempty"      yaml:"doc_url,omitempty"`

	// Filled in from the HTTP response rather than the body.
	HTTPStatusCode int    `json:"-" yaml:"-"`
	RequestID      string `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.HTTPStatusCode)
	}

	switch {
	case e.Code != "" && e.Param != "":
		return fmt.Sprintf("%s: %s (code: %s, param: %s, status: %d)", e.Type, msg, e.Code, e.Param, e.HTTPStatusCode)
	case e.Code != "":
		return fmt.Sprintf("%s: %s (code: %s, status: %d)", e.Type, msg, e.Code, e.HTTPStatusCode)
	default:
		return fmt.Sprintf("%s: %s (status: %d)", e.Type, msg, e.HTTPStatusCode)
	}
}

// ErrorResponse is the envelope the server wraps errors in.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// ParseErrorResponse decodes an error body. Bodies that are not JSON, or that
// lack the envelope, still produce an APIError carrying the status code.
func ParseErrorResponse(statusCode int, requestID string, data []byte) *APIError {
	var envelope ErrorResponse

	err := json.Unmarshal(data, &envelope)
	if err != nil || envelope.Error == nil {
		envelope.Error = &APIError{Type: ErrorTypeAPI}
	}

	envelope.Error.HTTPStatusCode = statusCode
	envelope.Error.RequestID = requestID

	return envelope.Error
}

func asAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a 404.
func IsNotFound(err error) bool {
	apiErr, ok := asAPIError(err)

	return ok && apiErr.HTTPStatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the secret key was rejected.
func IsUnauthorized(err error) bool {
	apiErr, ok := asAPIError(err)

	return ok && apiErr.HTTPStatusCode == http.StatusUnauthorized
}

// IsRateLimited checks if the request was throttled.
func IsRateLimited(err error) bool {
	apiErr, ok := asAPIError(err)

	return ok && apiErr.HTTPStatusCode == http.StatusTooManyRequests
}

// IsCardError checks if a payment method was declined.
func IsCardError(err error) bool {
	apiErr, ok := asAPIError(err)

	return ok && apiErr.Type == ErrorTypeCard
}

// IsIdempotencyError checks if an idempotency key was reused with different
// parameters.
func IsIdempotencyError(err error) bool {
	apiErr, ok := asAPIError(err)

	return ok && apiErr.Type == ErrorTypeIdempotency
}
