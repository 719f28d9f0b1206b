package xendit

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingSecretKey = errors.New("missing xendit secret key")
	ErrInvalidBaseURL   = errors.New("invalid base url")
	ErrMissingID        = errors.New("missing resource id")
	ErrEncode           = errors.New("encode request body failed")
	ErrRequest          = errors.New("xendit request failed")
	ErrDecode           = errors.New("decode response body failed")

	// The message is shown to callers verbatim.
	ErrInvalidAccountType = errors.New("Account type should be OWNED or MANAGED") //nolint:staticcheck // ST1005: user-facing text
)

// APIError is the structured form of a non-2xx reply.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Errors     []any  `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	code := e.ErrorCode
	if code == "" {
		code = http.StatusText(e.StatusCode)
	}
	if e.Message == "" {
		return fmt.Sprintf("xendit: %d %s", e.StatusCode, code)
	}
	return fmt.Sprintf("xendit: %d %s: %s", e.StatusCode, code, e.Message)
}
