package xendit

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/xendit/internal/jsoncodec"
)

// Result is one API reply. Body is kept exactly as received; Value and Err
// interpret it on demand.
type Result[T any] struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Text returns the response body unmodified, whatever the status.
func (r *Result[T]) Text() string {
	return string(r.Body)
}

// OK reports a 2xx status.
func (r *Result[T]) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Value decodes a successful body into T. A non-2xx reply yields its *APIError.
func (r *Result[T]) Value() (T, error) {
	var v T
	if apiErr := r.Err(); apiErr != nil {
		return v, apiErr
	}
	if err := jsoncodec.Unmarshal(r.Body, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// Err returns nil for a 2xx reply and the decoded error otherwise. Bodies that
// are not Xendit error documents keep their text in Message.
func (r *Result[T]) Err() *APIError {
	if r.OK() {
		return nil
	}
	apiErr := &APIError{}
	if err := jsoncodec.Unmarshal(r.Body, apiErr); err != nil || (apiErr.ErrorCode == "" && apiErr.Message == "") {
		apiErr = &APIError{Message: strings.TrimSpace(string(r.Body))}
	}
	apiErr.StatusCode = r.StatusCode
	return apiErr
}
