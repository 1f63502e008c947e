package currencyapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrMissingAPIKey is returned by the constructors when the api key is
	// empty.
	ErrMissingAPIKey = errors.New("currencyapi: api key is empty")

	// ErrMissingDate is returned when a required date argument is the zero
	// time. Nothing is sent in that case.
	ErrMissingDate = errors.New("currencyapi: date argument is required")
)

// APIError is returned when the service answers with a non-200 status. Body
// holds the raw response; Message and Errors are filled when the body carries
// the service's JSON error envelope.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Errors     map[string][]string
	Body       []byte
}

// errorEnvelope is the document the service sends on 4xx and 5xx answers.
// Validation failures carry per-parameter messages under errors.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func newAPIError(res *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Body:       body,
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Message
		apiErr.Errors = envelope.Errors
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("currencyapi: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("currencyapi: request failed with status %d", e.StatusCode)
}

// ParseError is returned when a 200 response cannot be decoded into the
// expected shape. The service is known to emit false instead of a number for
// some fields; Body keeps the raw response so such cases can be inspected.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("currencyapi: parsing response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error { return e.Err }
