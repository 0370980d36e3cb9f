package httpgw

import (
	"errors"
	"fmt"
)

// ErrDecodeResponse is returned when a response body is not the expected JSON.
var ErrDecodeResponse = errors.New("decode gateway response")

// StatusError reports a non-2xx gateway response.
type StatusError struct {
	Method     string
	Route      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Route, e.StatusCode, e.Body)
}
