package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDestinationNotAllowed is returned by the generic forwarder when
	// the destination host is not on the configured allow-list.
	ErrDestinationNotAllowed = errors.New("destination host is not allowed")

	// ErrInvalidDestination is returned by the generic forwarder when the
	// destination cannot be parsed as an absolute http(s) URL.
	ErrInvalidDestination = errors.New("invalid destination url")
)

// Error carries a non-2xx upstream response. Handlers mirror StatusCode to
// the caller and attach Body under a `details` key; transport failures stay
// ordinary errors and map to 500.
type Error struct {
	// StatusCode is the HTTP status the upstream responded with.
	StatusCode int

	// Body is the raw upstream error payload, whitespace-trimmed.
	Body []byte
}

func (e *Error) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("upstream http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("upstream http %d: %s", e.StatusCode, e.Body)
}

// Status returns the upstream status code, defaulting to 500 when the
// recorded code is outside the valid HTTP range.
func (e *Error) Status() int {
	if e.StatusCode < 100 || e.StatusCode > 599 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}
