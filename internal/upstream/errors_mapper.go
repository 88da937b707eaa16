package upstream

import (
	"bytes"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx resty response into *Error. 2xx responses
// map to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &Error{
		StatusCode: resp.StatusCode(),
		Body:       bytes.TrimSpace(resp.Body()),
	}
}

// carriesBody reports whether the method conventionally carries a request
// body. GET and HEAD requests are forwarded without one.
func carriesBody(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}
