package adapter

import (
	"errors"
	"fmt"
	"strings"
)

// NodeName identifies the remote service in API call errors.
const NodeName = "Yousign"

var (
	// ErrUnexpectedStatus is wrapped by an [*APICallError] for non-2xx
	// responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrUnexpectedResponse is wrapped by an [*APICallError] when a 2xx
	// response is not JSON or lacks the data the next step depends on (e.g.
	// an "id").
	ErrUnexpectedResponse = errors.New("unexpected response body")
	// ErrInvalidCallBody is returned when both body kinds are set on a call.
	ErrInvalidCallBody = errors.New("call body must be either json or multipart")
)

// APICallError describes a failed remote call. Body holds the raw response
// body when the remote API answered.
type APICallError struct {
	Node       string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *APICallError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s API call %s %s failed", e.Node, e.Method, e.URL)
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, " with status %d", e.StatusCode)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if e.Body != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Body)
	}
	return sb.String()
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

// IsAPICallError reports whether err is or wraps an [*APICallError].
func IsAPICallError(err error) bool {
	var apiErr *APICallError
	return errors.As(err, &apiErr)
}
