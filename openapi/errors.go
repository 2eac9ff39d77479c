package openapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors, one per error kind. Every error returned by Call and its
// variants matches exactly one of them via errors.Is.
var (
	// ErrInvalidArgument indicates a missing or malformed call argument
	ErrInvalidArgument = errors.New("openapi: invalid argument")
	// ErrTransport indicates no response was obtained from the server
	ErrTransport = errors.New("openapi: transport failure")
	// ErrHTTPStatus indicates the server answered outside the 2xx range
	ErrHTTPStatus = errors.New("openapi: unexpected http status")
	// ErrDecode indicates the response body did not match the declared schema
	ErrDecode = errors.New("openapi: failed to decode response")
)

// Kind classifies errors returned by the client
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindTransport
	KindHTTPStatus
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindTransport:
		return "TransportFailure"
	case KindHTTPStatus:
		return "HttpStatusError"
	case KindDecode:
		return "DecodeFailure"
	default:
		return "Unknown"
	}
}

// KindOf reports the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrHTTPStatus):
		return KindHTTPStatus
	case errors.Is(err, ErrDecode):
		return KindDecode
	default:
		return KindUnknown
	}
}

// InvalidArgumentError is returned before any network access when a call
// argument is missing or cannot be encoded.
type InvalidArgumentError struct {
	Operation string
	Param     string
	Reason    string
}

func (e *InvalidArgumentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required parameter"
	}

	return fmt.Sprintf("%s: %s %q when calling %s", ErrInvalidArgument, reason, e.Param, e.Operation)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// TransportError wraps a failure that produced no HTTP response (DNS,
// connect, timeout, cancellation).
type TransportError struct {
	Operation string
	Method    string
	URL       string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s (%s): %v", ErrTransport, e.Method, e.URL, e.Operation, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// HTTPStatusError carries a non-2xx response. Payload holds the decoded error
// body when the operation declares a schema for the status and the body
// matched it; otherwise it is nil and Body remains the primary diagnostic.
type HTTPStatusError struct {
	Operation  string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	Payload    any
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("[%d] Error connecting to the API (%s): %s", e.StatusCode, e.URL, truncate(e.Body, 256))
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrHTTPStatus
}

// IsUnauthorized checks if the error indicates an authentication or scope failure
func (e *HTTPStatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound checks if the error indicates a missing resource
func (e *HTTPStatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsGone checks if the endpoint version has been permanently retired.
// Such responses must never be retried.
func (e *HTTPStatusError) IsGone() bool {
	return e.StatusCode == http.StatusGone
}

// DecodeError is returned when a 2xx body does not match the declared type.
type DecodeError struct {
	Operation  string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d: %v", ErrDecode, e.Operation, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// AsHTTPStatusError extracts an *HTTPStatusError from err's chain.
func AsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 when no response
// was received.
func StatusCode(err error) int {
	if statusErr, ok := AsHTTPStatusError(err); ok {
		return statusErr.StatusCode
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.StatusCode
	}

	return 0
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
