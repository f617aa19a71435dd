package echoclient

import (
	"errors"
	"fmt"
)

// ErrorKind indicates the general category of an [Error].
type ErrorKind int

const (
	// ErrorKindUnknown means the error did not come from this package, or its category
	// could not be determined.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindTransport means an HTTP exchange failed below the protocol level: a
	// connection could not be established, TLS setup failed, or the response was malformed.
	ErrorKindTransport
	// ErrorKindRequestBuild means an outgoing HTTP request could not be constructed.
	ErrorKindRequestBuild
	// ErrorKindSerialization means a payload's events could not be serialized to JSON.
	ErrorKindSerialization
	// ErrorKindIO means reading a collector response body failed.
	ErrorKindIO
	// ErrorKindCorrelationID means a correlation id string was not a valid UUID.
	ErrorKindCorrelationID
	// ErrorKindEnvironment means required configuration was missing or invalid in the
	// process environment.
	ErrorKindEnvironment
	// ErrorKindHTTPResponse means the collector answered with a non-2xx status.
	ErrorKindHTTPResponse
)

// String returns a short description of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport error"
	case ErrorKindRequestBuild:
		return "request build error"
	case ErrorKindSerialization:
		return "serialization error"
	case ErrorKindIO:
		return "I/O error"
	case ErrorKindCorrelationID:
		return "correlation id parse error"
	case ErrorKindEnvironment:
		return "environment configuration error"
	case ErrorKindHTTPResponse:
		return "non-success HTTP response"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by all operations in this package. It tags the
// underlying cause with an [ErrorKind] so callers can distinguish failure categories
// without string matching. Error supports errors.Is/errors.As unwrapping.
type Error struct {
	kind       ErrorKind
	statusCode int
	message    string
	cause      error
}

// Kind returns the category of the error.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// StatusCode returns the HTTP status for an ErrorKindHTTPResponse error, or zero for
// any other kind.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Error returns a description of the error including its category.
func (e *Error) Error() string {
	switch {
	case e.message != "":
		return fmt.Sprintf("%s: %s", e.kind, e.message)
	case e.cause != nil:
		return fmt.Sprintf("%s: %s", e.kind, e.cause)
	case e.kind == ErrorKindHTTPResponse:
		return fmt.Sprintf("%s: status %d", e.kind, e.statusCode)
	default:
		return e.kind.String()
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// ErrorKindOf returns the category of an error returned by this package, or
// ErrorKindUnknown if the error is nil or came from somewhere else.
func ErrorKindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ErrorKindUnknown
}

func transportError(cause error) *Error {
	return &Error{kind: ErrorKindTransport, cause: cause}
}

func requestBuildError(cause error) *Error {
	return &Error{kind: ErrorKindRequestBuild, cause: cause}
}

func serializationError(cause error) *Error {
	return &Error{kind: ErrorKindSerialization, cause: cause}
}

func ioError(cause error) *Error {
	return &Error{kind: ErrorKindIO, cause: cause}
}

func correlationIDError(cause error) *Error {
	return &Error{kind: ErrorKindCorrelationID, cause: cause}
}

func environmentError(message string) *Error {
	return &Error{kind: ErrorKindEnvironment, message: message}
}

func httpResponseError(statusCode int) *Error {
	return &Error{kind: ErrorKindHTTPResponse, statusCode: statusCode}
}
