package hydrus

import (
	"fmt"
	"net/http"
)

// TransportError is returned when a request could not be delivered or no
// response was received, for example because the connection was refused or
// http.Client.Timeout expired.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hydrus %s: transport failure: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CancelledError is returned when the caller's context was cancelled or its
// deadline passed before the call completed. Err is the context's cause, so
// errors.Is(err, context.Canceled) and errors.Is(err,
// context.DeadlineExceeded) work as expected.
type CancelledError struct {
	Path string
	Err  error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("hydrus %s: cancelled: %v", e.Path, e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// EndpointError is returned when Hydrus answers a json or byte stream call with
// a non 2xx status.
type EndpointError struct {
	Path       string
	Method     string
	StatusCode int
	Status     string

	// Body holds the start of the response body.
	Body []byte

	// RemoteError and ExceptionType are the "error" and "exception_type"
	// fields Hydrus includes in its JSON error bodies. They are empty if the
	// body was not JSON.
	RemoteError   string
	ExceptionType string

	// RequestDump and ResponseDump are only populated in debug mode. Error
	// includes them when they are set.
	RequestDump  []byte
	ResponseDump []byte
}

func (e *EndpointError) Error() string {
	msg := fmt.Sprintf("hydrus %s %s: %s", e.Method, e.Path, e.statusText())
	switch {
	case e.ExceptionType != "" && e.RemoteError != "":
		msg += fmt.Sprintf(": %s: %s", e.ExceptionType, e.RemoteError)
	case e.RemoteError != "":
		msg += ": " + e.RemoteError
	case e.ExceptionType != "":
		msg += ": " + e.ExceptionType
	case len(e.Body) > 0:
		msg += fmt.Sprintf(": body: %s", e.Body)
	}
	if len(e.RequestDump) > 0 {
		msg += fmt.Sprintf("\nrequest:\n%s", e.RequestDump)
	}
	if len(e.ResponseDump) > 0 {
		msg += fmt.Sprintf("\nresponse:\n%s", e.ResponseDump)
	}
	return msg
}

func (e *EndpointError) statusText() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// MalformedResponseError is returned when a 2xx json response could not be
// decoded.
type MalformedResponseError struct {
	Path       string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("hydrus %s: invalid json in %d response: %v", e.Path, e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

const (
	// ComponentAPI identifies a mismatch of the Client API version.
	ComponentAPI = "API"

	// ComponentHydrus identifies a mismatch of the Hydrus release.
	ComponentHydrus = "Hydrus"
)

// VersionMismatchError is returned when the remote reports a version this
// library cannot talk to.
type VersionMismatchError struct {
	Component string
	Supported int
	Remote    int
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("hydrus %s version mismatch: client supports %d, remote is %d", e.Component, e.Supported, e.Remote)
}

// InvalidArgumentError is returned before any network activity when the
// arguments to a call are unusable.
type InvalidArgumentError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InvalidArgumentError) Error() string {
	msg := fmt.Sprintf("hydrus %s: invalid argument", e.Op)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}
