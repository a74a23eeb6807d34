package hydrus

import (
	"io"
	"net/http"
)

// Result is the outcome of a call. Which fields are meaningful depends on As:
//
//   - ReturnJSON: Value
//   - ReturnSuccess: OK
//   - ReturnStatus: StatusCode
//   - ReturnRaw: Response, whose body the caller must close
//   - ReturnStream: Stream, which the caller must close
//
// StatusCode is set for every interpretation.
type Result[T any] struct {
	As         ReturnAs
	StatusCode int

	Value    T
	OK       bool
	Response *http.Response
	Stream   io.ReadCloser
}

// Close releases the body held by a raw or byte stream result. It is safe to
// call on any result.
func (r *Result[T]) Close() error {
	switch {
	case r == nil:
		return nil
	case r.Stream != nil:
		return r.Stream.Close()
	case r.Response != nil && r.Response.Body != nil:
		return r.Response.Body.Close()
	}
	return nil
}
