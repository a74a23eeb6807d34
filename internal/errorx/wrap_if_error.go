package errorx

import (
	"context"
	"fmt"
)

// WrapIfError wraps the provided error with an additional message if it is not
// nil. This is intended to be used inside a defer to wrap the returned error
func WrapIfError(msg string, err *error) {
	if *err != nil {
		*err = fmt.Errorf("%s: %w", msg, *err)
	}
}

// ContextError returns the reason ctx is done, or nil if ctx is still live.
//
// Failures seen while ctx is done are reported as cancellations rather than
// transport problems, so this is checked before classifying an error from the
// http client.
func ContextError(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	return context.Cause(ctx)
}
