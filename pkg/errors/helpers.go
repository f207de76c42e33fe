package errors

import (
	"context"
	stderrors "errors"
)

// CheckContext returns an error if the context is canceled or timed out.
// This provides a standardized way to check and wrap context errors.
func CheckContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return Wrap(err, Canceled, operation+" canceled")
	}
	return nil
}

// Code extracts the ErrorCode from any error in the chain. Errors outside
// this package classify as Unknown.
func Code(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code()
	}
	return Unknown
}
