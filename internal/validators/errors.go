package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingType            = errors.New("missing type")
	ErrInvalidType            = errors.New("invalid type")
	ErrInvalidBucketID        = errors.New("invalid bucket id")
	ErrInvalidAccountNativeID = errors.New("invalid account native id")
)

// RequestError is a validation failure whose message is safe to return to
// the caller as is. It unwraps to one of the sentinels above.
type RequestError struct {
	Message string

	kind error
}

func newRequestError(kind error, format string, args ...any) *RequestError {
	return &RequestError{Message: fmt.Sprintf(format, args...), kind: kind}
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.kind
}
