package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInventoryType = errors.New("invalid inventory type")

	ErrUpstream                  = errors.New("clumio api request failed")
	ErrUpstreamBadRequest        = errors.New("clumio api rejected request")
	ErrUpstreamUnauthorized      = errors.New("clumio api unauthorized")
	ErrUpstreamForbidden         = errors.New("clumio api forbidden")
	ErrUpstreamNotFound          = errors.New("clumio api resource not found")
	ErrUpstreamServer            = errors.New("clumio api server error")
	ErrUpstreamMalformedResponse = errors.New("clumio api returned malformed response")
)

// UpstreamError describes a non-2xx response from the Clumio API.
// Detail is the response body: compact JSON when it parses, raw text otherwise.
type UpstreamError struct {
	StatusCode int
	Detail     string

	kind error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Clumio API error: %d - %s", e.StatusCode, e.Detail)
}

func (e *UpstreamError) Unwrap() error {
	return e.kind
}
