package transform

import "errors"

var (
	// ErrBadTransformer indicates an invalid or duplicate registration.
	ErrBadTransformer = errors.New("transform: bad transformer")

	// ErrUnknownTransformer indicates a lookup for an unregistered name.
	ErrUnknownTransformer = errors.New("transform: unknown transformer")

	// ErrEmptyInput indicates a request with no text to transform.
	ErrEmptyInput = errors.New("transform: empty input text")
)
