package interval

import "errors"

var (
	// ErrNaNEndpoint indicates an interval endpoint was NaN.
	ErrNaNEndpoint = errors.New("interval: endpoints must not be NaN")
	// ErrNilCover indicates a nil Cover was supplied where one is required.
	ErrNilCover = errors.New("interval: cover must not be nil")
)
