package fetch

import "errors"

// Sentinel kinds for fetch errors.
var (
	ErrStatus      = errors.New("unexpected response status")
	ErrUnreachable = errors.New("resource unreachable")
)
