package ratelimit

import "errors"

var (
	ErrInvalidLimit = errors.New("invalid rate limit")
	ErrStore        = errors.New("rate limit store error")
)
