package adapter

import "errors"

var (
	// ErrNotConfigured is returned by [NewOpenAIAdapter] when no API key is set.
	ErrNotConfigured = errors.New("llm provider is not configured")

	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("provider authentication failed")
	ErrNotFound        = errors.New("not found")
	ErrRateLimited     = errors.New("provider rate limit exceeded")
	ErrProviderFailure = errors.New("provider failure")

	// ErrConnection wraps transport failures (DNS, refused connection, timeout).
	ErrConnection = errors.New("provider connection error")
)

// retryable reports errors worth another attempt: rate limiting and broken
// connections.
func retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrConnection)
}
