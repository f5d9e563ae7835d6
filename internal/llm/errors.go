package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConfig indicates the generative backend cannot be used because
	// a required setting (credentials, endpoint, model) is absent.
	ErrMissingConfig = errors.New("missing ai configuration")

	// ErrProvider is the umbrella for every transport or provider failure.
	// The more specific errors below are always reported together with it.
	ErrProvider = errors.New("ai provider error")

	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("ai provider unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("ai retry attempts exhausted")

	// ErrInvalidOutput indicates the model response could not be decoded
	// into, or did not conform to, the expected structured shape.
	ErrInvalidOutput = errors.New("invalid ai output format")
)

// ConfigError names the setting that must be provided before the
// generative backend can be used. It matches ErrMissingConfig.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s is not set", ErrMissingConfig, e.Setting)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// providerError tags cause with ErrProvider so callers can classify on either.
func providerError(cause error, detail error) error {
	if detail == nil {
		return fmt.Errorf("%w: %w", ErrProvider, cause)
	}
	return fmt.Errorf("%w: %w: %v", ErrProvider, cause, detail)
}
