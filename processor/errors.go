package processor

import "fmt"

// ConfigurationError reports invalid or missing startup configuration.
// It is fatal: a processor is never built from a configuration that fails.
type ConfigurationError struct {
	Field string // Offending setting ("api_key", "max_input_tokens"), may be empty
	Err   error  // Underlying cause
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("configuration: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InputTooLargeError reports a sanitized prompt whose estimate exceeds the
// input ceiling. The caller may shorten the input and try again.
type InputTooLargeError struct {
	Limit    int
	Estimate int
}

// Error implements the error interface.
func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: estimated %d tokens exceeds limit of %d", e.Estimate, e.Limit)
}

// GenerationFailedError wraps any failure of the generation provider.
type GenerationFailedError struct {
	Err error
}

// Error implements the error interface.
func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}
