package processor

import (
	"errors"

	"github.com/randalmurphal/promptpager/tokens"
)

// Config is the immutable configuration of a Processor.
type Config struct {
	// Model is passed to the generator on every call.
	// Empty selects the generator's default model.
	Model string

	// Limits holds the input and output token ceilings.
	// Default: 4096 input, 1000 output.
	Limits tokens.Limits
}

// DefaultConfig returns a Config with the default token ceilings.
func DefaultConfig() Config {
	return Config{
		Limits: tokens.DefaultLimits(),
	}
}

// Validate checks the token ceilings.
func (c Config) Validate() error {
	if c.Limits.Input <= 0 {
		return &ConfigurationError{Field: "max_input_tokens", Err: errors.New("must be greater than zero")}
	}
	if c.Limits.Output <= 0 {
		return &ConfigurationError{Field: "max_output_tokens", Err: errors.New("must be greater than zero")}
	}
	return nil
}
