package tokens

import "fmt"

// DefaultMaxInputTokens is the default ceiling for a sanitized prompt.
const DefaultMaxInputTokens = 4096

// DefaultMaxOutputTokens is the default ceiling for a single output page.
const DefaultMaxOutputTokens = 1000

// Limits holds the input and output token ceilings for one request.
type Limits struct {
	// Input is the maximum estimated size of a sanitized prompt.
	Input int `json:"max_input_tokens" yaml:"max_input_tokens" toml:"max_input_tokens" jsonschema:"minimum=1,default=4096"`

	// Output is the maximum estimated size of a response returned as a
	// single page, and the page size used when it is exceeded.
	Output int `json:"max_output_tokens" yaml:"max_output_tokens" toml:"max_output_tokens" jsonschema:"minimum=1,default=1000"`

	counter Counter
}

// DefaultLimits returns the 4096 input / 1000 output ceilings.
func DefaultLimits() Limits {
	return Limits{
		Input:  DefaultMaxInputTokens,
		Output: DefaultMaxOutputTokens,
	}
}

// WithCounter returns a copy of the limits that estimates with counter.
func (l Limits) WithCounter(counter Counter) Limits {
	l.counter = counter
	return l
}

// Counter returns the counter used by the Fits helpers.
func (l Limits) Counter() Counter {
	if l.counter == nil {
		return defaultCounter
	}
	return l.counter
}

// Validate checks that both ceilings are positive.
func (l Limits) Validate() error {
	if l.Input <= 0 {
		return fmt.Errorf("max_input_tokens must be > 0, got %d", l.Input)
	}
	if l.Output <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0, got %d", l.Output)
	}
	return nil
}

// FitsInput returns true if text is within the input ceiling.
func (l Limits) FitsInput(text string) bool {
	return l.Counter().FitsInLimit(text, l.Input)
}

// FitsOutput returns true if text is within the output ceiling.
func (l Limits) FitsOutput(text string) bool {
	return l.Counter().FitsInLimit(text, l.Output)
}
