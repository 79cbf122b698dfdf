package processor

import (
	"context"
	"errors"

	"github.com/randalmurphal/promptpager/markdown"
	"github.com/randalmurphal/promptpager/paginate"
	"github.com/randalmurphal/promptpager/provider"
	"github.com/randalmurphal/promptpager/tokens"
)

// Processor sanitizes prompts, forwards them to a generator and pages the
// result. It holds no mutable state and is safe for concurrent use when its
// generator is.
type Processor struct {
	gen      provider.Generator
	model    string
	limits   tokens.Limits
	counter  tokens.Counter
	stripper *markdown.Stripper
	pager    *paginate.Paginator
}

// Option configures a Processor.
type Option func(*Processor)

// WithCounter replaces the token estimator used for both ceilings and for
// pagination.
func WithCounter(counter tokens.Counter) Option {
	return func(p *Processor) {
		p.counter = counter
	}
}

// WithStripper replaces the markdown stripper.
func WithStripper(s *markdown.Stripper) Option {
	return func(p *Processor) {
		p.stripper = s
	}
}

// New creates a Processor. The configuration is validated here and any
// problem is returned as a *ConfigurationError.
func New(gen provider.Generator, cfg Config, opts ...Option) (*Processor, error) {
	if gen == nil {
		return nil, &ConfigurationError{Field: "generator", Err: errors.New("generator is required")}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Processor{
		gen:      gen,
		model:    cfg.Model,
		counter:  cfg.Limits.Counter(),
		stripper: markdown.NewStripper(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.counter == nil {
		return nil, &ConfigurationError{Field: "counter", Err: errors.New("counter is required")}
	}
	if p.stripper == nil {
		return nil, &ConfigurationError{Field: "stripper", Err: errors.New("stripper is required")}
	}
	p.limits = cfg.Limits.WithCounter(p.counter)
	p.pager = paginate.New().WithCounter(p.counter)

	return p, nil
}

// Model returns the model passed to the generator.
func (p *Processor) Model() string {
	return p.model
}

// Limits returns the token ceilings.
func (p *Processor) Limits() tokens.Limits {
	return p.limits
}

// Estimate returns the token estimate of text.
func (p *Processor) Estimate(text string) int {
	return p.counter.Count(text)
}

// Sanitize strips markdown from raw and checks the result against the input
// ceiling. It returns *InputTooLargeError when the estimate is over; the
// stripped text is returned either way.
func (p *Processor) Sanitize(raw string) (string, error) {
	return sanitize(p.stripper, p.limits, raw)
}

// Sanitize strips raw with the default stripper and checks it against
// limits.Input, estimating with the limits' counter. It needs no generator.
func Sanitize(raw string, limits tokens.Limits) (string, error) {
	return sanitize(markdown.NewStripper(), limits, raw)
}

func sanitize(s *markdown.Stripper, limits tokens.Limits, raw string) (string, error) {
	sanitized := s.Strip(raw)
	if !limits.FitsInput(sanitized) {
		return sanitized, &InputTooLargeError{
			Limit:    limits.Input,
			Estimate: limits.Counter().Count(sanitized),
		}
	}
	return sanitized, nil
}

// Process sanitizes raw, makes exactly one generator call and returns the
// generated text as pages.
//
// Output within the output ceiling comes back as a single page, unmodified.
// Longer output is split on word boundaries into pages of at most the output
// ceiling each. Generator failures of every kind, cancellation included,
// are returned as *GenerationFailedError.
func (p *Processor) Process(ctx context.Context, raw string) ([]string, error) {
	sanitized, err := p.Sanitize(raw)
	if err != nil {
		return nil, err
	}

	text, err := p.gen.Generate(ctx, p.model, sanitized)
	if err != nil {
		return nil, &GenerationFailedError{Err: err}
	}

	if p.limits.FitsOutput(text) {
		return []string{text}, nil
	}
	return p.pager.Split(text, p.limits.Output), nil
}
