// Package provider defines the interface for hosted text-generation providers.
//
// A provider turns one prompt into one completion. Implementations register a
// factory under a name so callers can select a provider from configuration:
//
//	import (
//	    "github.com/randalmurphal/promptpager/provider"
//	    _ "github.com/randalmurphal/promptpager/providers" // register all providers
//	)
//
//	gen, err := provider.New("gemini", provider.Config{
//	    Provider: "gemini",
//	    APIKey:   os.Getenv("GEMINI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := gen.Generate(ctx, "gemini-2.5-flash", "Say hello")
//
// # Available Providers
//
//   - "gemini": Google Gemini API (generateContent)
//
// # Testing
//
// MockGenerator is a substitutable test double with fixed or sequential
// responses, error injection and call tracking.
package provider

import "context"

// Generator produces text completions for prompts.
// Implementations must be safe for concurrent use.
type Generator interface {
	// Generate sends prompt to the provider and returns the completion text.
	// An empty model selects the provider's default model.
	// The context controls cancellation of the in-flight call.
	Generate(ctx context.Context, model, prompt string) (string, error)

	// Provider returns the provider name (e.g., "gemini").
	Provider() string
}
