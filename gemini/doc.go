// Package gemini implements provider.Generator on the hosted Gemini API.
//
// Requests go through the official genai SDK (google.golang.org/genai) to the
// generateContent method. Each Generate call sends exactly one prompt and
// returns the text of the first candidate.
//
// # Basic Usage
//
//	client, err := gemini.New(ctx, gemini.Config{
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	    Model:  "gemini-2.5-flash",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := client.Generate(ctx, "", "Summarize the Go memory model.")
//
// # Provider Registry Usage
//
//	import (
//	    "github.com/randalmurphal/promptpager/provider"
//	    _ "github.com/randalmurphal/promptpager/gemini" // Register provider
//	)
//
//	gen, err := provider.New("gemini", provider.Config{
//	    Provider: "gemini",
//	    APIKey:   key,
//	})
//
// # Errors
//
// Every failure is a *provider.Error with Provider "gemini". API failures
// are tagged with provider.ErrUnauthorized, provider.ErrRateLimited,
// provider.ErrInvalidRequest or provider.ErrUnavailable by HTTP status, and a
// response without text is provider.ErrEmptyResponse.
package gemini
