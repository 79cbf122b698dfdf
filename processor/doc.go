// Package processor turns a raw prompt into paged generated text.
//
// A Process call runs four steps:
//
//  1. strip markdown from the prompt (package markdown)
//  2. reject it with *InputTooLargeError if its estimate is over the input ceiling
//  3. make one call to the provider.Generator
//  4. return the text as one page, or split it (package paginate) when its
//     estimate is over the output ceiling
//
// # Basic Usage
//
//	gen, err := provider.New("gemini", provider.Config{Provider: "gemini", APIKey: key})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := processor.New(gen, processor.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pages, err := p.Process(ctx, "# Hello\n\nThis is **bold** text.")
//
// # Errors
//
// Three error types are returned, each matched with errors.As:
//
//   - *ConfigurationError from New
//   - *InputTooLargeError from Process and Sanitize
//   - *GenerationFailedError from Process, wrapping the generator's error
//
// The package does not log, retry or cache.
package processor
