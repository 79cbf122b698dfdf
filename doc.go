// Package promptpager forwards sanitized prompts to a hosted generation API
// and returns the answer in token-bounded pages.
//
// The subpackages can be used independently:
//
//   - markdown: best-effort markdown stripping with ordered regex rules
//   - tokens: 4 characters per token estimation and input/output ceilings
//   - paginate: word-boundary pagination under a token limit
//   - provider: Generator interface, registry, errors and a mock
//   - gemini: Generator backed by the Gemini API (google.golang.org/genai)
//   - processor: strip, check, generate once, paginate
//   - config: defaults, YAML/TOML files, .env and environment variables
//   - watch: re-deliver a file's contents on change
//   - server: gin HTTP API with Prometheus metrics
//
// # Quick Start
//
// Stripping and estimating:
//
//	import "github.com/randalmurphal/promptpager/markdown"
//	clean := markdown.Strip("# Hello\n\nThis is **bold** text.")
//	n := tokens.EstimateTokens(clean) // 6
//
// Processing a prompt:
//
//	cfg, _ := config.Load(config.LoadOptions{})
//	p, err := cfg.Build()
//	if err != nil {
//	    log.Fatal(err) // *processor.ConfigurationError
//	}
//	pages, err := p.Process(ctx, prompt)
//
// The promptpager command in cmd/promptpager wraps the same flow with run,
// strip, serve and schema subcommands.
package promptpager
