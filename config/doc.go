// Package config loads, validates and builds the promptpager configuration.
//
// Sources, lowest to highest precedence:
//
//  1. DefaultConfig
//  2. an optional YAML or TOML file (LoadFile)
//  3. a dotenv file, which never overrides exported variables
//  4. environment variables (GEMINI_API_KEY, GEMINI_MODEL, GEMINI_BASE_URL,
//     GEMINI_API_VERSION and the PROMPTPAGER_ variables)
//
// Example file:
//
//	provider: gemini
//	model: gemini-2.5-flash
//	limits:
//	  max_input_tokens: 4096
//	  max_output_tokens: 1000
//	server:
//	  addr: ":8080"
//	log:
//	  level: info
//	  format: json
//
// Validation failures are *processor.ConfigurationError values. Build turns
// a valid Config into a ready *processor.Processor.
package config
