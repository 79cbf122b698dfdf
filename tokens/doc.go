// Package tokens provides token estimation and request limits for prompts.
//
// Token estimation uses the rule-of-thumb that approximately 4 characters
// equals 1 token. The estimate is floor(characters / 4), counted in Unicode
// code points. It is a deliberate approximation and needs no model-specific
// tokenizer.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // 3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Limits
//
// Limits holds the input and output ceilings of a request:
//
//	limits := tokens.DefaultLimits()   // 4096 input, 1000 output
//	limits.FitsInput(prompt)
//	limits.FitsOutput(response)
package tokens
