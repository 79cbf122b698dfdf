// Package markdown strips common markdown syntax from prompt text.
//
// Stripping is a sequence of regular-expression substitutions, not a parse:
//
//   - links [label](url) and inline code spans are removed with their content
//   - bold, italic and strikethrough delimiters are removed, their text kept
//   - heading (#..######) and blockquote (>) markers are removed at line start
//   - horizontal-rule lines (---, ___) are removed
//   - runs of blank lines collapse to a single space
//
// Example usage:
//
//	clean := markdown.Strip("# Hello\n\nThis is **bold** text.")
//	// clean == "Hello This is bold text."
package markdown
