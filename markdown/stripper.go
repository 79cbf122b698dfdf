package markdown

import (
	"regexp"
	"strings"
)

// Rule is one textual substitution applied by a Stripper.
type Rule struct {
	// Name identifies the construct the rule removes.
	Name string

	// Pattern matches the construct.
	Pattern *regexp.Regexp

	// Replacement is expanded for every match ($1 refers to the first group).
	Replacement string
}

// Stripper removes markdown syntax from text by applying its rules in order.
// It holds only compiled patterns and is safe for concurrent use.
type Stripper struct {
	rules []Rule
}

// NewStripper creates a stripper with the default rule set.
//
// Rule order matters where constructs share delimiters: links, code spans,
// bold and strikethrough run before italic so the single-asterisk pattern
// cannot match inside a wider construct.
//
// Emphasis rules keep the emphasized words and blank-line runs become a
// single space; links and code spans are dropped with their content.
func NewStripper() *Stripper {
	return &Stripper{rules: []Rule{
		{Name: "link", Pattern: regexp.MustCompile(`\[.*?\]\(.*?\)`)},
		{Name: "code", Pattern: regexp.MustCompile("`.*?`")},
		{Name: "bold", Pattern: regexp.MustCompile(`\*\*(.*?)\*\*`), Replacement: "$1"},
		{Name: "strikethrough", Pattern: regexp.MustCompile(`~~(.*?)~~`), Replacement: "$1"},
		{Name: "italic", Pattern: regexp.MustCompile(`\*(.*?)\*`), Replacement: "$1"},
		{Name: "heading", Pattern: regexp.MustCompile(`(?m)^#{1,6}\s+`)},
		{Name: "blockquote", Pattern: regexp.MustCompile(`(?m)^>\s+`)},
		{Name: "rule", Pattern: regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|_{3,})[ \t]*$`)},
		{Name: "blank-lines", Pattern: regexp.MustCompile(`\n{2,}`), Replacement: " "},
	}}
}

// Rules returns a copy of the stripper's rules in application order.
func (s *Stripper) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Strip applies every rule in sequence and trims surrounding whitespace.
// This is a lexical pass, not a markdown parse: nested or overlapping
// constructs resolve by rule order.
func (s *Stripper) Strip(text string) string {
	for _, r := range s.rules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return strings.TrimSpace(text)
}

var defaultStripper = NewStripper()

// Strip removes markdown syntax using the default stripper.
func Strip(text string) string {
	return defaultStripper.Strip(text)
}
