// Package paginate splits long model output into token-bounded pages.
//
// Pages always break between words, never inside one. Word splitting is on
// whitespace, so runs of spaces and newlines collapse to the single space
// used to join a page.
//
// # Basic Usage
//
//	pages := paginate.Split(text, 1000)
//
// # Custom Token Counter
//
// By default, pagination uses an estimating counter (4 chars/token).
// Provide another counter to change how words are weighed:
//
//	p := paginate.New().WithCounter(myCounter)
//	pages := p.Split(text, 1000)
//
// Joining the pages with single spaces reproduces the original word
// sequence:
//
//	paginate.Join(pages) == strings.Join(strings.Fields(text), " ")
package paginate
