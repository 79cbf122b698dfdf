package paginate

import "strings"

var defaultPaginator = New()

// Split pages text with the default paginator.
func Split(text string, limit int) []string {
	return defaultPaginator.Split(text, limit)
}

// Join rebuilds the word sequence of a page sequence.
// Original spacing and line breaks are not recoverable.
func Join(pages []string) string {
	return strings.Join(pages, DefaultSeparator)
}
