package paginate

import (
	"strings"

	"github.com/randalmurphal/promptpager/tokens"
)

// Paginator splits text into pages that fit within a token limit.
type Paginator struct {
	counter   tokens.Counter
	separator string
}

// New creates a paginator using the default estimating counter.
func New() *Paginator {
	return &Paginator{
		counter:   tokens.NewEstimatingCounter(),
		separator: DefaultSeparator,
	}
}

// DefaultSeparator joins the words of a page.
const DefaultSeparator = " "

// WithCounter sets a custom token counter.
func (p *Paginator) WithCounter(counter tokens.Counter) *Paginator {
	p.counter = counter
	return p
}

// Counter returns the paginator's token counter.
func (p *Paginator) Counter() tokens.Counter {
	return p.counter
}

// Split breaks text into pages on word boundaries.
//
// Each word is estimated on its own. A page is closed when adding the next
// word would push its running estimate over limit, and that word opens the
// next page. A word whose estimate alone exceeds limit occupies a page by
// itself. Empty or whitespace-only text yields no pages.
func (p *Paginator) Split(text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		pages   []string
		current []string
		used    int
	)
	for _, word := range words {
		cost := p.counter.Count(word)
		if used+cost > limit && len(current) > 0 {
			pages = append(pages, strings.Join(current, p.separator))
			current = current[:0]
			used = 0
		}
		current = append(current, word)
		used += cost
	}
	if len(current) > 0 {
		pages = append(pages, strings.Join(current, p.separator))
	}
	return pages
}
