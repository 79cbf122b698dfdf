package paginate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/randalmurphal/promptpager/tokens"
)

func TestNew(t *testing.T) {
	p := New()
	if p.Counter() == nil {
		t.Fatal("expected default counter")
	}
}

func TestPaginator_WithCounter(t *testing.T) {
	// 2 chars per token doubles every word's weight.
	p := New().WithCounter(tokens.NewEstimatingCounterWithRatio(2))

	pages := p.Split("abcd abcd abcd", 4)
	expected := []string{"abcd abcd", "abcd"}
	if !reflect.DeepEqual(pages, expected) {
		t.Errorf("Split() = %q, expected %q", pages, expected)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected []string
	}{
		{
			name:     "empty text",
			text:     "",
			limit:    10,
			expected: nil,
		},
		{
			name:     "whitespace only",
			text:     "  \n\t  ",
			limit:    10,
			expected: nil,
		},
		{
			name:     "fits in one page",
			text:     "one two three",
			limit:    10,
			expected: []string{"one two three"},
		},
		{
			name:     "collapses spacing",
			text:     "  alpha\n\nbeta   gamma ",
			limit:    10,
			expected: []string{"alpha beta gamma"},
		},
		{
			name:     "breaks when the next word would exceed",
			text:     "aaaa bbbb cccc dddd",
			limit:    3,
			expected: []string{"aaaa bbbb cccc", "dddd"},
		},
		{
			name:     "zero-cost words never force a break",
			text:     "a b c d e f",
			limit:    0,
			expected: []string{"a b c d e f"},
		},
		{
			name:     "oversized first word sits alone",
			text:     strings.Repeat("x", 40) + " tail",
			limit:    5,
			expected: []string{strings.Repeat("x", 40), "tail"},
		},
		{
			name:     "oversized middle word sits alone",
			text:     "head " + strings.Repeat("y", 40) + " tail",
			limit:    5,
			expected: []string{"head", strings.Repeat("y", 40), "tail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := Split(tt.text, tt.limit)
			if !reflect.DeepEqual(pages, tt.expected) {
				t.Errorf("Split(%q, %d) = %q, expected %q", tt.text, tt.limit, pages, tt.expected)
			}
		})
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		strings.Repeat("lorem ipsum dolor sit amet, consectetur adipiscing elit ", 200),
		"single",
		"mixed\n\nline   breaks\tand\ttabs " + strings.Repeat("z", 90),
	}
	limits := []int{1, 2, 7, 50, 1000}

	for _, text := range texts {
		for _, limit := range limits {
			pages := Split(text, limit)
			if got, want := Join(pages), strings.Join(strings.Fields(text), " "); got != want {
				t.Fatalf("Join(Split(text, %d)) lost words:\n got: %q\nwant: %q", limit, got, want)
			}
			for i, page := range pages {
				if page == "" {
					t.Fatalf("page %d is empty for limit %d", i, limit)
				}
			}
		}
	}
}

func TestSplit_PagesRespectLimit(t *testing.T) {
	text := strings.Repeat("word another somewhat-longer-token x ", 300)
	limit := 25

	for i, page := range Split(text, limit) {
		sum := 0
		for _, w := range strings.Fields(page) {
			sum += tokens.EstimateTokens(w)
		}
		if sum > limit && len(strings.Fields(page)) > 1 {
			t.Errorf("page %d accumulates %d tokens, limit %d", i, sum, limit)
		}
	}
}

func TestSplit_OneTokenWordsFillPagesExactly(t *testing.T) {
	// Every word is exactly 4 characters, so each estimates to 1 token.
	words := make([]string, 0, 103)
	for range 103 {
		words = append(words, "abcd")
	}
	text := strings.Join(words, " ")

	for _, n := range []int{1, 5, 10, 103, 200} {
		pages := Split(text, n)
		for i, page := range pages {
			count := len(strings.Fields(page))
			if i < len(pages)-1 && count != n {
				t.Errorf("limit %d: page %d has %d words, expected %d", n, i, count, n)
			}
			if count > n {
				t.Errorf("limit %d: page %d has %d words, more than the limit", n, i, count)
			}
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, expected empty", got)
	}
	if got := Join([]string{"a b", "c"}); got != "a b c" {
		t.Errorf("Join() = %q, expected %q", got, "a b c")
	}
}

func BenchmarkSplit(b *testing.B) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 2000)

	b.ResetTimer()
	for range b.N {
		Split(text, 1000)
	}
}
