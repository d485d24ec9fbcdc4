package paginate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{
			name:     "breaks on word boundaries",
			text:     "The quick brown fox jumps",
			maxChars: 10,
			want:     []string{"The quick", "brown fox", "jumps"},
		},
		{
			name:     "hard breaks when no spaces",
			text:     "abcdefgh",
			maxChars: 3,
			want:     []string{"abc", "def", "gh"},
		},
		{
			name:     "single page when bound exceeds length",
			text:     "short",
			maxChars: 100,
			want:     []string{"short"},
		},
		{
			name:     "exact fit",
			text:     "abc",
			maxChars: 3,
			want:     []string{"abc"},
		},
		{
			name:     "empty text passes through",
			text:     "",
			maxChars: 5,
			want:     []string{""},
		},
		{
			name:     "whitespace-only text passes through unchanged",
			text:     "   ",
			maxChars: 5,
			want:     []string{"   "},
		},
		{
			name:     "zero bound disables pagination",
			text:     "hello world",
			maxChars: 0,
			want:     []string{"hello world"},
		},
		{
			name:     "negative bound disables pagination",
			text:     "hello world",
			maxChars: -3,
			want:     []string{"hello world"},
		},
		{
			name:     "bound of one emits single characters",
			text:     "ab",
			maxChars: 1,
			want:     []string{"a", "b"},
		},
		{
			name:     "runs of spaces never emit blank pages",
			text:     "a     b",
			maxChars: 3,
			want:     []string{"a", "b"},
		},
		{
			name:     "leading and trailing spaces are trimmed from pages",
			text:     "  hello  ",
			maxChars: 20,
			want:     []string{"hello"},
		},
		{
			name:     "newlines count as break points",
			text:     "first line\nsecond line",
			maxChars: 12,
			want:     []string{"first line", "second line"},
		},
		{
			name:     "long word followed by short words",
			text:     "unbreakablelongword and more",
			maxChars: 10,
			want:     []string{"unbreakabl", "elongword", "and more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pages(tt.text, tt.maxChars)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPages_LengthBound(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"no-spaces-but-hyphens-everywhere-in-this-string",
		"word " + strings.Repeat("x", 50) + " word",
		strings.Repeat("ab ", 100),
	}

	for _, text := range texts {
		for _, maxChars := range []int{1, 2, 5, 10, 80} {
			pages := Pages(text, maxChars)
			require.NotEmpty(t, pages)
			for _, page := range pages {
				// Trimming only shrinks a chunk, so the bound holds post-trim too.
				assert.LessOrEqual(t, len([]rune(page)), maxChars,
					"page %q exceeds bound %d for text %q", page, maxChars, text)
				assert.NotEmpty(t, strings.TrimSpace(page))
			}
		}
	}
}

func TestPages_PreservesContent(t *testing.T) {
	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}

	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"abcdefghijklmnop",
		"  padded   with\t\todd   whitespace  ",
		"multi\nline\ninput with words of varying length",
	}

	for _, text := range texts {
		for _, maxChars := range []int{1, 3, 7, 16} {
			pages := Pages(text, maxChars)
			assert.Equal(t, strip(text), strip(strings.Join(pages, " ")),
				"content lost or reordered for text %q bound %d", text, maxChars)
		}
	}
}

func TestPages_MultiByteRunes(t *testing.T) {
	pages := Pages("héllo wörld", 6)
	require.Equal(t, []string{"héllo", "wörld"}, pages)

	// Bound counts runes, not bytes: three two-byte runes fit in a bound of 3.
	pages = Pages("ééé", 3)
	assert.Equal(t, []string{"ééé"}, pages)
}

func TestPages_Terminates(t *testing.T) {
	// Pathological inputs that stalled older cursor arithmetic.
	inputs := []struct {
		text     string
		maxChars int
	}{
		{strings.Repeat("x", 1000), 1},
		{strings.Repeat(" x", 500), 1},
		{"a b", 2},
		{" leading space", 1},
	}

	for _, in := range inputs {
		pages := Pages(in.text, in.maxChars)
		// Worst case is one page per rune.
		assert.LessOrEqual(t, len(pages), len([]rune(in.text))+1)
	}
}
