package paginate

import (
	"strings"
	"unicode"
)

// Pages splits text into an ordered sequence of pages, each at most maxChars
// runes long before trimming. Breaks prefer the nearest space inside the
// candidate chunk; when a chunk contains no space, the text is hard-broken
// mid-word rather than stalling. Every emitted page is trimmed of boundary
// whitespace and is never blank.
//
// Degenerate inputs pass through: if text is empty or whitespace-only, or
// maxChars <= 0, the result is a single page holding text unchanged.
//
// The bound is counted in runes so multi-byte text never splits inside a
// code point. The scan advances at least one rune per iteration, so the
// function terminates for any input, including maxChars == 1 and text with
// no spaces at all.
func Pages(text string, maxChars int) []string {
	if maxChars <= 0 || strings.TrimSpace(text) == "" {
		return []string{text}
	}

	runes := []rune(text)
	pages := make([]string, 0, (len(runes)+maxChars-1)/maxChars)

	index := 0
	for index < len(runes) {
		end := index + maxChars
		if end > len(runes) {
			end = len(runes)
		}

		// Mid-word boundary: pull the break back to the last space inside
		// the chunk. A chunk with no interior space keeps its full length.
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			for i := end - 1; i > index; i-- {
				if unicode.IsSpace(runes[i]) {
					end = i
					break
				}
			}
		}

		// Guard against a zero-length chunk; the scan must always advance.
		if end <= index {
			end = index + 1
		}

		if page := strings.TrimSpace(string(runes[index:end])); page != "" {
			pages = append(pages, page)
		}

		index = end
	}

	return pages
}
