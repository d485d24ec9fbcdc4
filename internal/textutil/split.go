package textutil

import "strings"

// SplitLines splits text on carriage returns and line feeds, dropping empty
// entries. CRLF, lone LF, and lone CR line endings all produce the same
// result, so assets authored on any platform parse identically.
func SplitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// SplitFields splits each line into fields on the given delimiter. Lines are
// kept positionally: record i corresponds to lines[i]. An empty delimiter
// yields one single-field record per line rather than splitting between
// every rune.
func SplitFields(lines []string, delimiter string) [][]string {
	records := make([][]string, 0, len(lines))
	for _, line := range lines {
		if delimiter == "" {
			records = append(records, []string{line})
			continue
		}
		records = append(records, strings.Split(line, delimiter))
	}
	return records
}
