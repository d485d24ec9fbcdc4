package assets

import (
	"github.com/rshade/gametext/internal/textutil"
)

// TextResolver is the capability the load helpers consume: anything that can
// turn an asset name into decoded text. Both Resolver and CachedResolver
// satisfy it.
type TextResolver interface {
	ResolveText(name string) (string, error)
}

// LoadLines resolves the named asset and splits it into non-empty lines.
func LoadLines(r TextResolver, name string) ([]string, error) {
	text, err := r.ResolveText(name)
	if err != nil {
		return nil, err
	}
	return textutil.SplitLines(text), nil
}

// LoadRecords resolves the named asset and splits it into per-line records
// on the given delimiter, for CSV-style game data tables.
func LoadRecords(r TextResolver, name, delimiter string) ([][]string, error) {
	lines, err := LoadLines(r, name)
	if err != nil {
		return nil, err
	}
	return textutil.SplitFields(lines, delimiter), nil
}
