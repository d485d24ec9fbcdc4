package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when no lookup strategy can locate an asset.
var ErrNotFound = errors.New("asset not found")

// Lookup is a single asset location strategy. Find returns the asset bytes,
// or an error wrapping ErrNotFound when this strategy cannot locate the
// asset (the resolver then moves on to the next strategy).
type Lookup interface {
	// Name identifies the strategy in logs.
	Name() string

	// Find attempts to locate the named asset.
	Find(name string) ([]byte, error)
}

// PathLookup resolves the asset name as a literal filesystem path, absolute
// or relative to the working directory.
type PathLookup struct{}

// Name implements Lookup.
func (PathLookup) Name() string { return "path" }

// Find implements Lookup.
func (PathLookup) Find(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading asset %s: %w", name, err)
	}
	return data, nil
}

// DirLookup resolves assets by joining the name onto a base directory, such
// as the app-writable data directory or the bundled-assets directory.
type DirLookup struct {
	// Label identifies this directory in logs (e.g. "data", "bundle").
	Label string

	// Dir is the base directory joined with the asset name.
	Dir string
}

// Name implements Lookup.
func (d DirLookup) Name() string {
	if d.Label != "" {
		return d.Label
	}
	return "dir"
}

// Find implements Lookup.
func (d DirLookup) Find(name string) ([]byte, error) {
	if d.Dir == "" {
		return nil, fmt.Errorf("%w: %s (no %s directory configured)", ErrNotFound, name, d.Name())
	}

	path := filepath.Join(d.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}
	return data, nil
}

// FSLookup resolves assets by name against an fs.FS, typically an embed.FS
// compiled into the game binary.
type FSLookup struct {
	// FS is the filesystem searched by asset name.
	FS fs.FS
}

// Name implements Lookup.
func (FSLookup) Name() string { return "embedded" }

// Find implements Lookup.
func (l FSLookup) Find(name string) ([]byte, error) {
	if l.FS == nil {
		return nil, fmt.Errorf("%w: %s (no embedded filesystem)", ErrNotFound, name)
	}

	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: embedded %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading embedded asset %s: %w", name, err)
	}
	return data, nil
}

// Resolver tries an ordered list of lookup strategies until one succeeds.
// Safe for concurrent use: the strategy list is fixed at construction and
// each call is independent.
type Resolver struct {
	lookups []Lookup
	logger  zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger used to debug-log strategy misses.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver that consults the given strategies in order.
func NewResolver(lookups []Lookup, opts ...Option) *Resolver {
	r := &Resolver{
		lookups: lookups,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultResolver builds the standard four-tier lookup chain: literal
// path, writable data directory, bundled-assets directory, then embedded
// filesystem. Empty directories and a nil embedded filesystem are permitted;
// those tiers simply never match.
func NewDefaultResolver(dataDir, bundleDir string, embedded fs.FS, opts ...Option) *Resolver {
	return NewResolver([]Lookup{
		PathLookup{},
		DirLookup{Label: "data", Dir: dataDir},
		DirLookup{Label: "bundle", Dir: bundleDir},
		FSLookup{FS: embedded},
	}, opts...)
}

// Resolve returns the bytes of the first strategy that locates the asset.
// Returns an error wrapping ErrNotFound when every strategy misses; any
// other read failure is returned immediately without trying later tiers.
func (r *Resolver) Resolve(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty asset name", ErrNotFound)
	}

	for _, lookup := range r.lookups {
		data, err := lookup.Find(name)
		if err == nil {
			r.logger.Debug().
				Str("asset", name).
				Str("strategy", lookup.Name()).
				Int("bytes", len(data)).
				Msg("asset resolved")
			return data, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		r.logger.Debug().
			Str("asset", name).
			Str("strategy", lookup.Name()).
			Msg("asset not found by strategy")
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ResolveText resolves the asset and decodes it to a string, honoring UTF-8
// and UTF-16 byte-order marks.
func (r *Resolver) ResolveText(name string) (string, error) {
	data, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}
