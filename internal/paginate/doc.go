// Package paginate splits long text into dialogue-box-sized pages.
//
// This package contains the core pagination algorithm used by the gametext
// CLI and library consumers, including:
//   - Pages: split text into bounded-length chunks, preferring space breaks
//
// Pages is a pure function over strings: no I/O, no shared state, and no
// errors — degenerate inputs (empty text, non-positive bounds) are returned
// unchanged as a single page rather than rejected.
package paginate
