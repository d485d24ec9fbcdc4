// Package cli implements the gametext command-line interface.
//
// Commands:
//   - paginate: split a text asset into dialogue-sized pages
//   - csv: print a delimiter-separated asset as records
//   - view: preview pagination in an interactive dialogue box
//
// All commands resolve assets through the standard four-tier lookup chain
// (literal path, data directory, bundle directory, embedded filesystem)
// configured from flags, environment, and the YAML config file.
package cli
