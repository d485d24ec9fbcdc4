// Package textutil provides line and field splitting for text assets.
//
// These are the thin string transforms the asset loaders are built on:
// SplitLines normalizes CR/LF handling and drops empty entries, SplitFields
// turns lines into delimiter-separated records. Neither function allocates
// beyond its result or touches I/O.
package textutil
