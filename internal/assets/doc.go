// Package assets locates and loads named text resources for a game project.
//
// A Resolver tries an ordered list of lookup strategies until one finds the
// asset:
//   - the name used as a literal filesystem path
//   - the app-writable data directory
//   - the bundled-assets directory
//   - an embedded fs.FS, looked up by name
//
// The first hit wins; when every strategy misses, Resolve returns
// ErrNotFound wrapped with the asset name. Resolved bytes can be decoded
// BOM-aware into text (game assets exported from Windows tooling frequently
// carry UTF-8 or UTF-16 byte-order marks), optionally memoized with a TTL
// cache, and split into lines or delimiter-separated records.
package assets
