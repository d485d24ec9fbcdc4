// Package tui renders paginated text as an interactive dialogue-box preview.
//
// The pager shows one page at a time inside a bordered box with a dot
// indicator, the way the text would appear in-game. Navigation follows
// dialogue conventions: space/enter advance, arrows move both ways, and
// advancing past the last page dismisses the box.
package tui
