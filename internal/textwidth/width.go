// Package textwidth is the single measurement point for terminal display
// width. All layout math in this module goes through it, so swapping the
// underlying width tables only ever touches this package.
package textwidth

import (
	runewidth "github.com/mattn/go-runewidth"
)

// String returns the number of terminal columns the string occupies when
// rendered. Combining marks count as zero and East-Asian wide characters
// count as two, so this is not the rune count.
func String(s string) int {
	return runewidth.StringWidth(s)
}

// Max returns the widest display width among the given strings, or 0 when
// the slice is empty.
func Max(strs []string) int {
	longest := 0
	for _, s := range strs {
		if w := String(s); w > longest {
			longest = w
		}
	}
	return longest
}
