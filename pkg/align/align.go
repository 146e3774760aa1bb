// Package align lays out text fragments within a fixed display width.
//
// Every function measures content in terminal columns rather than bytes or
// runes, so wide East-Asian characters and zero-width combining marks are
// handled correctly. Padding is always plain space characters. When content
// cannot fit the requested width the functions return ErrNoFit instead of
// truncating; the caller decides what to drop.
package align

import (
	"errors"
	"strings"

	"github.com/oakwood-commons/tabfit/internal/textwidth"
)

// ErrNoFit reports that content is wider than the space it was asked to
// occupy. It is the only failure mode in this package; check for it with
// errors.Is.
var ErrNoFit = errors.New("content does not fit in the available space")

// Center pads text with spaces split as evenly as possible between the two
// sides. When the leftover width is odd the extra column goes to the right.
// An empty string with zero space yields an empty result.
func Center(text string, space int) (string, error) {
	width := textwidth.String(text)
	if width > space {
		return "", ErrNoFit
	}
	leftOver := space - width
	each := leftOver / 2
	var b strings.Builder
	b.Grow(space)
	b.WriteString(strings.Repeat(" ", each))
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", leftOver-each))
	return b.String(), nil
}

// Left pads text with trailing spaces up to the requested width.
func Left(text string, space int) (string, error) {
	width := textwidth.String(text)
	if width > space {
		return "", ErrNoFit
	}
	return text + strings.Repeat(" ", space-width), nil
}

// Right pads text with leading spaces up to the requested width.
func Right(text string, space int) (string, error) {
	width := textwidth.String(text)
	if width > space {
		return "", ErrNoFit
	}
	return strings.Repeat(" ", space-width) + text, nil
}

// Between lays the fragments out left to right with space distributed in the
// gaps between them, never on the outer edges. The result is always exactly
// space columns wide. Gaps differ by at most one column; when the leftover
// width does not divide evenly, the earlier gaps get the extra column.
//
// No fragments yields an all-space result. A single fragment degenerates to
// Left.
func Between(fragments []string, space int) (string, error) {
	total := 0
	for _, f := range fragments {
		total += textwidth.String(f)
	}
	if total > space {
		return "", ErrNoFit
	}
	if len(fragments) == 0 {
		return strings.Repeat(" ", space), nil
	}
	if len(fragments) == 1 {
		return Left(fragments[0], space)
	}

	leftOver := space - total
	gaps := len(fragments) - 1
	each := leftOver / gaps
	remainder := leftOver - each*gaps

	var b strings.Builder
	b.Grow(space)
	for _, f := range fragments[:gaps] {
		b.WriteString(f)
		b.WriteString(strings.Repeat(" ", each))
		if remainder > 0 {
			b.WriteString(" ")
			remainder--
		}
	}
	b.WriteString(fragments[gaps])
	return b.String(), nil
}

// Around is Between with an extra gap before the first fragment and after
// the last, so the fragments float away from both edges. Remainder columns
// go to the earlier gaps, as in Between.
//
// No fragments yields an all-space result. A single fragment degenerates to
// Center.
func Around(fragments []string, space int) (string, error) {
	total := 0
	for _, f := range fragments {
		total += textwidth.String(f)
	}
	if total > space {
		return "", ErrNoFit
	}
	if len(fragments) == 0 {
		return strings.Repeat(" ", space), nil
	}
	if len(fragments) == 1 {
		return Center(fragments[0], space)
	}

	leftOver := space - total
	gaps := len(fragments) + 1
	each := leftOver / gaps
	remainder := leftOver - each*gaps

	var b strings.Builder
	b.Grow(space)
	for i := 0; i < gaps; i++ {
		b.WriteString(strings.Repeat(" ", each))
		if remainder > 0 {
			b.WriteString(" ")
			remainder--
		}
		if i < len(fragments) {
			b.WriteString(fragments[i])
		}
	}
	return b.String(), nil
}
