// Package table renders rows of text cells into fixed-width terminal lines.
//
// A Table owns its cell data and a small amount of layout configuration: the
// total display width to fill, per-column priorities, a cell alignment mode,
// and whether padding surrounds the outer edges. Rendering measures every
// column in display columns (unicode-aware), then greedily drops the
// lowest-priority columns until the table fits the available space. When even
// that is impossible the render reports align.ErrNoFit rather than producing
// an overflowing or truncated line.
package table

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/tabfit/pkg/align"
)

// ErrNoFit is the failure reported when content cannot be reconciled with
// the available space. It aliases align.ErrNoFit so callers can match either
// package's errors with a single errors.Is check.
var ErrNoFit = align.ErrNoFit

// Alignment controls how each cell is padded within its column.
type Alignment int

const (
	// AlignLeft pads cells on the right (default).
	AlignLeft Alignment = iota
	// AlignCenter pads cells on both sides.
	AlignCenter
	// AlignRight pads cells on the left.
	AlignRight
)

// String returns the alignment name for logs and debug output.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("alignment(%d)", int(a))
	}
}

// Table holds tabular cell data plus the layout configuration used to render
// it. The zero value is usable but empty; construct with New.
//
// Setters mutate configuration in place while Render and RenderPartial are
// pure reads, so concurrent rendering during reconfiguration needs external
// synchronization by the caller.
type Table struct {
	rows       [][]string
	priorities []int
	alignment  Alignment
	space      int
	surround   bool
	log        logr.Logger
}

// Option configures a Table at construction time.
type Option func(*Table)

// WithPriorities sets the per-column importance used when columns must be
// dropped. See SetPriorities.
func WithPriorities(priorities []int) Option {
	return func(t *Table) { t.SetPriorities(priorities) }
}

// WithAlignment sets the cell alignment mode.
func WithAlignment(alignment Alignment) Option {
	return func(t *Table) { t.alignment = alignment }
}

// WithSurround enables padding on the outer edges of each rendered row.
func WithSurround(surround bool) Option {
	return func(t *Table) { t.surround = surround }
}

// WithLogger attaches a logger; layout decisions are traced at V(1).
func WithLogger(log logr.Logger) Option {
	return func(t *Table) { t.log = log }
}

// New builds a Table over a copy of rows with the given display-width budget.
// Rows are kept in insertion order and need not share a column count; a
// mismatch is only detected when rendering.
func New(rows [][]string, space int, opts ...Option) *Table {
	t := &Table{
		rows:  cloneRows(rows),
		space: space,
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetPriorities replaces the column priorities wholesale. Priorities map to
// columns by position; higher values are more important and survive longer
// when space runs out. Columns past the end of the slice default to priority
// 0, the first to be dropped.
func (t *Table) SetPriorities(priorities []int) {
	t.priorities = append([]int(nil), priorities...)
}

// SetAlignment replaces the cell alignment mode.
func (t *Table) SetAlignment(alignment Alignment) {
	t.alignment = alignment
}

// SetSurround toggles padding before the first and after the last column.
func (t *Table) SetSurround(surround bool) {
	t.surround = surround
}

// SetSpace replaces the display-width budget. Call this when the terminal is
// resized and render again.
func (t *Table) SetSpace(space int) {
	t.space = space
}

// SetLogger replaces the logger used to trace layout decisions.
func (t *Table) SetLogger(log logr.Logger) {
	t.log = log
}

// Render renders every row. It is shorthand for RenderPartial(0).
func (t *Table) Render() ([]string, error) {
	return t.RenderPartial(0)
}

// RenderPartial renders the rows starting at offset, producing one string
// per row, each exactly the configured space wide. An offset at or past the
// last row succeeds with an empty result. Rendering fails with ErrNoFit when
// a row is shorter than the first rendered row, or when the table cannot be
// brought under budget even after dropping every droppable column.
func (t *Table) RenderPartial(offset int) ([]string, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.rows) {
		return []string{}, nil
	}

	// Rendering works on a copy so the eviction loop can splice columns out
	// without touching the table's own data.
	rows := cloneRows(t.rows[offset:])
	lay, err := t.fit(rows)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for i, row := range rows {
		cells := make([]string, len(lay.widths))
		for j, width := range lay.widths {
			cell, err := t.alignCell(row[j], width)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", offset+i, lay.columns[j], err)
			}
			cells[j] = cell
		}

		var line string
		if t.surround {
			line, err = align.Around(cells, t.space)
		} else {
			line, err = align.Between(cells, t.space)
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", offset+i, err)
		}
		out = append(out, line)
	}
	return out, nil
}

func (t *Table) alignCell(text string, width int) (string, error) {
	switch t.alignment {
	case AlignRight:
		return align.Right(text, width)
	case AlignCenter:
		return align.Center(text, width)
	default:
		return align.Left(text, width)
	}
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
