package table

import (
	"fmt"

	"github.com/oakwood-commons/tabfit/internal/textwidth"
	"github.com/oakwood-commons/tabfit/pkg/align"
)

// Column describes one surviving column of a fitted layout.
type Column struct {
	// Index is the column's position in the original row data.
	Index int
	// Width is the display width the column was assigned.
	Width int
}

// layout is the result of fitting: which original columns survived and the
// display width assigned to each.
type layout struct {
	columns []int
	widths  []int
}

// Layout computes the column layout the current configuration would render
// with, without producing any output. Callers can use it to learn which
// columns survive at the current space budget, for example to decide whether
// a narrower presentation is needed before committing to a render.
func (t *Table) Layout() ([]Column, error) {
	if len(t.rows) == 0 {
		return nil, nil
	}
	rows := cloneRows(t.rows)
	lay, err := t.fit(rows)
	if err != nil {
		return nil, err
	}
	out := make([]Column, len(lay.widths))
	for i := range lay.widths {
		out[i] = Column{Index: lay.columns[i], Width: lay.widths[i]}
	}
	return out, nil
}

// fit measures the columns of rows and drops the lowest-priority ones until
// the content plus required padding fits the space budget. The rows slice is
// modified in place: evicted columns are spliced out of every row. The first
// row defines the expected column count; any shorter row is ragged and fails
// the fit.
func (t *Table) fit(rows [][]string) (layout, error) {
	count := len(rows[0])

	// Ragged detection. Rows longer than the first are tolerated; their
	// surplus cells are simply never rendered.
	for i, row := range rows {
		if len(row) < count {
			return layout{}, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), count, align.ErrNoFit)
		}
	}

	// Required width per column is the widest cell in it.
	widths := make([]int, count)
	for col := 0; col < count; col++ {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[col]
		}
		widths[col] = textwidth.Max(cells)
	}

	// Priorities indexed by live column position. Columns beyond the
	// configured priority list default to 0, so unranked columns go first.
	priorities := make([]int, count)
	copy(priorities, t.priorities)

	columns := make([]int, count)
	for i := range columns {
		columns[i] = i
	}

	for len(widths) > 0 {
		total := 0
		for _, w := range widths {
			total += w
		}
		if total+padSlots(len(widths), t.surround) <= t.space {
			break
		}

		// Drop the least important column; on ties the leftmost loses.
		rm := 0
		for i := 1; i < len(priorities); i++ {
			if priorities[i] < priorities[rm] {
				rm = i
			}
		}
		t.log.V(1).Info("dropping column to fit",
			"column", columns[rm],
			"priority", priorities[rm],
			"width", widths[rm],
			"totalWidth", total,
			"space", t.space,
		)
		for i := range rows {
			rows[i] = append(rows[i][:rm], rows[i][rm+1:]...)
		}
		widths = append(widths[:rm], widths[rm+1:]...)
		priorities = append(priorities[:rm], priorities[rm+1:]...)
		columns = append(columns[:rm], columns[rm+1:]...)
	}

	return layout{columns: columns, widths: widths}, nil
}

// padSlots returns how many single-gap padding positions a row of n columns
// needs: the gaps between columns, plus the two outer gaps when surround is
// on. Zero columns need none.
func padSlots(n int, surround bool) int {
	if n < 1 {
		return 0
	}
	if surround {
		return n + 1
	}
	return n - 1
}
