package dataset

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyDataset indicates construction produced no columns or no rows.
	ErrEmptyDataset = errors.New("dataset: dataset must have at least one column and one row")

	// ErrRaggedColumns indicates columns of differing lengths.
	ErrRaggedColumns = errors.New("dataset: all columns must have the same length")

	// ErrNoColumn indicates a requested column name does not exist.
	ErrNoColumn = errors.New("dataset: no such column")
)

// Dataset is an immutable, column-oriented table of float64 values.
// Column order is deterministic: sorted by name for FromColumns,
// header order for FromCSV.
type Dataset struct {
	order []string             // deterministic column order
	cols  map[string][]float64 // column name → values, all of length n
	n     int                  // row count
}

// FromColumns builds a Dataset from named columns. All columns must share
// one non-zero length. The value slices are captured, not copied.
// Returns ErrEmptyDataset or ErrRaggedColumns on invalid input.
func FromColumns(cols map[string][]float64) (*Dataset, error) {
	// 1. Require at least one column.
	if len(cols) == 0 {
		return nil, ErrEmptyDataset
	}

	// 2. Deterministic column order: sorted names.
	order := make([]string, 0, len(cols))
	for name := range cols {
		order = append(order, name)
	}
	sort.Strings(order)

	// 3. Validate a single non-zero row count across columns.
	n := len(cols[order[0]])
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	for _, name := range order {
		if len(cols[name]) != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrRaggedColumns, name, len(cols[name]), n)
		}
	}

	return &Dataset{order: order, cols: cols, n: n}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.n }

// Columns returns the column names in deterministic order.
// The returned slice is a copy.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Column returns the values of the named column.
// The returned slice is shared, not copied; treat it as read-only.
// Returns ErrNoColumn if the column does not exist.
func (d *Dataset) Column(name string) ([]float64, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}

	return col, nil
}

// GroupBy partitions row indices by equal value in the named column.
// Groups appear in order of first occurrence; indices inside each group
// are ascending. Returns ErrNoColumn if the column does not exist.
func (d *Dataset) GroupBy(name string) ([][]int, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}

	// Single pass keeps first-occurrence group order and ascending members.
	pos := make(map[float64]int, len(col))
	var groups [][]int
	for i, v := range col {
		gi, seen := pos[v]
		if !seen {
			gi = len(groups)
			pos[v] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}

	return groups, nil
}
