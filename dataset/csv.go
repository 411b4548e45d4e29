package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromCSV reads a numeric CSV table: one header row naming the columns,
// then one row per dataset row, every cell parseable as float64.
// Header names are trimmed; column order follows the header.
// Returns ErrEmptyDataset for a header-only or empty input, and a wrapped
// parse error naming row and column for non-numeric cells.
func FromCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	// 1. Header row defines column names and arity.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read CSV header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	// 2. Collect columns; csv.Reader enforces rectangular records.
	cols := make(map[string][]float64, len(names))
	for _, name := range names {
		cols[name] = nil
	}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read CSV row %d: %w", row, err)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d, column %q: %w", row, names[i], err)
			}
			cols[names[i]] = append(cols[names[i]], v)
		}
		row++
	}
	if row == 0 {
		return nil, ErrEmptyDataset
	}

	return &Dataset{order: names, cols: cols, n: row}, nil
}
