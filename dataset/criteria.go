package dataset

import "github.com/katalvlaran/prefgraph/pref"

// Low builds the atomic criterion "smaller is better" on the named column:
// row i beats row j iff col[i] < col[j], and ties iff col[i] == col[j].
// The column values are captured by reference.
// Returns ErrNoColumn if the column does not exist.
func Low(d *Dataset, name string) (pref.Term, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}

	return pref.NewBase(
		func(i, j int) bool { return col[i] < col[j] },
		func(i, j int) bool { return col[i] == col[j] },
	)
}

// High builds the atomic criterion "larger is better" on the named column.
// Returns ErrNoColumn if the column does not exist.
func High(d *Dataset, name string) (pref.Term, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}

	return pref.NewBase(
		func(i, j int) bool { return col[i] > col[j] },
		func(i, j int) bool { return col[i] == col[j] },
	)
}
