package bnl

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/prefgraph/pref"
)

// SelectGrouped runs preference selection independently inside each group
// of row indices (as produced by dataset.GroupBy) and concatenates the
// per-group results in group order. Groups are evaluated concurrently;
// per-group selections are pure and touch disjoint result slots.
// WithTopK applies per group. Empty groups are skipped.
// Returns ErrNilTerm, ErrUnboundDataset, ErrIndexOutOfRange,
// ErrOptionViolation, or the context's error on cancellation.
func SelectGrouped(term pref.Term, d Dataset, groups [][]int, opts ...Option) ([]int, error) {
	// 1. Validate inputs.
	if term == nil {
		return nil, ErrNilTerm
	}
	if d == nil || d.Len() == 0 {
		return nil, ErrUnboundDataset
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := d.Len()
	for _, group := range groups {
		for _, x := range group {
			if x < 0 || x >= n {
				return nil, fmt.Errorf("%w: %d (dataset has %d rows)", ErrIndexOutOfRange, x, n)
			}
		}
	}

	// 2. One goroutine per group; each writes only its own result slot.
	results := make([][]int, len(groups))
	eg, ctx := errgroup.WithContext(o.Ctx)
	for gi, group := range groups {
		if len(group) == 0 {
			continue
		}
		gi, group := gi, group
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			var res []int
			if o.TopK >= 1 {
				res = topK(term, group, o.TopK)
			} else {
				res, _ = window(term, group)
			}
			sort.Ints(res)
			results[gi] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3. Concatenate in group order; grouping itself is not preserved in
	//    the flat result, regrouping is the caller's concern.
	var out []int
	for _, res := range results {
		out = append(out, res...)
	}

	return out, nil
}
