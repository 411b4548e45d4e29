package bnl

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/prefgraph/pref"
)

// Select returns the rows of d that no other candidate row dominates under
// term, as an ascending, duplicate-free index slice. With WithTopK(k) it
// returns the k best rows instead (maxima, then maxima of the remainder,
// and so on). With WithIndices the candidate set is restricted to a subset.
// Returns ErrNilTerm, ErrUnboundDataset, ErrIndexOutOfRange, or
// ErrOptionViolation.
func Select(term pref.Term, d Dataset, opts ...Option) ([]int, error) {
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

	// 2. Build the candidate vector: the explicit subset or all rows.
	n := d.Len()
	var v []int
	if o.Indices != nil {
		v = make([]int, len(o.Indices))
		copy(v, o.Indices)
		for _, x := range v {
			if x < 0 || x >= n {
				return nil, fmt.Errorf("%w: %d (dataset has %d rows)", ErrIndexOutOfRange, x, n)
			}
		}
	} else {
		v = make([]int, n)
		for i := range v {
			v[i] = i
		}
	}

	// 3. Run the window scan, layered when top-k was requested.
	var res []int
	if o.TopK >= 1 {
		res = topK(term, v, o.TopK)
	} else {
		res, _ = window(term, v)
	}

	// 4. Normalize: ascending, duplicate-free by construction.
	sort.Ints(res)

	return res, nil
}

// window runs one block-nested-loop pass over v. It returns the undominated
// rows (the window) and, for the layered top-k scan, every row that was
// dominated or evicted, in encounter order.
func window(term pref.Term, v []int) (win, rest []int) {
	win = make([]int, 0, len(v))
	win = append(win, v[0])

	for _, cand := range v[1:] {
		dominated := false
		kept := win[:0]
		for _, w := range win {
			switch {
			case dominated:
				// The candidate is already out; the rest of the window
				// survives untouched.
				kept = append(kept, w)
			case pref.Better(term, w, cand):
				dominated = true
				kept = append(kept, w)
			case pref.Better(term, cand, w):
				// The candidate evicts this window row.
				rest = append(rest, w)
			default:
				kept = append(kept, w)
			}
		}
		win = kept
		if dominated {
			rest = append(rest, cand)
		} else {
			win = append(win, cand)
		}
	}

	return win, rest
}

// topK collects the k best rows by repeated window scans: the maxima layer,
// then the maxima of whatever those scans discarded, until k rows are
// gathered or candidates run out.
func topK(term pref.Term, v []int, k int) []int {
	if k >= len(v) {
		out := make([]int, len(v))
		copy(out, v)

		return out
	}

	win, rest := window(term, v)
	if len(win) >= k {
		return win[:k]
	}

	return append(win, topK(term, rest, k-len(win))...)
}
