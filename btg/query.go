package btg

import "fmt"

// AllPred returns every row strictly better than some (union, default) or
// every (WithIntersect) row in v: the ancestors of v in the BTR graph,
// i.e. all i with a directed path i →* v-element.
// The result is ascending and duplicate-free.
func (b *Binding) AllPred(v []int, opts ...QueryOption) ([]int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.combine(v, opts, func(x int) []bool { return reachable(b.pred, b.n, x) })
}

// AllSucc returns every row strictly worse than rows in v: the descendants
// of v in the BTR graph. Combination and ordering follow AllPred.
func (b *Binding) AllSucc(v []int, opts ...QueryOption) ([]int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.combine(v, opts, func(x int) []bool { return reachable(b.succ, b.n, x) })
}

// HassePred returns the next-better rows of v: direct predecessors in the
// Hasse diagram (single-hop covering edges only).
func (b *Binding) HassePred(v []int, opts ...QueryOption) ([]int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.combine(v, opts, func(x int) []bool { return direct(b.hassePred[x], b.n) })
}

// HasseSucc returns the next-worse rows of v: direct successors in the
// Hasse diagram.
func (b *Binding) HasseSucc(v []int, opts ...QueryOption) ([]int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.combine(v, opts, func(x int) []bool { return direct(b.hasseSucc[x], b.n) })
}

// combine validates the query set, computes the per-row membership sets
// independently, folds them by union or intersection, and materializes the
// result as an ascending, duplicate-free index slice. The caller must hold
// at least a read lock.
func (b *Binding) combine(v []int, opts []QueryOption, members func(int) []bool) ([]int, error) {
	// 1. Preconditions: live binding, non-empty in-range query set.
	if b.n == 0 {
		return nil, ErrUnboundDataset
	}
	if len(v) == 0 {
		return nil, ErrEmptyQuery
	}
	for _, x := range v {
		if x < 0 || x >= b.n {
			return nil, fmt.Errorf("%w: %d (dataset has %d rows)", ErrIndexOutOfRange, x, b.n)
		}
	}

	// 2. Apply options.
	o := DefaultQueryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Fold per-row sets. The fold is order-insensitive, so the order of
	//    elements in v cannot leak into the result.
	var acc []bool
	for _, x := range v {
		set := members(x)
		if acc == nil {
			acc = set

			continue
		}
		if o.Intersect {
			for i := range acc {
				acc[i] = acc[i] && set[i]
			}
		} else {
			for i := range acc {
				acc[i] = acc[i] || set[i]
			}
		}
	}

	// 4. Materialize ascending, duplicate-free by construction.
	out := make([]int, 0, b.n)
	for i, in := range acc {
		if in {
			out = append(out, i)
		}
	}

	return out, nil
}

// reachable computes the set of vertices reachable from start (excluding
// start itself) over the given adjacency lists, by iterative BFS.
func reachable(adjList [][]int, n, start int) []bool {
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	queue = append(queue, start)
	seen[start] = true
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, w := range adjList[x] {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	// The relation is acyclic, so start can never reach itself; it was
	// marked only to seed the queue.
	seen[start] = false

	return seen
}

// direct converts a single adjacency list into a membership set.
func direct(adj []int, n int) []bool {
	set := make([]bool, n)
	for _, w := range adj {
		set[w] = true
	}

	return set
}
