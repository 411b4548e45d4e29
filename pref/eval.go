package pref

// Better reports whether row i is strictly better than row j under t.
// Evaluation recurses through the composition tree, re-evaluating leaf
// predicates on the same pair at each level; terms carry no caches
// (relation-level caching lives in btg).
//
// Complexity: O(depth of t) predicate evaluations per pair.
func Better(t Term, i, j int) bool {
	switch v := t.(type) {
	case base:
		return v.better(i, j)
	case pareto:
		// Strictly better on one side, not worse on the other.
		return (Better(v.l, i, j) && (Better(v.r, i, j) || Equal(v.r, i, j))) ||
			(Better(v.r, i, j) && (Better(v.l, i, j) || Equal(v.l, i, j)))
	case prioritized:
		return Better(v.l, i, j) || (Equal(v.l, i, j) && Better(v.r, i, j))
	case intersected:
		return Better(v.l, i, j) && Better(v.r, i, j)
	case unioned:
		return Better(v.l, i, j) || Better(v.r, i, j)
	case reversed:
		return Better(v.t, j, i)
	}
	// Unreachable: Term is sealed to the six kinds above.
	return false
}

// Equal reports whether rows i and j are equivalent under t.
// Every binary composition ties only when both operands tie.
func Equal(t Term, i, j int) bool {
	switch v := t.(type) {
	case base:
		return v.equal(i, j)
	case pareto:
		return Equal(v.l, i, j) && Equal(v.r, i, j)
	case prioritized:
		return Equal(v.l, i, j) && Equal(v.r, i, j)
	case intersected:
		return Equal(v.l, i, j) && Equal(v.r, i, j)
	case unioned:
		return Equal(v.l, i, j) && Equal(v.r, i, j)
	case reversed:
		return Equal(v.t, j, i)
	}

	return false
}
