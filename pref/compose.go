package pref

// NewBase builds a leaf term from a (better, equal) predicate pair.
// The predicates must form a strict partial order (better irreflexive and
// transitive) and an equivalence (equal) for composed terms to stay
// well-formed; this is the caller's contract, not checked here.
// Returns ErrNilPredicate if either predicate is nil.
func NewBase(better, equal Predicate) (Term, error) {
	if better == nil || equal == nil {
		return nil, ErrNilPredicate
	}

	return base{better: better, equal: equal}, nil
}

// Pareto composes p1 and p2 into their Pareto product: a row beats another
// iff it is strictly better on one operand and at least as good (better or
// equal) on the other. Returns ErrNilTerm if an operand is nil.
func Pareto(p1, p2 Term) (Term, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilTerm
	}

	return pareto{l: p1, r: p2}, nil
}

// Prioritized composes p1 and p2 lexicographically: p1 decides, and only
// rows tied on p1 are compared on p2. Returns ErrNilTerm if an operand is nil.
func Prioritized(p1, p2 Term) (Term, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilTerm
	}

	return prioritized{l: p1, r: p2}, nil
}

// Intersected composes p1 and p2 into their intersection: a row beats
// another iff it is strictly better on both operands.
// Returns ErrNilTerm if an operand is nil.
func Intersected(p1, p2 Term) (Term, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilTerm
	}

	return intersected{l: p1, r: p2}, nil
}

// Unioned composes p1 and p2 into their union: a row beats another iff it is
// strictly better on either operand. When the operand domains overlap the
// result may fail to be a strict partial order; btg.Bind detects the
// resulting cycles. Returns ErrNilTerm if an operand is nil.
func Unioned(p1, p2 Term) (Term, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilTerm
	}

	return unioned{l: p1, r: p2}, nil
}

// Reversed returns the converse of p: Better(i,j) of the result is
// Better(j,i) of p. Returns ErrNilTerm if p is nil.
func Reversed(p Term) (Term, error) {
	if p == nil {
		return nil, ErrNilTerm
	}

	return reversed{t: p}, nil
}
