// Package pref defines the Term variant, the Predicate type,
// and sentinel errors for composition.
package pref

import "errors"

var (
	// ErrNilTerm indicates a composition operator received a nil operand.
	ErrNilTerm = errors.New("pref: operand is not a preference term")

	// ErrNilPredicate indicates NewBase received a nil better or equal predicate.
	ErrNilPredicate = errors.New("pref: base predicate is nil")
)

// Predicate reports a pairwise property of two dataset rows,
// addressed by their 0-based indices.
type Predicate func(i, j int) bool

// Term is an immutable preference over row indices.
//
// Term is a closed variant: the only implementations are the six kinds
// declared in this package (base, pareto, prioritized, intersected, unioned,
// reversed). Evaluate a term with Better and Equal.
type Term interface {
	// term seals the variant against outside implementations.
	term()
}

// base is the leaf kind: caller-supplied better/equal predicates.
type base struct {
	better Predicate
	equal  Predicate
}

// pareto is the product composition: better on one criterion without
// being worse on the other.
type pareto struct{ l, r Term }

// prioritized is the lexicographic composition: l decides, ties fall to r.
type prioritized struct{ l, r Term }

// intersected requires strict dominance on both operands.
type intersected struct{ l, r Term }

// unioned requires strict dominance on either operand.
// Not guaranteed to be a strict partial order; see package documentation.
type unioned struct{ l, r Term }

// reversed flips the order of its operand.
type reversed struct{ t Term }

func (base) term()        {}
func (pareto) term()      {}
func (prioritized) term() {}
func (intersected) term() {}
func (unioned) term()     {}
func (reversed) term()    {}
