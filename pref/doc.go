// Package pref implements a strict-partial-order preference algebra over
// dataset row indices.
//
// What
//
//   - A Term is an immutable preference: a pair of pairwise predicates
//     (better, equal) over two row indices.
//   - Leaf terms are built with NewBase from caller-supplied predicates;
//     the dataset package provides ready-made column criteria.
//   - Five composition operators derive new terms from existing ones:
//   - Pareto(p1, p2):      wins who is at least as good on both and
//     strictly better on one
//   - Prioritized(p1, p2): p1 decides; ties on p1 fall through to p2
//   - Intersected(p1, p2): strictly better on both
//   - Unioned(p1, p2):     strictly better on either (see caveat below)
//   - Reversed(p):         flips the order of p
//
// Why
//
//   - Skyline / preference queries select rows not dominated under a
//     multi-criteria order; the algebra is how callers express that order.
//   - Terms stay pure values: composition never mutates operands, and
//     evaluation carries no hidden state, so the btg package can fan pair
//     evaluations out across goroutines freely.
//
// Closed variant
//
//	The algebra is a closed tagged variant. Better and Equal evaluate a term
//	by exhaustive type switch over the six term kinds; there is no way to
//	implement Term outside this package. Adding a kind forces every switch
//	to be revisited, which is exactly the point.
//
// Union caveat
//
//	Unioned over operands with overlapping domains can violate transitivity
//	and irreflexivity, i.e. the result may not be a strict partial order.
//	This package does not reject such terms; btg.Bind detects the resulting
//	cycles and fails with btg.ErrCyclicRelation.
//
// Errors
//
//   - ErrNilTerm       if a composition operand is nil.
//   - ErrNilPredicate  if NewBase receives a nil predicate.
package pref
