// Package btg materializes the Better-Than-Relation of a preference term
// over a dataset, builds the Better-Than-Graph and its Hasse diagram
// (transitive reduction), and answers predecessor/successor queries.
//
// What
//
//   - Bind(term, dataset) eagerly evaluates better(i, j) for every ordered
//     row pair, yielding a dense directed relation on rows 0..n-1.
//   - Bind verifies the relation is acyclic (a Unioned term with overlapping
//     domains can break this) and computes the transitive reduction: the
//     minimal edge set whose closure equals the relation's closure.
//   - The resulting Binding owns {term, dataset, BTR, Hasse} and serves four
//     queries: AllPred / AllSucc (full reachability in the BTR graph) and
//     HassePred / HasseSucc (direct edges of the Hasse diagram).
//   - Multi-row queries combine per-row sets by union (default) or, with
//     WithIntersect, by intersection. Results are always ascending and
//     duplicate-free.
//
// Concurrency
//
//	Pair evaluation is pure, so Bind fans rows out over a bounded worker
//	pool (WithWorkers, default GOMAXPROCS-sized) with no coordination beyond
//	the final merge; each row writes a disjoint adjacency slice.
//	A Binding is safe for concurrent queries; Rebind takes the write lock,
//	so it cannot race in-flight queries against the previous state.
//
// Complexity (n = rows, E = relation edges)
//
//   - Bind:    O(n²) pair evaluations + O(n·(n+E)) closure/reduction.
//   - AllPred/AllSucc:     O(n+E) traversal per query row.
//   - HassePred/HasseSucc: O(degree) per query row.
//
// Errors
//
//   - ErrNilTerm          if the term is nil.
//   - ErrUnboundDataset   if no dataset is resolvable (bind or query).
//   - ErrCyclicRelation   if the relation is not acyclic (fatal to bind).
//   - ErrIndexOutOfRange  if a query index falls outside 0..n-1.
//   - ErrEmptyQuery       if the query set is empty.
//   - ErrOptionViolation  if an option value is invalid (e.g. workers < 1).
package btg
