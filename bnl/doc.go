// Package bnl implements block-nested-loop preference selection: the maxima
// (skyline) of a dataset under a preference term, without materializing the
// full pairwise relation.
//
// What
//
//   - Select(term, d) returns the rows of d not dominated by any other row
//     under term, using the classic BNL window scan: each candidate is
//     compared against the current window of undominated rows; dominated
//     candidates are discarded, and candidates that dominate window rows
//     evict them.
//   - WithTopK(k) switches to layered selection: the maxima, then the maxima
//     of the remainder, and so on until k rows are collected (fewer only if
//     the dataset runs out).
//   - WithIndices(v) restricts selection to a subset of rows.
//   - SelectGrouped(term, d, groups) runs the selection independently per
//     group (as produced by dataset.GroupBy), concurrently, and concatenates
//     the per-group results in group order.
//
// BNL touches only the pairs the window forces it to, so it is the right
// tool when just the maxima are needed; use btg when the full better-than
// graph or predecessor/successor queries are required.
//
// Complexity: O(n·w) pair comparisons, w = window size (worst case O(n²),
// typically far less); memory O(w).
//
// Errors
//
//   - ErrNilTerm          if the term is nil.
//   - ErrUnboundDataset   if the dataset is nil or empty.
//   - ErrIndexOutOfRange  if a supplied index falls outside 0..n-1.
//   - ErrOptionViolation  if an option value is invalid (e.g. k < 1).
package bnl
