// Package prefgraph evaluates multi-criteria preference (skyline/Pareto)
// queries over finite tabular datasets.
//
// 🚀 What is prefgraph?
//
//	A library that brings together:
//		• pref/    — a strict-partial-order preference algebra: atomic
//		  criteria composed via Pareto, Prioritization, Intersection,
//		  Union, and Reverse
//		• dataset/ — a column-oriented numeric table with CSV ingestion,
//		  ready-made Low/High column criteria, and value grouping
//		• btg/     — the Better-Than-Graph engine: eager O(n²) relation
//		  evaluation, Hasse diagram (transitive reduction), and
//		  predecessor/successor queries with union/intersection combination
//		• bnl/     — block-nested-loop preference selection: skyline,
//		  layered top-k, and per-group selection
//
// ✨ Why choose prefgraph?
//
//   - Pure values – terms are immutable; evaluation state lives in an
//     explicit, rebindable Binding
//   - Rock-solid guarantees – deterministic ascending results, cyclic
//     relations rejected at bind time, R/W-locked rebind discipline
//   - Parallel where it pays – pair evaluation fans out over a bounded
//     worker pool; grouped selection runs groups concurrently
//
// Start with dataset.FromColumns (or FromCSV), build criteria with
// dataset.Low / dataset.High, compose them with pref, then either bind the
// full graph with btg.Bind or take just the maxima with bnl.Select.
package prefgraph
