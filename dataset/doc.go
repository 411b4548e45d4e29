// Package dataset provides the tabular collaborators of the preference
// engine: an immutable, column-oriented numeric table, CSV ingestion,
// atomic column criteria (Low / High) producing pref.Term leaves, and
// value-based grouping for per-group preference selection.
//
// A Dataset is built once (FromColumns or FromCSV) and treated as immutable
// afterwards; criteria capture column slices by reference, so mutating the
// source slices after construction is the caller's foot-gun to avoid.
//
// Rows are addressed by 0-based index everywhere in this module.
//
// Errors
//
//   - ErrEmptyDataset   if construction yields no columns or no rows.
//   - ErrRaggedColumns  if columns differ in length.
//   - ErrNoColumn       if a named column does not exist.
package dataset
