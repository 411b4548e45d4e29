// Package btg defines the Binding type, options, and sentinel errors for
// relation evaluation and querying.
package btg

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/katalvlaran/prefgraph/pref"
)

var (
	// ErrNilTerm indicates Bind or Rebind received a nil preference term.
	ErrNilTerm = errors.New("btg: preference term is nil")

	// ErrUnboundDataset indicates no dataset was supplied and none was
	// previously bound, or a query ran against an unbound Binding.
	ErrUnboundDataset = errors.New("btg: no dataset bound")

	// ErrCyclicRelation indicates the better-than relation contains a cycle,
	// so its transitive reduction is undefined. Only reachable through a
	// Unioned term whose operand domains overlap.
	ErrCyclicRelation = errors.New("btg: better-than relation contains a cycle")

	// ErrIndexOutOfRange indicates a query row index outside 0..n-1.
	ErrIndexOutOfRange = errors.New("btg: row index out of range")

	// ErrEmptyQuery indicates a query was issued with no row indices.
	ErrEmptyQuery = errors.New("btg: query set is empty")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("btg: invalid option")
)

// Dataset is the minimal view of tabular data the evaluator needs.
// Rows are addressed purely by index; per-row values are reached only
// through the predicates inside the bound term.
type Dataset interface {
	// Len returns the number of rows.
	Len() int
}

// BindOption configures relation evaluation.
type BindOption func(*BindOptions)

// BindOptions holds configurable parameters for Bind and Rebind.
type BindOptions struct {
	// Ctx allows cancellation of the O(n²) evaluation;
	// defaults to context.Background().
	Ctx context.Context

	// Workers bounds the evaluation worker pool. Defaults to
	// runtime.GOMAXPROCS(0). Must be >= 1.
	Workers int

	// err records the first invalid option; checked before evaluation.
	err error
}

// DefaultBindOptions returns a background context and a GOMAXPROCS-sized
// worker pool.
func DefaultBindOptions() BindOptions {
	return BindOptions{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets the cancellation context for relation evaluation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) BindOption {
	return func(o *BindOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the evaluation worker pool to k goroutines.
// k < 1 is an ErrOptionViolation.
func WithWorkers(k int) BindOption {
	return func(o *BindOptions) {
		if k < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.Workers = k
	}
}

// QueryOption configures predecessor/successor queries.
type QueryOption func(*QueryOptions)

// QueryOptions holds configurable parameters for the four query operations.
type QueryOptions struct {
	// Intersect combines per-row result sets by intersection instead of
	// union. With a single query row the flag has no observable effect.
	Intersect bool
}

// DefaultQueryOptions returns union combination.
func DefaultQueryOptions() QueryOptions { return QueryOptions{} }

// WithIntersect switches multi-row combination from union to intersection.
func WithIntersect() QueryOption {
	return func(o *QueryOptions) { o.Intersect = true }
}

// Binding associates a preference term with a concrete dataset and owns the
// materialized relation: the dense BTR, its adjacency lists, and the Hasse
// diagram. A zero-value Binding is valid and unbound; every query against it
// returns ErrUnboundDataset.
//
// mu serializes Rebind against queries: Rebind holds the write lock while it
// swaps all derived state, queries hold read locks.
type Binding struct {
	mu sync.RWMutex

	term pref.Term
	data Dataset
	n    int

	adj        [][]bool // dense BTR: adj[i][j] == better(i, j)
	succ, pred [][]int  // BTR adjacency lists, ascending

	hasseSucc, hassePred [][]int // Hasse adjacency lists, ascending
}

// Term returns the currently bound preference term (nil if unbound).
func (b *Binding) Term() pref.Term {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.term
}

// Len returns the bound dataset's row count (0 if unbound).
func (b *Binding) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.n
}
