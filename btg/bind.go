package btg

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/prefgraph/pref"
)

// Bind evaluates term over every ordered row pair of d and returns a Binding
// owning the materialized BTR and its Hasse diagram.
// Returns ErrNilTerm, ErrUnboundDataset (nil or empty dataset),
// ErrCyclicRelation, ErrOptionViolation, or the context's error on
// cancellation.
func Bind(term pref.Term, d Dataset, opts ...BindOption) (*Binding, error) {
	b := &Binding{}
	if err := b.Rebind(term, d, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Rebind replaces the binding's term and dataset and recomputes all derived
// state. Passing a nil dataset reuses the previously bound one; if none was
// ever bound, Rebind fails with ErrUnboundDataset. On any failure the
// previous state is left untouched.
func (b *Binding) Rebind(term pref.Term, d Dataset, opts ...BindOption) error {
	// 1. Validate the term before taking the lock.
	if term == nil {
		return ErrNilTerm
	}

	// 2. Apply options; surface the first invalid one.
	o := DefaultBindOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	// 3. Exclusive access: a rebind must not race in-flight queries.
	b.mu.Lock()
	defer b.mu.Unlock()

	// 4. Resolve the dataset: explicit argument, else the previous binding.
	if d == nil {
		d = b.data
	}
	if d == nil || d.Len() == 0 {
		return ErrUnboundDataset
	}
	n := d.Len()

	// 5. Materialize the relation: O(n²) pure pair evaluations.
	adj, err := evaluate(term, n, o)
	if err != nil {
		return err
	}
	succ, pred := adjacencyLists(adj)

	// 6. Reject cyclic relations before reduction is attempted.
	if err = checkAcyclic(succ, n); err != nil {
		return err
	}

	// 7. Transitive reduction (the covering relation).
	hasseSucc, hassePred := reduce(succ, n)

	// 8. Commit: the old BTR/Hasse pair is discarded wholesale.
	b.term, b.data, b.n = term, d, n
	b.adj, b.succ, b.pred = adj, succ, pred
	b.hasseSucc, b.hassePred = hasseSucc, hassePred

	return nil
}

// evaluate computes the dense relation adj[i][j] = better(i, j) for all
// i != j. Rows are fanned out over a bounded worker pool; each task writes
// only its own row slice, so no locking is needed beyond the final wait.
func evaluate(term pref.Term, n int, o BindOptions) ([][]bool, error) {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	pool, err := ants.NewPool(o.Workers)
	if err != nil {
		return nil, fmt.Errorf("btg: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(e error) { once.Do(func() { firstErr = e }) }

	for i := 0; i < n; i++ {
		row := i
		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()
			// Cancellation is checked once per row; a row is cheap enough
			// that finer granularity only adds overhead.
			select {
			case <-o.Ctx.Done():
				fail(o.Ctx.Err())

				return
			default:
			}
			out := adj[row]
			for j := 0; j < n; j++ {
				if j == row {
					continue // the relation is irreflexive by construction
				}
				out[j] = pref.Better(term, row, j)
			}
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("btg: submit row task: %w", err))

			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return adj, nil
}

// adjacencyLists converts the dense relation into ascending successor and
// predecessor lists.
func adjacencyLists(adj [][]bool) (succ, pred [][]int) {
	n := len(adj)
	succ = make([][]int, n)
	pred = make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] {
				succ[i] = append(succ[i], j)
				pred[j] = append(pred[j], i)
			}
		}
	}

	return succ, pred
}
