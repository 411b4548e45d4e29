package btg

import (
	"fmt"
	"io"
	"strconv"
)

// DOTOption configures Graphviz export.
type DOTOption func(*DOTOptions)

// DOTOptions holds configurable parameters for WriteHasseDOT.
type DOTOptions struct {
	// Name is the graph name in the DOT header. Defaults to "hasse".
	Name string

	// Label renders a vertex label for a row index.
	// Defaults to the decimal index.
	Label func(i int) string
}

// DefaultDOTOptions returns decimal row labels and the graph name "hasse".
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		Name:  "hasse",
		Label: strconv.Itoa,
	}
}

// WithDOTName sets the graph name in the DOT header.
// An empty name has no effect.
func WithDOTName(name string) DOTOption {
	return func(o *DOTOptions) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithDOTLabel sets the vertex label renderer.
// A nil renderer has no effect.
func WithDOTLabel(fn func(i int) string) DOTOption {
	return func(o *DOTOptions) {
		if fn != nil {
			o.Label = fn
		}
	}
}

// WriteHasseDOT renders the Hasse diagram in Graphviz DOT form: one node per
// row, one edge per covering pair, better row at the tail. Output is fully
// deterministic (nodes ascending, edges in (from, to) order), so it is safe
// to golden-test and diff. Returns ErrUnboundDataset on an unbound Binding;
// write errors are returned wrapped.
func (b *Binding) WriteHasseDOT(w io.Writer, opts ...DOTOption) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.n == 0 {
		return ErrUnboundDataset
	}

	o := DefaultDOTOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := fmt.Fprintf(w, "digraph %s {\n", o.Name); err != nil {
		return fmt.Errorf("btg: write DOT: %w", err)
	}
	for i := 0; i < b.n; i++ {
		if _, err := fmt.Fprintf(w, "\t%d [label=%q];\n", i, o.Label(i)); err != nil {
			return fmt.Errorf("btg: write DOT: %w", err)
		}
	}
	for i := 0; i < b.n; i++ {
		for _, j := range b.hasseSucc[i] {
			if _, err := fmt.Fprintf(w, "\t%d -> %d;\n", i, j); err != nil {
				return fmt.Errorf("btg: write DOT: %w", err)
			}
		}
	}
	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("btg: write DOT: %w", err)
	}

	return nil
}
