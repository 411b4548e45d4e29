package btg

// Vertex coloring for the acyclicity check.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// checkAcyclic verifies the relation graph is a DAG using three-color DFS:
// meeting a gray vertex means a back-edge, hence a cycle.
// Returns ErrCyclicRelation on the first cycle found.
//
// Complexity: O(n + E) time, O(n) memory.
func checkAcyclic(succ [][]int, n int) error {
	state := make([]int8, n)

	var visit func(v int) error
	visit = func(v int) error {
		state[v] = gray
		for _, w := range succ[v] {
			switch state[w] {
			case gray:
				return ErrCyclicRelation
			case white:
				if err := visit(w); err != nil {
					return err
				}
			}
		}
		state[v] = black

		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == white {
			if err := visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// reduce computes the transitive reduction (Hasse diagram) of an acyclic
// relation: edge i→j survives iff no intermediate k gives a multi-hop path
// i→k→*j reproducing the same reachability. For a DAG the reduction is
// unique: it is the covering relation of the induced partial order.
//
// Complexity: O(n·(n+E)) for the closure plus O(Σ deg²) for the filter.
func reduce(succ [][]int, n int) (hasseSucc, hassePred [][]int) {
	reach := closure(succ, n)

	hasseSucc = make([][]int, n)
	hassePred = make([][]int, n)
	for i := 0; i < n; i++ {
		for _, j := range succ[i] {
			redundant := false
			for _, k := range succ[i] {
				if k != j && reach[k][j] {
					redundant = true

					break
				}
			}
			if !redundant {
				hasseSucc[i] = append(hasseSucc[i], j)
				hassePred[j] = append(hassePred[j], i)
			}
		}
	}

	return hasseSucc, hassePred
}

// closure computes per-vertex reachability over succ: reach[v][w] is true
// iff a directed path v→…→w of length >= 1 exists. Plain stack-based DFS
// from every vertex; the relation is dense enough (O(n²) edges for typical
// preference terms) that fancier closure algorithms do not pay off.
func closure(succ [][]int, n int) [][]bool {
	reach := make([][]bool, n)
	stack := make([]int, 0, n)
	for v := 0; v < n; v++ {
		seen := make([]bool, n)
		stack = stack[:0]
		stack = append(stack, v)
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range succ[x] {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
		reach[v] = seen
	}

	return reach
}
