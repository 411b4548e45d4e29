package btg_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prefgraph/btg"
)

// queryFns enumerates the four query operations uniformly.
func queryFns(b *btg.Binding) map[string]func(v []int, opts ...btg.QueryOption) ([]int, error) {
	return map[string]func(v []int, opts ...btg.QueryOption) ([]int, error){
		"AllPred":   b.AllPred,
		"AllSucc":   b.AllSucc,
		"HassePred": b.HassePred,
		"HasseSucc": b.HasseSucc,
	}
}

func union(a, b []int) []int {
	seen := map[int]bool{}
	for _, x := range a {
		seen[x] = true
	}
	for _, x := range b {
		seen[x] = true
	}
	out := make([]int, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	sort.Ints(out)

	return out
}

func intersection(a, b []int) []int {
	inA := map[int]bool{}
	for _, x := range a {
		inA[x] = true
	}
	out := []int{}
	for _, x := range b {
		if inA[x] {
			out = append(out, x)
		}
	}
	sort.Ints(out)

	return out
}

// TestQuery_IdentityLaws pins the combination laws from the contract:
// f([x,y]) == union(f([x]), f([y])) and
// f([x,y], intersect) == intersection(f([x]), f([y]))
// for every query function and every row pair.
func TestQuery_IdentityLaws(t *testing.T) {
	b, d := paretoFixture(t)
	n := d.Len()

	for name, fn := range queryFns(b) {
		t.Run(name, func(t *testing.T) {
			for x := 0; x < n; x++ {
				for y := 0; y < n; y++ {
					fx, err := fn([]int{x})
					require.NoError(t, err)
					fy, err := fn([]int{y})
					require.NoError(t, err)

					got, err := fn([]int{x, y})
					require.NoError(t, err)
					assert.Equal(t, union(fx, fy), got, "union law at (%d,%d)", x, y)

					got, err = fn([]int{x, y}, btg.WithIntersect())
					require.NoError(t, err)
					assert.Equal(t, intersection(fx, fy), got, "intersection law at (%d,%d)", x, y)
				}
			}
		})
	}
}

// TestQuery_SingletonFlagNoEffect checks that WithIntersect is unobservable
// on single-element query sets.
func TestQuery_SingletonFlagNoEffect(t *testing.T) {
	b, d := paretoFixture(t)

	for name, fn := range queryFns(b) {
		t.Run(name, func(t *testing.T) {
			for x := 0; x < d.Len(); x++ {
				plain, err := fn([]int{x})
				require.NoError(t, err)
				flagged, err := fn([]int{x}, btg.WithIntersect())
				require.NoError(t, err)
				assert.Equal(t, plain, flagged)
			}
		})
	}
}

// TestQuery_InputOrderIrrelevant checks that results are ascending and
// identical regardless of the order of elements in v.
func TestQuery_InputOrderIrrelevant(t *testing.T) {
	b, _ := paretoFixture(t)

	for name, fn := range queryFns(b) {
		t.Run(name, func(t *testing.T) {
			fwd, err := fn([]int{0, 1, 2})
			require.NoError(t, err)
			rev, err := fn([]int{2, 1, 0})
			require.NoError(t, err)
			mixed, err := fn([]int{1, 2, 0})
			require.NoError(t, err)

			assert.Equal(t, fwd, rev)
			assert.Equal(t, fwd, mixed)
			assert.True(t, sort.IntsAreSorted(fwd), "result must be ascending")
			for i := 1; i < len(fwd); i++ {
				assert.NotEqual(t, fwd[i-1], fwd[i], "result must be duplicate-free")
			}
		})
	}
}
