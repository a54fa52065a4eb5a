package ga

import (
	"github.com/cockroachdb/errors"

	"evocore/internal/rng"
)

// Subset draws k distinct indices from [0,n) uniformly without
// replacement. It runs a partial Fisher-Yates select-and-swap over a
// sparse swap map, so cost is O(k) and no full permutation is
// materialized for large n. Exactly k uniform-integer draws are
// consumed, which keeps seeded streams reproducible.
func Subset(n, k int, src rng.Source) ([]int, error) {
	if n < 0 || k < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "subset(n=%d, k=%d): negative count", n, k)
	}
	if k > n {
		return nil, errors.Wrapf(ErrInvalidArgument, "subset(n=%d, k=%d): k exceeds n", n, k)
	}

	out := make([]int, k)
	swapped := make(map[int]int, k)
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		vi, ok := swapped[i]
		if !ok {
			vi = i
		}
		vj, ok := swapped[j]
		if !ok {
			vj = j
		}
		out[i] = vj
		swapped[j] = vi
	}
	return out, nil
}
