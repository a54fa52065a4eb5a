package ga

import (
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"

	"evocore/internal/rng"
)

// MutatePopulation applies the operator to every individual, fanning out
// across workers. Each individual gets a private stream forked from the
// base seed and its own index, so the result is independent of worker
// count and goroutine scheduling. Genotypes are replaced with fresh
// slices; cached fitness values are left stale for the caller to
// re-evaluate. Returns the total mutation count.
func (m *GaussianMutation) MutatePopulation(pop *Population, seed int64, workers int) (int, error) {
	if m.Probability <= 0 || m.Probability > 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "mutation probability %g outside (0,1]", m.Probability)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	counts := make([]int, len(pop.Individuals))
	errs := make([]error, len(pop.Individuals))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, ind := range pop.Individuals {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ind *Phenotype) {
			defer wg.Done()
			defer func() { <-sem }()
			mutated, n, err := m.Mutate(ind.Genotype, rng.Fork(seed, i))
			if err != nil {
				errs[i] = err
				return
			}
			ind.Genotype = mutated
			counts[i] = n
		}(i, ind)
	}
	wg.Wait()

	total := 0
	for i, n := range counts {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += n
	}
	return total, nil
}
