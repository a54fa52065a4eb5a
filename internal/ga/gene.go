// Package ga implements the stochastic operator core: bounded numeric
// genes, uniform subset sampling without replacement and Gaussian
// mutation. All randomness is drawn from an explicitly passed stream.
package ga

import (
	"github.com/cockroachdb/errors"

	"evocore/internal/rng"
)

// ErrInvalidArgument reports caller misuse of a public operation.
var ErrInvalidArgument = errors.New("invalid argument")

// Gene is a bounded numeric value inside an individual's encoding.
// Genes are immutable values; WithValue returns a fresh instance.
type Gene struct {
	Value float64
	Min   float64
	Max   float64
}

// NewGene validates the bounds and returns a gene.
// The bounds are inclusive and must contain the value.
func NewGene(value, min, max float64) (Gene, error) {
	if min > max {
		return Gene{}, errors.Wrapf(ErrInvalidArgument, "gene bounds [%g,%g]", min, max)
	}
	if value < min || value > max {
		return Gene{}, errors.Wrapf(ErrInvalidArgument, "gene value %g outside [%g,%g]", value, min, max)
	}
	return Gene{Value: value, Min: min, Max: max}, nil
}

// WithValue returns a new gene holding v under the same bounds.
func (g Gene) WithValue(v float64) Gene {
	return Gene{Value: v, Min: g.Min, Max: g.Max}
}

// Genotype is the ordered gene sequence of one candidate solution.
type Genotype []Gene

// Clone returns a copy of the genotype.
func (gt Genotype) Clone() Genotype {
	out := make(Genotype, len(gt))
	copy(out, gt)
	return out
}

// Phenotype pairs a genotype with its cached fitness.
type Phenotype struct {
	Genotype Genotype
	Fitness  float64
}

// Population is the ordered phenotype set of one generation. Order is
// insertion order; it carries no semantics for statistics but is the
// indexing domain for subset sampling.
type Population struct {
	Individuals []*Phenotype
}

// NewRandomPopulation builds size individuals whose genes are drawn
// uniformly inside [min,max].
func NewRandomPopulation(size, genotypeLen int, min, max float64, src rng.Source) (*Population, error) {
	if size < 0 || genotypeLen < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "population size %d, genotype length %d", size, genotypeLen)
	}
	if min > max {
		return nil, errors.Wrapf(ErrInvalidArgument, "gene bounds [%g,%g]", min, max)
	}

	p := &Population{Individuals: make([]*Phenotype, size)}
	for i := 0; i < size; i++ {
		gt := make(Genotype, genotypeLen)
		for j := range gt {
			gt[j] = Gene{Value: min + src.Float64()*(max-min), Min: min, Max: max}
		}
		p.Individuals[i] = &Phenotype{Genotype: gt}
	}
	return p, nil
}

// Size returns the population size.
func (p *Population) Size() int {
	return len(p.Individuals)
}

// Best returns the individual with the highest fitness, nil when empty.
func (p *Population) Best() *Phenotype {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// Fitnesses copies all fitness values into a fresh buffer.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.Individuals))
	for i, ind := range p.Individuals {
		out[i] = ind.Fitness
	}
	return out
}
