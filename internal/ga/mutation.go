package ga

import (
	"math"

	"github.com/cockroachdb/errors"

	"evocore/internal/rng"
)

// GaussianMutation perturbs a uniformly chosen subset of genes with
// standard-normal draws, clamping every result to the gene's bounds.
type GaussianMutation struct {
	// Probability is the expected fraction of genes perturbed per call,
	// in (0,1].
	Probability float64
}

// NewGaussianMutation validates the probability and returns the operator.
func NewGaussianMutation(p float64) (*GaussianMutation, error) {
	if p <= 0 || p > 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "mutation probability %g outside (0,1]", p)
	}
	return &GaussianMutation{Probability: p}, nil
}

// Mutate perturbs ceil(len(genes)*p) genes chosen by Subset and returns
// a fresh genotype plus the mutation count; the input is left untouched.
//
// The candidate value scales the standard-normal draw by the gene's
// current value (v' = z*v). That matches the historical operator, which
// is not an additive perturbation centered on the current value.
func (m *GaussianMutation) Mutate(genes Genotype, src rng.Source) (Genotype, int, error) {
	if m.Probability <= 0 || m.Probability > 1 {
		return nil, 0, errors.Wrapf(ErrInvalidArgument, "mutation probability %g outside (0,1]", m.Probability)
	}

	k := int(math.Ceil(float64(len(genes)) * m.Probability))
	if k > len(genes) {
		k = len(genes)
	}
	if k == 0 {
		return genes.Clone(), 0, nil
	}

	targets, err := Subset(len(genes), k, src)
	if err != nil {
		return nil, 0, err
	}

	out := genes.Clone()
	for _, i := range targets {
		g := out[i]
		v := src.NormFloat64() * g.Value
		v = math.Min(v, g.Max)
		v = math.Max(v, g.Min)
		out[i] = g.WithValue(v)
	}
	return out, len(targets), nil
}
