package ga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"evocore/internal/rng"
)

func TestNewGeneValidation(t *testing.T) {
	g, err := NewGene(2, 0, 5)
	require.NoError(t, err)
	require.Equal(t, Gene{Value: 2, Min: 0, Max: 5}, g)

	_, err = NewGene(1, 3, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewGene(6, 0, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewGene(-1, 0, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGeneWithValueKeepsBounds(t *testing.T) {
	g := Gene{Value: 2, Min: -1, Max: 3}
	h := g.WithValue(0.5)
	require.Equal(t, 0.5, h.Value)
	require.Equal(t, g.Min, h.Min)
	require.Equal(t, g.Max, h.Max)
	// original gene unchanged
	require.Equal(t, 2.0, g.Value)
}

func TestGenotypeCloneIsIndependent(t *testing.T) {
	gt := Genotype{{Value: 1, Min: 0, Max: 2}, {Value: 2, Min: 0, Max: 2}}
	cp := gt.Clone()
	cp[0] = cp[0].WithValue(0)
	require.Equal(t, 1.0, gt[0].Value)
}

func TestNewRandomPopulation(t *testing.T) {
	pop, err := NewRandomPopulation(12, 6, -2, 2, rng.New(4))
	require.NoError(t, err)
	require.Equal(t, 12, pop.Size())
	for _, ind := range pop.Individuals {
		require.Len(t, ind.Genotype, 6)
		for _, g := range ind.Genotype {
			require.GreaterOrEqual(t, g.Value, -2.0)
			require.LessOrEqual(t, g.Value, 2.0)
		}
	}

	_, err = NewRandomPopulation(-1, 3, 0, 1, rng.New(4))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewRandomPopulation(3, 3, 1, 0, rng.New(4))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPopulationBest(t *testing.T) {
	pop := &Population{}
	require.Nil(t, pop.Best())

	pop.Individuals = []*Phenotype{
		{Fitness: 1},
		{Fitness: 9},
		{Fitness: 4},
	}
	require.Equal(t, 9.0, pop.Best().Fitness)
	require.Equal(t, []float64{1, 9, 4}, pop.Fitnesses())
}
