package stat

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"evocore/internal/rng"
)

// LinearDistribution is a normalized linear probability density over
// [X1,X2] with ordinates Y1 at X1 and Y2 at X2. Y2 is derived, never
// supplied: for fixed x1, x2 and y1 the normalization constraint gives
//
//	y2 = -((x2-x1)*y1 - 2) / (x2-x1)
//
// and when that would be negative, y2 is fixed at 0 and the upper bound
// shrunk to x2 = x1 + 2/y1 so the remaining triangle still integrates
// to exactly 1.
//
// The type is a comparable value; == compares all parameters, so
// equality and map-key hashing are structural.
type LinearDistribution struct {
	X1, Y1 float64
	X2, Y2 float64

	k, d float64 // slope and intercept of the density
}

// NewLinearDistribution derives a distribution from the domain [x1,x2]
// and the left ordinate y1 >= 0.
func NewLinearDistribution(x1, x2, y1 float64) (LinearDistribution, error) {
	if x1 == x2 {
		return LinearDistribution{}, errors.Wrapf(ErrDegenerate, "distribution domain [%g,%g] has zero width", x1, x2)
	}
	if x1 > x2 {
		return LinearDistribution{}, errors.Wrapf(ErrInvalidArgument, "distribution domain [%g,%g]", x1, x2)
	}
	if y1 < 0 {
		return LinearDistribution{}, errors.Wrapf(ErrInvalidArgument, "negative density ordinate y1=%g", y1)
	}

	y2 := -((x2-x1)*y1 - 2) / (x2 - x1)
	if y2 < 0 {
		y2 = 0
		x2 = x1 + 2/y1
	}

	dist := LinearDistribution{X1: x1, Y1: y1, X2: x2, Y2: y2}
	dist.k = (y2 - y1) / (x2 - x1)
	dist.d = y1 - dist.k*x1
	return dist, nil
}

// PDF evaluates the density k*x + d inside [X1,X2], 0 outside.
func (l LinearDistribution) PDF(x float64) float64 {
	if x < l.X1 || x > l.X2 {
		return 0
	}
	return l.k*x + l.d
}

// CDF evaluates the closed-form integral of the density, normalized so
// that CDF(X1) = 0 and CDF(X2) = 1.
func (l LinearDistribution) CDF(x float64) float64 {
	if x < l.X1 {
		return 0
	}
	if x > l.X2 {
		return 1
	}
	return l.antiderivative(x) - l.antiderivative(l.X1)
}

func (l LinearDistribution) antiderivative(x float64) float64 {
	return l.k*x*x/2 + l.d*x
}

// Quantile is the inverse CDF for p in [0,1].
func (l LinearDistribution) Quantile(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "quantile probability %g outside [0,1]", p)
	}
	if l.k == 0 {
		// Uniform density.
		return l.X1 + p*(l.X2-l.X1), nil
	}
	c := p + l.antiderivative(l.X1)
	x := (-l.d + math.Sqrt(l.d*l.d+2*l.k*c)) / l.k
	return x, nil
}

// Sample draws from the distribution via inverse transform sampling,
// consuming one uniform draw from src.
func (l LinearDistribution) Sample(src rng.Source) float64 {
	x, _ := l.Quantile(src.Float64())
	return x
}

func (l LinearDistribution) String() string {
	return fmt.Sprintf("LinearDistribution[(%g, %g), (%g, %g)]", l.X1, l.Y1, l.X2, l.Y2)
}
