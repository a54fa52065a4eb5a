package stat

import "evocore/internal/ga"

// Statistic is an immutable snapshot of one population's fitness
// distribution at one point in time.
type Statistic struct {
	Count        int
	Sum          float64
	SumOfSquares float64
	Min          float64
	Max          float64
	Mean         float64
	Variance     float64
	Median       float64
}

// Evaluate folds a population into a Statistic without modifying it.
// Sum and sum-of-squares accumulate directly in a single pass; variance
// is sumSq/n - mean^2, reported as 0 for count <= 1 and clamped at 0
// against rounding. An empty population yields the zero Statistic;
// callers must check Count before using the derived fields.
func Evaluate(pop *ga.Population) Statistic {
	if pop == nil || pop.Size() == 0 {
		return Statistic{}
	}

	buf := pop.Fitnesses()
	s := Statistic{
		Count: len(buf),
		Min:   buf[0],
		Max:   buf[0],
	}
	for _, f := range buf {
		s.Sum += f
		s.SumOfSquares += f * f
		if f < s.Min {
			s.Min = f
		}
		if f > s.Max {
			s.Max = f
		}
	}

	n := float64(s.Count)
	s.Mean = s.Sum / n
	if s.Count > 1 {
		s.Variance = s.SumOfSquares/n - s.Mean*s.Mean
		if s.Variance < 0 {
			s.Variance = 0
		}
	}

	// buf is non-empty here, so Median cannot fail.
	s.Median, _ = Median(buf)
	return s
}
