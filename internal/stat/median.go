// Package stat provides population fitness statistics and the
// piecewise-linear probability model used by selection strategies.
package stat

import "github.com/cockroachdb/errors"

// ErrInvalidArgument reports caller misuse of a public operation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDegenerate reports an arithmetically degenerate input, such as a
// distribution domain of zero width.
var ErrDegenerate = errors.New("degenerate arithmetic input")

// Median returns the median of values using Torben's algorithm: repeated
// bisection on the value range with counting scans, expected linear time
// and no sorting. The slice is only read, never reordered.
//
// The result is the ((n+1)/2)-th smallest element, so even-length input
// yields the lower of the two middle values rather than their average.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrInvalidArgument, "median of empty sequence")
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	half := (len(values) + 1) / 2
	for {
		guess := (min + max) / 2
		less, greater, equal := 0, 0, 0
		maxLess, minGreater := min, max
		for _, v := range values {
			switch {
			case v < guess:
				less++
				if v > maxLess {
					maxLess = v
				}
			case v > guess:
				greater++
				if v < minGreater {
					minGreater = v
				}
			default:
				equal++
			}
		}

		if less <= half && greater <= half {
			switch {
			case less >= half:
				return maxLess, nil
			case less+equal >= half:
				return guess, nil
			default:
				return minGreater, nil
			}
		}
		// Shrink the value range to exclude the majority side's extreme.
		if less > greater {
			max = maxLess
		} else {
			min = minGreater
		}
	}
}
