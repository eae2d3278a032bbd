package numbers

import "golang.org/x/exp/constraints"

// EqWithTolerance reports whether |a - b| < tolerance. It is symmetric but
// not transitive, so it must not be used to group values.
func EqWithTolerance[T constraints.Float](a, b, tolerance T) (bool, error) {
	if !(tolerance >= 0) {
		return false, InvalidArgument.New("tolerance %v is negative", tolerance)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance, nil
}
