package numbers

import "golang.org/x/exp/constraints"

// Number is any type Step can walk: ordered, with a zero value, addition
// and multiplication.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is the half-open interval [Start, End).
type Range[T Number] struct {
	Start T
	End   T
}

// Empty reports whether the range holds no values.
func (r Range[T]) Empty() bool { return !(r.Start < r.End) }

// Contains reports whether Start <= v < End.
func (r Range[T]) Contains(v T) bool { return r.Start <= v && v < r.End }

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}
