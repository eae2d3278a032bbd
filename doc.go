// Package numbers walks half-open numeric ranges by a fixed step.
//
// Two strategies are provided. Step is arithmetic: the k-th element is
// start + k*step, for any integer or float type. Float results carry the
// rounding of that product and sum, so a float sequence is not guaranteed
// to be strictly increasing when start is large next to step:
//
//	seq, _ := numbers.Step(numbers.Range[float32]{Start: 2e7, End: 2e7 + 2}, 0.1)
//	vals, _ := numbers.Collect[float32](seq) // eleven copies of 2e7
//
// ULP walks float32 ranges one representable value at a time using
// bitfloat, so it never repeats or skips a value. It is compiled out by the
// noulp build tag; ULPEnabled reports which build is in use.
//
// EqWithTolerance compares floats within an absolute tolerance.
package numbers
