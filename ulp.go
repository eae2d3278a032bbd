//go:build !noulp

package numbers

import "github.com/taurr/numbers-fun/bitfloat"

// ULPEnabled reports whether the ULP strategy is compiled in.
const ULPEnabled = true

// ULPRange is the half-open interval [Start, End) of float32 values.
type ULPRange struct {
	Start bitfloat.BitFloat
	End   bitfloat.BitFloat
}

// ULPSequence walks a ULPRange by representable values. It is returned by
// ULP.
type ULPSequence struct {
	r ULPRange
	n uint32

	cur     bitfloat.BitFloat
	started bool
	done    bool
	err     error
}

// ULP returns the sequence that starts at r.Start and moves n representable
// values up at a time while the value is below r.End. Every value is exact
// and the sequence is strictly increasing.
//
// Start must be finite and End must not be NaN. The walk ends without error
// when it would step past MaxFloat32, since every value beyond is at least
// End.
func ULP(r ULPRange, n uint32) (*ULPSequence, error) {
	switch {
	case n == 0:
		return nil, InvalidArgument.New("ulp step must be positive")
	case !r.Start.IsFinite():
		return nil, InvalidArgument.New("ulp range start %v is not finite", r.Start)
	case r.End.IsNaN():
		return nil, InvalidArgument.New("ulp range end is NaN")
	}
	return &ULPSequence{r: r, n: n}, nil
}

// Next implements Iterator.
func (s *ULPSequence) Next() (v bitfloat.BitFloat, ok bool) {
	if s.done {
		return v, false
	}

	if !s.started {
		s.cur, s.started = s.r.Start, true
	} else {
		next, err := s.cur.Forward(s.n)
		if err != nil {
			if !Overflow.Has(err) {
				s.err = err
			}
			s.done = true
			return v, false
		}
		s.cur = next
	}

	if !s.cur.Less(s.r.End) {
		s.done = true
		return v, false
	}
	return s.cur, true
}

// Err implements Iterator.
func (s *ULPSequence) Err() error { return s.err }

// Reset implements Iterator.
func (s *ULPSequence) Reset() {
	s.cur, s.started, s.done, s.err = bitfloat.BitFloat{}, false, false, nil
}

// Len returns how many values the sequence produces in total.
func (s *ULPSequence) Len() int {
	if !s.r.Start.Less(s.r.End) {
		return 0
	}
	steps, err := bitfloat.StepsBetween(s.r.Start, s.r.End)
	if err != nil {
		return 0
	}
	return int((uint64(steps) + uint64(s.n) - 1) / uint64(s.n))
}

// Range returns the range the sequence walks.
func (s *ULPSequence) Range() ULPRange { return s.r }
