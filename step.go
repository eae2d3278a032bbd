package numbers

// Sequence is the arithmetic step sequence returned by Step.
type Sequence[T Number] struct {
	r     Range[T]
	step  T
	float bool

	k    uint64
	prev T
	done bool
}

// Step returns the sequence start + k*step for k = 0, 1, 2, ... while the
// value is below r.End. step must be positive.
//
// Each element is computed from its index rather than by accumulation.
// For floats the product is rounded to T before the sum, so results do not
// depend on fused multiply-add. Integer sequences end early if the product
// wraps around.
func Step[T Number](r Range[T], step T) (*Sequence[T], error) {
	if !(step > 0) {
		return nil, InvalidArgument.New("step %v is not positive", step)
	}
	return &Sequence[T]{
		r:     r,
		step:  step,
		float: isFloat[T](),
	}, nil
}

// Next implements Iterator.
func (s *Sequence[T]) Next() (v T, ok bool) {
	if s.done {
		return v, false
	}

	cur := s.r.Start + T(T(s.k)*s.step)
	if !(cur < s.r.End) || (!s.float && s.k > 0 && cur <= s.prev) {
		s.done = true
		return v, false
	}

	s.prev = cur
	s.k++
	return cur, true
}

// Err implements Iterator. An arithmetic sequence never fails.
func (s *Sequence[T]) Err() error { return nil }

// Reset implements Iterator.
func (s *Sequence[T]) Reset() {
	var zero T
	s.k, s.prev, s.done = 0, zero, false
}

// Index returns how many values have been produced since the last Reset.
func (s *Sequence[T]) Index() uint64 { return s.k }

// Range returns the range the sequence walks.
func (s *Sequence[T]) Range() Range[T] { return s.r }
