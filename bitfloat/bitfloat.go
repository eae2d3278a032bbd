//go:build !noulp

package bitfloat

import (
	"cmp"
	"math"
	"strconv"

	"github.com/taurr/numbers-fun/internal/bitfield"
	"github.com/taurr/numbers-fun/internal/failure"
	"github.com/taurr/numbers-fun/internal/ordered"
)

var (
	// InvalidArgument is returned for NaN inputs and backwards ranges.
	InvalidArgument = &failure.InvalidArgument

	// Overflow is returned when a step would leave the finite floats.
	Overflow = &failure.Overflow
)

var (
	sign     = bitfield.Field{Shift: 31, Width: 1}
	exponent = bitfield.Field{Shift: 23, Width: 8}
	mantissa = bitfield.Field{Shift: 0, Width: 23}

	// Layout is the binary32 layout: sign, exponent, mantissa.
	Layout = bitfield.Layout{sign, exponent, mantissa}
)

const (
	negZero  = 1 << 31
	smallest = 1
)

// BitFloat is an immutable float32 that steps by representable values.
// The zero value is +0.
type BitFloat struct {
	v float32
}

// New wraps v.
func New(v float32) BitFloat { return BitFloat{v: v} }

// FromBits wraps the float32 with the given binary32 bit pattern.
func FromBits(bits uint32) BitFloat { return BitFloat{v: math.Float32frombits(bits)} }

// Float32 returns the wrapped value.
func (x BitFloat) Float32() float32 { return x.v }

// Bits returns the binary32 bit pattern of the wrapped value.
func (x BitFloat) Bits() uint32 { return math.Float32bits(x.v) }

// Sign, Exponent and Mantissa return the raw layout fields.
func (x BitFloat) Sign() uint32     { return sign.Get(x.Bits()) }
func (x BitFloat) Exponent() uint32 { return exponent.Get(x.Bits()) }
func (x BitFloat) Mantissa() uint32 { return mantissa.Get(x.Bits()) }

// IsNaN reports whether x is not a number.
func (x BitFloat) IsNaN() bool { return x.v != x.v }

// IsFinite reports whether x is neither infinite nor NaN.
func (x BitFloat) IsFinite() bool { return x.Exponent() != exponent.Max() }

// String formats x with the shortest representation that reads back
// as the same float32.
func (x BitFloat) String() string {
	return strconv.FormatFloat(float64(x.v), 'g', -1, 32)
}

// Equal reports whether x and y are the same float. +0 equals -0, and NaN
// equals nothing.
func (x BitFloat) Equal(y BitFloat) bool { return x.v == y.v }

// Less reports whether x < y as floats.
func (x BitFloat) Less(y BitFloat) bool { return x.v < y.v }

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than
// y. NaN sorts before every other value.
func Compare(x, y BitFloat) int { return cmp.Compare(x.v, y.v) }

// Increment returns the next representable value above x.
func (x BitFloat) Increment() (BitFloat, error) {
	if err := x.steppable("increment"); err != nil {
		return x, err
	}

	bits := x.Bits()
	switch {
	case bits == negZero:
		return FromBits(smallest), nil
	case sign.Get(bits) == 1:
		return FromBits(canonical(shrink(bits))), nil
	}

	next, ok := grow(bits)
	if !ok {
		return x, Overflow.New("increment of %v leaves the finite range", x)
	}
	return FromBits(next), nil
}

// Decrement returns the next representable value below x.
func (x BitFloat) Decrement() (BitFloat, error) {
	if err := x.steppable("decrement"); err != nil {
		return x, err
	}

	bits := x.Bits()
	switch {
	case bits&^sign.Mask() == 0:
		return FromBits(negZero | smallest), nil
	case sign.Get(bits) == 0:
		return FromBits(shrink(bits)), nil
	}

	next, ok := grow(bits)
	if !ok {
		return x, Overflow.New("decrement of %v leaves the finite range", x)
	}
	return FromBits(next), nil
}

// Forward increments x n times. On error it returns the last value it
// reached along with the error.
func (x BitFloat) Forward(n uint32) (_ BitFloat, err error) {
	for ; n > 0; n-- {
		if x, err = x.Increment(); err != nil {
			return x, err
		}
	}
	return x, nil
}

// Backward decrements x n times, stopping like Forward on error.
func (x BitFloat) Backward(n uint32) (_ BitFloat, err error) {
	for ; n > 0; n-- {
		if x, err = x.Decrement(); err != nil {
			return x, err
		}
	}
	return x, nil
}

// StepsBetween returns how many increments lead from x to y. The two zeros
// count as one value. ±Inf are accepted as endpoints and sit one step past
// ±MaxFloat32.
func StepsBetween(x, y BitFloat) (uint32, error) {
	if x.IsNaN() || y.IsNaN() {
		return 0, InvalidArgument.New("steps between %v and %v", x, y)
	}
	if y.Less(x) {
		return 0, InvalidArgument.New("steps between %v and %v: backwards", x, y)
	}
	return rank(y) - rank(x), nil
}

// Ulp returns the gap between |x| and the next representable float32 above
// it. It is NaN when x is not finite.
func (x BitFloat) Ulp() BitFloat {
	const width = uint32(23)

	switch e := x.Exponent(); {
	case e == exponent.Max():
		return New(float32(math.NaN()))
	case e == 0:
		return FromBits(smallest)
	case e <= width:
		return FromBits(1 << (e - 1))
	default:
		return FromBits(exponent.Set(0, e-width))
	}
}

// steppable checks that x has a neighbour to step to.
func (x BitFloat) steppable(op string) error {
	switch {
	case x.IsNaN():
		return InvalidArgument.New("%s of NaN", op)
	case !x.IsFinite():
		return Overflow.New("%s of %v", op, x)
	}
	return nil
}

// grow moves bits one step away from zero. It fails when the result would
// be infinite.
func grow(bits uint32) (uint32, bool) {
	if m := mantissa.Get(bits); m < mantissa.Max() {
		return mantissa.Set(bits, m+1), true
	}
	e := exponent.Get(bits) + 1
	if e == exponent.Max() {
		return bits, false
	}
	return exponent.Set(mantissa.Set(bits, 0), e), true
}

// shrink moves bits one step towards zero. bits must not be a zero.
func shrink(bits uint32) uint32 {
	if m := mantissa.Get(bits); m > 0 {
		return mantissa.Set(bits, m-1)
	}
	return exponent.Set(mantissa.Set(bits, mantissa.Max()), exponent.Get(bits)-1)
}

// canonical folds -0 into +0.
func canonical(bits uint32) uint32 {
	if bits == negZero {
		return 0
	}
	return bits
}

// rank is the position of x in the sequence Increment walks, with -0 and +0
// sharing a slot.
func rank(x BitFloat) uint32 {
	bits := canonical(x.Bits())
	key := ordered.Key(bits)
	if sign.Get(bits) == 1 {
		key++
	}
	return key
}
