package tests

import (
	"github.com/zeebo/pcg"
)

const (
	// Iterations is how many random inputs a property test draws.
	Iterations = 1 << 12

	// MaxSteps bounds the random step counts, exclusive.
	MaxSteps = 1024

	mantissaSize = 1 << 23
)

// Normal returns the bits of a random positive normal float32 whose exponent
// field is in [1, 253], so that MaxSteps increments can never reach +Inf.
func Normal() uint32 {
	return (1+pcg.Uint32n(253))<<23 | pcg.Uint32n(mantissaSize)
}

// Signed is Normal with a random sign.
func Signed() uint32 {
	return Normal() | pcg.Uint32n(2)<<31
}

// Finite returns the bits of a random finite float32. Zeros and subnormals
// are included.
func Finite() uint32 {
	for {
		if b := pcg.Uint32(); b&0x7f800000 != 0x7f800000 {
			return b
		}
	}
}

// Binade returns the bits of a random positive normal float32 whose mantissa
// field leaves at least room ulps before the next power of two.
func Binade(room uint32) uint32 {
	return (1+pcg.Uint32n(253))<<23 | pcg.Uint32n(mantissaSize-room)
}

// Steps returns a random count in [0, MaxSteps).
func Steps() uint32 { return pcg.Uint32n(MaxSteps) }
