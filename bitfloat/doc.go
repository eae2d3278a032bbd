// Package bitfloat steps a float32 one representable value at a time.
//
// A BitFloat wraps a float32 and moves by editing its binary32 layout
// directly (1 sign bit, 8 exponent bits, 23 mantissa bits) instead of
// adding a small delta, so no step is ever skipped or repeated.
//
// Increment and Decrement are defined for every finite value:
//
//   - positive values grow or shrink in magnitude; a full mantissa carries
//     into the exponent and an empty one borrows from it
//   - negative values move the other way, so Increment always returns the
//     next larger float
//   - both zeros behave as +0: Increment gives the smallest positive
//     subnormal and Decrement the smallest negative one; stepping onto zero
//     from either side gives +0
//   - stepping past ±MaxFloat32, or stepping from ±Inf, fails with Overflow
//   - stepping from NaN fails with InvalidArgument
//
// Equality and ordering use the float value, not the bit pattern.
//
// The package is compiled out by the noulp build tag.
package bitfloat
