// Package ordered maps float32 bit patterns onto uint32 keys whose unsigned
// order is the float order.
package ordered

// Key flips the sign bit of non-negative patterns and every bit of negative
// ones, so that -Inf < ... < -0 < +0 < ... < +Inf as unsigned integers.
func Key(bits uint32) uint32 {
	return bits ^ (uint32(int32(bits)>>31) | 1<<31)
}

// Bits is the inverse of Key.
func Bits(key uint32) uint32 {
	return key ^ (^uint32(int32(key)>>31) | 1<<31)
}
