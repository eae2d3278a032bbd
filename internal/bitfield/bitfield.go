// Package bitfield reads and writes named sub-fields of a uint32.
package bitfield

// Field is Width bits of a uint32 starting at bit Shift.
type Field struct {
	Shift uint
	Width uint
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint32 { return 1<<f.Width - 1 }

// Mask returns the bits of the field in place.
func (f Field) Mask() uint32 { return f.Max() << f.Shift }

// Get extracts the field from v.
func (f Field) Get(v uint32) uint32 { return (v >> f.Shift) & f.Max() }

// Set returns v with the field replaced by x. Bits of x above the width are
// dropped.
func (f Field) Set(v, x uint32) uint32 { return v&^f.Mask() | (x&f.Max())<<f.Shift }

// Layout is a set of fields that tile a uint32 from the top bit down.
type Layout []Field

// Split breaks v into its fields, most significant first.
func (l Layout) Split(v uint32) []uint32 {
	out := make([]uint32, len(l))
	for i, f := range l {
		out[i] = f.Get(v)
	}
	return out
}

// Join is the inverse of Split. Missing trailing values are zero.
func (l Layout) Join(xs ...uint32) (v uint32) {
	for i, f := range l {
		if i >= len(xs) {
			break
		}
		v = f.Set(v, xs[i])
	}
	return v
}
