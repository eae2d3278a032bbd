package bitfield

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

var binary32 = Layout{
	{Shift: 31, Width: 1},
	{Shift: 23, Width: 8},
	{Shift: 0, Width: 23},
}

func TestField(t *testing.T) {
	t.Run("Max", func(t *testing.T) {
		assert.Equal(t, Field{Shift: 0, Width: 23}.Max(), uint32(0x7fffff))
		assert.Equal(t, Field{Shift: 23, Width: 8}.Max(), uint32(0xff))
		assert.Equal(t, Field{Shift: 0, Width: 32}.Max(), uint32(0xffffffff))
	})

	t.Run("Mask", func(t *testing.T) {
		assert.Equal(t, Field{Shift: 31, Width: 1}.Mask(), uint32(0x80000000))
		assert.Equal(t, Field{Shift: 23, Width: 8}.Mask(), uint32(0x7f800000))
		assert.Equal(t, Field{Shift: 0, Width: 23}.Mask(), uint32(0x007fffff))
	})

	t.Run("Get", func(t *testing.T) {
		one := uint32(0x3f800000)
		assert.Equal(t, binary32[0].Get(one), uint32(0))
		assert.Equal(t, binary32[1].Get(one), uint32(127))
		assert.Equal(t, binary32[2].Get(one), uint32(0))
	})

	t.Run("Set", func(t *testing.T) {
		assert.Equal(t, binary32[1].Set(0, 127), uint32(0x3f800000))
		assert.Equal(t, binary32[2].Set(0x3f800000, 1), uint32(0x3f800001))
		assert.Equal(t, binary32[0].Set(0x3f800000, 1), uint32(0xbf800000))

		// overwide values are truncated to the field
		assert.Equal(t, binary32[1].Set(0, 0x1ff), uint32(0x7f800000))
	})

	t.Run("SetLeavesOthers", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v, x := pcg.Uint32(), pcg.Uint32()
			for _, f := range binary32 {
				got := f.Set(v, x)
				assert.Equal(t, got&^f.Mask(), v&^f.Mask())
				assert.Equal(t, f.Get(got), x&f.Max())
			}
		}
	})
}

func TestLayout(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := pcg.Uint32()
		assert.Equal(t, binary32.Join(binary32.Split(v)...), v)
	}

	assert.DeepEqual(t, binary32.Split(0xc0490fdb), []uint32{1, 128, 0x490fdb})
	assert.Equal(t, binary32.Join(0, 127), uint32(0x3f800000))
}
