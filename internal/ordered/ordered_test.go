package ordered

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestKey(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for i := 0; i < 10000; i++ {
			b := pcg.Uint32()
			assert.Equal(t, Bits(Key(b)), b)
		}
	})

	t.Run("Order", func(t *testing.T) {
		for i := 0; i < 10000; i++ {
			a, b := pcg.Uint32(), pcg.Uint32()
			fa, fb := math.Float32frombits(a), math.Float32frombits(b)
			if fa != fa || fb != fb || fa == fb {
				continue
			}
			assert.Equal(t, fa < fb, Key(a) < Key(b))
		}
	})

	t.Run("Zeros", func(t *testing.T) {
		assert.Equal(t, Key(0x80000000), uint32(0x7fffffff))
		assert.Equal(t, Key(0x00000000), uint32(0x80000000))
		assert.Equal(t, Key(0x7f800000)-Key(0x7f7fffff), uint32(1))
	})
}
