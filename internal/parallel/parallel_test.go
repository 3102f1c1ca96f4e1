package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEach(t *testing.T) {
	t.Run("sequential path covers every index once", func(t *testing.T) {
		hits := make([]int, 100)
		ForEach(len(hits), func(i int) { hits[i]++ })
		for i, h := range hits {
			assert.Equal(t, 1, h, "index %d", i)
		}
	})

	t.Run("parallel path covers every index once", func(t *testing.T) {
		hits := make([]int, MinSize*3)
		ForEach(len(hits), func(i int) { hits[i]++ })
		for i, h := range hits {
			assert.Equal(t, 1, h, "index %d", i)
		}
	})

	t.Run("zero length is a no-op", func(t *testing.T) {
		called := false
		ForEach(0, func(int) { called = true })
		assert.False(t, called)
	})

	t.Run("slot writes match a sequential loop", func(t *testing.T) {
		n := MinSize * 2
		want := make([]float64, n)
		for i := range want {
			want[i] = float64(i) * 1.5
		}

		got := make([]float64, n)
		ForEach(n, func(i int) { got[i] = float64(i) * 1.5 })
		assert.Equal(t, want, got)
	})
}
