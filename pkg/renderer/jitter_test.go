package renderer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiJitterMask(t *testing.T) {
	for _, n := range []int{1, 4, 16, 64} {
		random := rand.New(rand.NewSource(int64(n)))
		cells, err := MultiJitterMask(n, random)
		require.NoError(t, err)
		require.Len(t, cells, n)

		coarse := map[int]int{1: 1, 4: 2, 16: 4, 64: 8}[n]
		cols := map[int]bool{}
		rows := map[int]bool{}
		coarseCells := map[[2]int]bool{}
		for _, c := range cells {
			assert.False(t, cols[c[0]], "column %d reused", c[0])
			assert.False(t, rows[c[1]], "row %d reused", c[1])
			cols[c[0]] = true
			rows[c[1]] = true
			coarseCells[[2]int{c[0] / coarse, c[1] / coarse}] = true
		}
		assert.Len(t, coarseCells, n, "one sample per coarse cell")
	}
}

func TestMultiJitterMask_RejectsNonSquare(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	for _, n := range []int{0, -4, 2, 8, 15} {
		_, err := MultiJitterMask(n, random)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestJitteredSamples(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	center, err := jitteredSamples(0, random)
	require.NoError(t, err)
	assert.Equal(t, []SubPixel{{0.5, 0.5}}, center)

	samples, err := jitteredSamples(16, random)
	require.NoError(t, err)
	require.Len(t, samples, 16)
	for _, s := range samples {
		assert.True(t, s.DX > 0 && s.DX < 1)
		assert.True(t, s.DY > 0 && s.DY < 1)
		// Offsets sit on fine cell centers (k+0.5)/16
		assert.InDelta(t, 0.5, s.DX*16-float64(int(s.DX*16)), 1e-9)
	}
}
