package renderer

import (
	"fmt"
	"math"
	"math/rand"
)

// SubPixel is a sample position inside a pixel, both coordinates in (0,1)
type SubPixel struct {
	DX, DY float64
}

// pixelCenter is the single sample used when jittering is off
var pixelCenter = []SubPixel{{DX: 0.5, DY: 0.5}}

// MultiJitterMask selects n cells of an n x n fine grid, one per cell of the
// sqrt(n) x sqrt(n) coarse grid, such that no two selected cells share a
// fine row or a fine column. It returns the (column, row) index of each cell.
func MultiJitterMask(fineGrid int, random *rand.Rand) ([][2]int, error) {
	coarse := int(math.Round(math.Sqrt(float64(fineGrid))))
	if fineGrid <= 0 || coarse*coarse != fineGrid {
		return nil, fmt.Errorf("fine grid size %d is not a positive perfect square", fineGrid)
	}

	// cols[i][j] is the fine column used by coarse cell (i, j); within coarse
	// column i every coarse row gets a different fine column, and likewise for rows
	cols := make([][]int, coarse)
	rows := make([][]int, coarse)
	for i := 0; i < coarse; i++ {
		cols[i] = random.Perm(coarse)
		rows[i] = random.Perm(coarse)
	}

	cells := make([][2]int, 0, fineGrid)
	for i := 0; i < coarse; i++ {
		for j := 0; j < coarse; j++ {
			k := i*coarse + cols[i][j]
			l := j*coarse + rows[j][i]
			cells = append(cells, [2]int{k, l})
		}
	}
	return cells, nil
}

// jitteredSamples converts a fine-grid mask into sub-pixel offsets at fine cell centers
func jitteredSamples(fineGrid int, random *rand.Rand) ([]SubPixel, error) {
	if fineGrid <= 0 {
		return pixelCenter, nil
	}

	cells, err := MultiJitterMask(fineGrid, random)
	if err != nil {
		return nil, err
	}

	n := float64(fineGrid)
	samples := make([]SubPixel, len(cells))
	for i, c := range cells {
		samples[i] = SubPixel{
			DX: (float64(c[0]) + 0.5) / n,
			DY: (float64(c[1]) + 0.5) / n,
		}
	}
	return samples, nil
}
