// Package downsample reduces gridded data by integer factors per axis using
// local averaging, emulating detector cells of finite width from finer
// point samples.
package downsample

import "fmt"

// Box averages non-overlapping fr×fc blocks of a row-major rows×cols array,
// returning the reduced data and its dimensions. Both dimensions must divide
// evenly by their factor.
func Box(data []float64, rows, cols, fr, fc int) ([]float64, int, int, error) {
	if fr < 1 || fc < 1 {
		return nil, 0, 0, fmt.Errorf("box factors must be positive, got (%d, %d)", fr, fc)
	}
	if len(data) != rows*cols {
		return nil, 0, 0, fmt.Errorf("data length %d does not match %dx%d grid", len(data), rows, cols)
	}
	if rows%fr != 0 || cols%fc != 0 {
		return nil, 0, 0, fmt.Errorf("shape %dx%d not divisible by factors (%d, %d)", rows, cols, fr, fc)
	}

	outRows := rows / fr
	outCols := cols / fc
	out := make([]float64, outRows*outCols)
	norm := float64(fr * fc)

	for r := 0; r < outRows; r++ {
		for c := 0; c < outCols; c++ {
			sum := 0.0
			for i := 0; i < fr; i++ {
				row := (r*fr + i) * cols
				for j := 0; j < fc; j++ {
					sum += data[row+c*fc+j]
				}
			}
			out[r*outCols+c] = sum / norm
		}
	}

	return out, outRows, outCols, nil
}
