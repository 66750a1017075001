package projection

import (
	"fmt"
	"math"
	"sync"

	"github.com/fchemotti/canwarp/internal/rgb"
)

// Remap reprojects a cylindrical capture onto a spherical grid. The output
// is square with side equal to the input width; both output axes span
// (-pi/2, pi/2) in radians from the fovea, mapped linearly across the grid.
//
// Every output pixel is a nearest-neighbor copy of exactly one input pixel,
// or black when the computed source coordinate falls outside the input.
// This is a deliberate simplicity/quality tradeoff: no interpolation or
// antialiasing is performed.
//
// coverage is the fraction of the cylinder circumference the input spans.
// Values outside (0, 1] fall back to DefaultCoverage rather than erroring.
// A nil input or one with non-positive dimensions returns an error.
func Remap(in *rgb.Image, coverage float64) (*rgb.Image, error) {
	return remap(in, coverage, 1)
}

// RemapParallel is Remap with output rows partitioned across workers
// goroutines. Output cells are written exactly once each, so no locking is
// involved; the result is identical to Remap for any workers value.
func RemapParallel(in *rgb.Image, coverage float64, workers int) (*rgb.Image, error) {
	return remap(in, coverage, workers)
}

func remap(in *rgb.Image, coverage float64, workers int) (*rgb.Image, error) {
	if in == nil {
		return nil, fmt.Errorf("remap: nil input image")
	}
	if in.W <= 0 || in.H <= 0 {
		return nil, fmt.Errorf("remap: malformed input dimensions %dx%d", in.W, in.H)
	}
	if coverage <= 0 || coverage > 1 {
		coverage = DefaultCoverage
	}

	w, h := in.W, in.H
	// Integer division truncates the center coordinates.
	xCenter := w / 2
	yCenter := h / 2
	d := float64(w) / coverage / math.Pi

	// The source x and cos(theta) depend only on the output column, and
	// d*tan(phi) only on the output row, so each axis is evaluated once
	// instead of once per cell. The per-cell product keeps the evaluation
	// order (d*tan(phi))*cos(theta) so truncation boundaries stay put.
	srcX := make([]int, w)
	inX := make([]bool, w)
	cosT := make([]float64, w)
	for t := 0; t < w; t++ {
		theta := float64(t)/float64(w)*math.Pi - math.Pi/2
		srcX[t] = int(d*theta + float64(xCenter))
		inX[t] = srcX[t] >= 0 && srcX[t] < w
		cosT[t] = math.Cos(theta)
	}
	dTan := make([]float64, w)
	for p := 0; p < w; p++ {
		phi := float64(p)/float64(w)*math.Pi - math.Pi/2
		dTan[p] = d * math.Tan(phi)
	}

	out := rgb.New(w, w)
	fill := func(pLo, pHi int) {
		for p := pLo; p < pHi; p++ {
			for t := 0; t < w; t++ {
				if !inX[t] {
					continue
				}
				// Float-to-int truncates toward zero. Non-finite y from the
				// tan blow-up near |phi| = pi/2 converts to an out-of-range
				// value and the cell stays black.
				sy := int(dTan[p]*cosT[t] + float64(yCenter))
				if sy >= 0 && sy < h {
					r, g, b := in.At(srcX[t], sy)
					out.Set(t, p, r, g, b)
				}
			}
		}
	}

	if workers > w {
		workers = w
	}
	if workers <= 1 {
		fill(0, w)
		return out, nil
	}

	rows := (w + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < w; lo += rows {
		hi := lo + rows
		if hi > w {
			hi = w
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fill(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return out, nil
}
