// Command canwarp corrects the geometric distortion of images captured with
// a cylindrical pinhole camera: the input is a projection onto the inner
// surface of a cylinder from an opening in its side, the output uses
// spherical projection from the cylinder center instead.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/fchemotti/canwarp/internal/imageio"
	"github.com/fchemotti/canwarp/internal/projection"
)

var (
	inFile   = flag.String("in", "", "input image path (cylindrical projection)")
	outFile  = flag.String("out", "", "output image path (spherical projection)")
	coverage = flag.Float64("coverage", projection.DefaultCoverage, "fraction of the cylinder circumference covered by the input, in (0,1]; out-of-range values fall back to the default")
	workers  = flag.Int("workers", runtime.NumCPU(), "number of parallel remap workers")
	quiet    = flag.Bool("quiet", false, "suppress progress logging")
)

func logf(format string, args ...any) {
	if !*quiet {
		log.Printf(format, args...)
	}
}

func main() {
	flag.Parse()
	if *inFile == "" || *outFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	img, err := imageio.Load(*inFile)
	if err != nil {
		log.Fatalf("[canwarp] %v", err)
	}
	logf("[canwarp] loaded %s (%dx%d)", *inFile, img.W, img.H)

	out, err := projection.RemapParallel(img, *coverage, *workers)
	if err != nil {
		log.Fatalf("[canwarp] remap: %v", err)
	}
	logf("[canwarp] remapped to %dx%d (coverage=%.3g workers=%d)", out.W, out.H, *coverage, *workers)

	if err := imageio.Save(*outFile, out); err != nil {
		log.Fatalf("[canwarp] %v", err)
	}
	logf("[canwarp] wrote %s", *outFile)
}
