// Command warp-profile renders diagnostics for the cylindrical-to-spherical
// remap: a plot of vertical source displacement against azimuth for a family
// of elevations, and a sweep of the black-border fraction across coverage
// values. The sweep can additionally be rendered as an interactive ECharts
// HTML report.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fchemotti/canwarp/internal/projection"
	"github.com/fchemotti/canwarp/internal/rgb"
)

var (
	outDir     = flag.String("out-dir", "plots", "directory for generated plot files")
	coverage   = flag.Float64("coverage", projection.DefaultCoverage, "coverage used for the displacement plot")
	size       = flag.Int("size", 512, "side length of the synthetic frame used for the coverage sweep")
	sweepMin   = flag.Float64("sweep-min", 0.1, "lowest coverage in the sweep")
	sweepMax   = flag.Float64("sweep-max", 1.0, "highest coverage in the sweep")
	sweepSteps = flag.Int("sweep-steps", 10, "number of coverage values in the sweep")
	htmlReport = flag.String("html", "", "optional path for an ECharts HTML report of the coverage sweep")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("[warp-profile] create output dir: %v", err)
	}

	if err := displacementPlot(); err != nil {
		log.Fatalf("[warp-profile] displacement plot: %v", err)
	}

	coverages, fractions, err := coverageSweep()
	if err != nil {
		log.Fatalf("[warp-profile] coverage sweep: %v", err)
	}
	if err := sweepPlot(coverages, fractions); err != nil {
		log.Fatalf("[warp-profile] sweep plot: %v", err)
	}
	if *htmlReport != "" {
		if err := sweepHTML(coverages, fractions); err != nil {
			log.Fatalf("[warp-profile] sweep html: %v", err)
		}
		log.Printf("[warp-profile] wrote %s", *htmlReport)
	}
	log.Printf("[warp-profile] wrote plots to %s", *outDir)
}

// displacementPlot draws the vertical source displacement y(theta) produced
// by SphToCyl for a family of elevations, at the configured coverage.
func displacementPlot() error {
	d := float64(*size) / *coverage / math.Pi

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Vertical displacement (coverage=%.2f, width=%d)", *coverage, *size)
	p.X.Label.Text = "Theta (rad)"
	p.Y.Label.Text = "Y displacement (px)"

	phis := []float64{15, 30, 45, 60, 75}
	colors := palette(len(phis))

	// Stop short of the |theta| = pi/2 singularity.
	thetas := make([]float64, 181)
	floats.Span(thetas, -math.Pi/2+0.02, math.Pi/2-0.02)

	for i, phiDeg := range phis {
		phi := phiDeg * math.Pi / 180.0
		pts := make(plotter.XYs, 0, len(thetas))
		for _, theta := range thetas {
			_, y := projection.SphToCyl(theta, phi, d)
			pts = append(pts, plotter.XY{X: theta, Y: y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("phi=%.0f°", phiDeg), line)
	}

	p.Legend.Top = true
	file := filepath.Join(*outDir, "displacement.png")
	if err := p.Save(10*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save displacement plot: %w", err)
	}
	return nil
}

// coverageSweep remaps an all-white synthetic frame at each coverage in the
// configured span and reports the fraction of the output left black.
func coverageSweep() (coverages, fractions []float64, err error) {
	if *sweepSteps < 2 {
		return nil, nil, fmt.Errorf("need at least 2 sweep steps, got %d", *sweepSteps)
	}

	white := rgb.New(*size, *size)
	white.Fill(255, 255, 255)

	coverages = make([]float64, *sweepSteps)
	floats.Span(coverages, *sweepMin, *sweepMax)

	fractions = make([]float64, len(coverages))
	for i, c := range coverages {
		out, err := projection.Remap(white, c)
		if err != nil {
			return nil, nil, err
		}
		fractions[i] = blackFraction(out)
	}
	return coverages, fractions, nil
}

func blackFraction(img *rgb.Image) float64 {
	black := 0
	for i := 0; i < len(img.Pix); i += 3 {
		if img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0 {
			black++
		}
	}
	return float64(black) / float64(img.W*img.H)
}

func sweepPlot(coverages, fractions []float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Black-border fraction vs coverage (width=%d)", *size)
	p.X.Label.Text = "Coverage"
	p.Y.Label.Text = "Black fraction"

	pts := make(plotter.XYs, len(coverages))
	for i := range coverages {
		pts[i] = plotter.XY{X: coverages[i], Y: fractions[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line)

	file := filepath.Join(*outDir, "coverage_sweep.png")
	if err := p.Save(10*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save sweep plot: %w", err)
	}
	return nil
}

func sweepHTML(coverages, fractions []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "canwarp coverage sweep", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Black-border fraction vs coverage",
			Subtitle: fmt.Sprintf("width=%d steps=%d", *size, len(coverages)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "coverage"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "black fraction"}),
	)

	labels := make([]string, len(coverages))
	data := make([]opts.LineData, len(coverages))
	for i := range coverages {
		labels[i] = fmt.Sprintf("%.2f", coverages[i])
		data[i] = opts.LineData{Value: fractions[i]}
	}
	line.SetXAxis(labels).AddSeries("black fraction", data)

	f, err := os.Create(*htmlReport)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// palette generates n distinct line colors spaced around the hue circle.
func palette(n int) []color.Color {
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.4)
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64
	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
