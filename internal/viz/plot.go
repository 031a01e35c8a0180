package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/lmarques/relmet/internal/sweep"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotTau renders the dilation factor of a sweep as an ASCII chart.
func PlotTau(samples []sweep.Sample, caption string) string {
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = s.Tau
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotApparent renders the apparent-velocity magnification of a sweep.
func PlotApparent(samples []sweep.Sample, caption string) string {
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = s.Apparent
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
