package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"github.com/riskforge/gbmsim/pkg/datatype/floats"
)

const DefaultHistogramBins = 50

// HistogramBin covers [Low, High); the last bin is closed on both sides.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

func (b HistogramBin) Center() float64 {
	return (b.Low + b.High) / 2.0
}

// Histogram bins values into bins equal-width buckets spanning [min, max].
func Histogram(values []float64, bins int) []HistogramBin {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	if len(values) == 0 {
		return nil
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return []HistogramBin{{Low: lo, High: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = out[i].Low + width
	}
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// NewHistogramCanvas plots the terminal-price distribution with a dashed
// vertical line at cutoff, the 5th-percentile worst case.
func NewHistogramCanvas(title string, values []float64, bins int, cutoff float64) *Canvas {
	canvas := NewCanvas(title)
	canvas.XAxis.ValueFormatter = chart.FloatValueFormatter

	hist := Histogram(values, bins)
	x := make([]float64, len(hist))
	y := make([]float64, len(hist))
	maxCount := 0.0
	for i, bin := range hist {
		x[i] = bin.Center()
		y[i] = float64(bin.Count)
		if y[i] > maxCount {
			maxCount = y[i]
		}
	}
	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    "final prices",
		XValues: x,
		YValues: y,
	})
	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name: "95% VaR cutoff",
		Style: chart.Style{
			StrokeColor:     chart.ColorRed,
			StrokeDashArray: []float64{5.0, 5.0},
		},
		XValues: []float64{cutoff, cutoff},
		YValues: []float64{0, maxCount},
	})
	canvas.Elements = []chart.Renderable{
		chart.LegendLeft(&canvas.Chart),
	}
	return canvas
}
