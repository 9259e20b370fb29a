package render

import (
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/riskforge/gbmsim/pkg/simulation"
)

// Canvas wraps a go-chart Chart so the plotting helpers can hang methods on
// it.
type Canvas struct {
	chart.Chart
}

func NewCanvas(title string) *Canvas {
	return &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: chart.IntValueFormatter,
			},
		},
	}
}

// PlotPath adds one price trajectory as a line over the step axis.
func (canvas *Canvas) PlotPath(prices []float64) {
	x := make([]float64, len(prices))
	for i := range prices {
		x[i] = float64(i)
	}
	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		XValues: x,
		YValues: prices,
	})
}

// NewPathsCanvas plots up to limit trajectories from the matrix. Plotting
// every path of a large run produces an unreadable smear, so callers usually
// cap it around 50.
func NewPathsCanvas(title string, matrix simulation.PricePathMatrix, limit int) *Canvas {
	canvas := NewCanvas(title)
	n := matrix.NumPaths()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		canvas.PlotPath(matrix[i])
	}
	return canvas
}

// SavePNG renders the canvas to a PNG file at path.
func (canvas *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %s", path)
	}
	defer f.Close()

	if err := canvas.Render(chart.PNG, f); err != nil {
		return errors.Wrapf(err, "cannot render chart to %s", path)
	}
	return nil
}
