package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/riskforge/gbmsim/pkg/simulation"
)

func TestHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	hist := Histogram(values, 5)
	require.Len(t, hist, 5)

	total := 0
	for _, bin := range hist {
		total += bin.Count
	}
	assert.Equal(t, len(values), total)

	// equal-width bins over [0, 9], two values each
	for _, bin := range hist {
		assert.Equal(t, 2, bin.Count)
	}
	assert.Equal(t, 0.0, hist[0].Low)
	assert.InDelta(t, 9.0, hist[4].High, 1e-12)
}

func TestHistogramDegenerate(t *testing.T) {
	assert.Nil(t, Histogram(nil, 10))

	hist := Histogram([]float64{5, 5, 5}, 10)
	require.Len(t, hist, 1)
	assert.Equal(t, 3, hist[0].Count)
}

func TestHistogramMaxGoesToLastBin(t *testing.T) {
	hist := Histogram([]float64{0, 10}, 4)
	require.Len(t, hist, 4)
	assert.Equal(t, 1, hist[0].Count)
	assert.Equal(t, 1, hist[3].Count)
}

func TestNewPathsCanvasLimit(t *testing.T) {
	matrix := simulation.PricePathMatrix{
		{100, 101, 102},
		{100, 99, 98},
		{100, 100, 100},
	}
	canvas := NewPathsCanvas("paths", matrix, 2)
	assert.Len(t, canvas.Series, 2)

	canvas = NewPathsCanvas("paths", matrix, 0)
	assert.Len(t, canvas.Series, 3)
}

func TestCanvasRenderPNG(t *testing.T) {
	matrix := simulation.PricePathMatrix{
		{100, 101, 102, 103},
		{100, 98, 97, 99},
	}
	canvas := NewPathsCanvas("paths", matrix, 0)

	var buf bytes.Buffer
	require.NoError(t, canvas.Render(chart.PNG, &buf))
	assert.NotZero(t, buf.Len())
}

func TestHistogramCanvasRenderPNG(t *testing.T) {
	values := []float64{90, 95, 99, 100, 101, 103, 105, 110, 112, 120}
	canvas := NewHistogramCanvas("final prices", values, 5, 92.0)

	var buf bytes.Buffer
	require.NoError(t, canvas.Render(chart.PNG, &buf))
	assert.NotZero(t, buf.Len())
}
