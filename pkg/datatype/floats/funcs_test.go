package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	out := Percentile([]float64{10.0, 11.0, 12.0, 13.0, 15.0}, 50.0)
	assert.Equal(t, 12.0, out)

	out = Percentile([]float64{1.0, 3.0}, 50.0)
	assert.Equal(t, 2.0, out)

	out = Percentile([]float64{0.0, 1.0}, 25.0)
	assert.Equal(t, 0.25, out)

	out = Percentile([]float64{0.0, 1.0, 10}, 25.0)
	assert.Equal(t, 0.5, out)
}

func TestPercentileLinearInterpolation(t *testing.T) {
	seq := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	// rank = 0.05 * 9 = 0.45 between the 0th and 1st order statistics
	assert.InDelta(t, 1.45, Percentile(seq, 5.0), 1e-12)

	assert.Equal(t, 1.0, Percentile(seq, 0.0))
	assert.Equal(t, 10.0, Percentile(seq, 100.0))
}

func TestPercentileUnsortedInput(t *testing.T) {
	seq := []float64{9, 1, 5, 3, 7}
	assert.Equal(t, 5.0, Percentile(seq, 50.0))
	// input order is preserved
	assert.Equal(t, []float64{9, 1, 5, 3, 7}, seq)
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 12.2, Average([]float64{10.0, 11.0, 12.0, 13.0, 15.0}))
}

func TestMinMax(t *testing.T) {
	arr := []float64{12.0, 10.0, 15.0, 11.0}
	assert.Equal(t, 10.0, Min(arr))
	assert.Equal(t, 15.0, Max(arr))
}
