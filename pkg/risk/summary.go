package risk

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/riskforge/gbmsim/pkg/datatype/floats"
)

// ErrNoTerminalPrices is returned when there is nothing to summarize. A
// report is never silently zero-filled.
var ErrNoTerminalPrices = errors.New("empty terminal price sequence")

// WorstCasePercentile is the percentile used for the downside floor; the VaR
// confidence level is its complement (95%).
const WorstCasePercentile = 5.0

// RiskReport is derived purely from the terminal column of a price path
// matrix. ValueAtRisk95 is an absolute currency loss relative to the initial
// price, not a percentage.
type RiskReport struct {
	InitialPrice           float64 `json:"initialPrice"`
	ExpectedFinalPrice     float64 `json:"expectedFinalPrice"`
	WorstCase5thPercentile float64 `json:"worstCase5thPercentile"`
	ValueAtRisk95          float64 `json:"valueAtRisk95"`
	MinFinalPrice          float64 `json:"minFinalPrice"`
	MaxFinalPrice          float64 `json:"maxFinalPrice"`
}

// Summarize reduces a terminal-price sequence to a RiskReport. The worst case
// uses linear interpolation between order statistics (see floats.Percentile),
// so the result is fully determined by the input sequence.
func Summarize(initialPrice float64, terminalPrices []float64) (*RiskReport, error) {
	if len(terminalPrices) == 0 {
		return nil, ErrNoTerminalPrices
	}

	worstCase := floats.Percentile(terminalPrices, WorstCasePercentile)
	return &RiskReport{
		InitialPrice:           initialPrice,
		ExpectedFinalPrice:     stat.Mean(terminalPrices, nil),
		WorstCase5thPercentile: worstCase,
		ValueAtRisk95:          initialPrice - worstCase,
		MinFinalPrice:          floats.Min(terminalPrices),
		MaxFinalPrice:          floats.Max(terminalPrices),
	}, nil
}
