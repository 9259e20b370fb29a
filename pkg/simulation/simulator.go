package simulation

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNumericOverflow reports a non-finite price produced by extreme inputs.
// Overflow is reported, never clamped.
var ErrNumericOverflow = errors.New("simulation produced a non-finite price")

// PricePathMatrix holds simulated trajectories, one row per simulation.
// Row i has NumSteps()+1 entries; column 0 is the initial price. The matrix
// is written once by the simulator and read-only afterward.
type PricePathMatrix [][]float64

func (m PricePathMatrix) NumPaths() int {
	return len(m)
}

func (m PricePathMatrix) NumSteps() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0]) - 1
}

// TerminalPrices returns the last column, the simulated price at the end of
// the horizon for every trajectory.
func (m PricePathMatrix) TerminalPrices() []float64 {
	finals := make([]float64, len(m))
	for i, path := range m {
		finals[i] = path[len(path)-1]
	}
	return finals
}

// PathSimulator generates independent discretized GBM trajectories using the
// log-Euler scheme, which keeps every price strictly positive for finite
// inputs:
//
//	S[t] = S[t-1] * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*Z)
//
// ProgressFn, when set, is called after each completed trajectory.
type PathSimulator struct {
	Params  SimulationParameters
	Sampler NormalSampler

	ProgressFn func(done, total int)
}

func NewPathSimulator(params SimulationParameters, sampler NormalSampler) *PathSimulator {
	return &PathSimulator{Params: params, Sampler: sampler}
}

func (s *PathSimulator) Run() (PricePathMatrix, error) {
	if err := s.Params.Validate(); err != nil {
		return nil, err
	}

	var (
		p  = s.Params
		dt = p.Dt()

		drift = (p.ExpectedReturn - 0.5*p.Volatility*p.Volatility) * dt
		shock = p.Volatility * math.Sqrt(dt)
	)

	log.Debugf("simulating %d paths of %d steps, dt=%v", p.NumSimulations, p.NumSteps, dt)

	matrix := make(PricePathMatrix, p.NumSimulations)
	for i := range matrix {
		path := make([]float64, p.NumSteps+1)
		path[0] = p.InitialPrice
		for t := 1; t <= p.NumSteps; t++ {
			z := s.Sampler.NormFloat64()
			path[t] = path[t-1] * math.Exp(drift+shock*z)
			if math.IsInf(path[t], 0) || math.IsNaN(path[t]) {
				return nil, errors.Wrapf(ErrNumericOverflow, "path %d step %d", i, t)
			}
		}
		matrix[i] = path
		if s.ProgressFn != nil {
			s.ProgressFn(i+1, p.NumSimulations)
		}
	}
	return matrix, nil
}
