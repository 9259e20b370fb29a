package simulation

import (
	"github.com/pkg/errors"
)

// ErrInvalidParameter is wrapped by every parameter validation failure, so
// callers can match the whole class with errors.Is.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

const (
	// StepsPerYear is the usual trading-day convention used to derive a step
	// count from a horizon given in years.
	StepsPerYear = 252

	// MaxTotalDraws caps NumSimulations * NumSteps. A request above the cap is
	// rejected upfront instead of being truncated.
	MaxTotalDraws = 100_000_000
)

// SimulationParameters describes one GBM scenario. ExpectedReturn and
// Volatility are annualized decimal fractions (0.10 = 10%). The zero value is
// not usable; construct it fully and call Validate before running.
type SimulationParameters struct {
	InitialPrice   float64 `yaml:"initialPrice" json:"initialPrice"`
	ExpectedReturn float64 `yaml:"expectedReturn" json:"expectedReturn"`
	Volatility     float64 `yaml:"volatility" json:"volatility"`
	HorizonYears   float64 `yaml:"horizonYears" json:"horizonYears"`
	NumSteps       int     `yaml:"numSteps" json:"numSteps"`
	NumSimulations int     `yaml:"numSimulations" json:"numSimulations"`
}

// Defaults fills unset fields the way the interactive tool does: a one-year
// horizon runs on daily steps, 252 per year.
func (p *SimulationParameters) Defaults() {
	if p.NumSteps == 0 && p.HorizonYears > 0 {
		p.NumSteps = int(p.HorizonYears * StepsPerYear)
	}
}

func (p SimulationParameters) Validate() error {
	if p.InitialPrice <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "initial price must be positive, got %v", p.InitialPrice)
	}
	if p.Volatility < 0 {
		return errors.Wrapf(ErrInvalidParameter, "volatility must be non-negative, got %v", p.Volatility)
	}
	if p.HorizonYears <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "horizon must be positive, got %v years", p.HorizonYears)
	}
	if p.NumSteps <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "step count must be positive, got %d", p.NumSteps)
	}
	if p.NumSimulations <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "simulation count must be positive, got %d", p.NumSimulations)
	}
	if draws := int64(p.NumSteps) * int64(p.NumSimulations); draws > MaxTotalDraws {
		return errors.Wrapf(ErrInvalidParameter, "%d simulations x %d steps needs %d draws, cap is %d",
			p.NumSimulations, p.NumSteps, draws, int64(MaxTotalDraws))
	}
	return nil
}

// Dt returns the per-step time increment in years.
func (p SimulationParameters) Dt() float64 {
	return p.HorizonYears / float64(p.NumSteps)
}
