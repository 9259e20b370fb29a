package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() SimulationParameters {
	return SimulationParameters{
		InitialPrice:   100.0,
		ExpectedReturn: 0.10,
		Volatility:     0.20,
		HorizonYears:   1.0,
		NumSteps:       252,
		NumSimulations: 1000,
	}
}

func TestSimulationParameters_Validate(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(p *SimulationParameters)
		wantErr bool
	}{
		{name: "valid", modify: func(p *SimulationParameters) {}},
		{name: "zero volatility is allowed", modify: func(p *SimulationParameters) { p.Volatility = 0 }},
		{name: "zero price", modify: func(p *SimulationParameters) { p.InitialPrice = 0 }, wantErr: true},
		{name: "negative price", modify: func(p *SimulationParameters) { p.InitialPrice = -10 }, wantErr: true},
		{name: "negative volatility", modify: func(p *SimulationParameters) { p.Volatility = -0.2 }, wantErr: true},
		{name: "zero horizon", modify: func(p *SimulationParameters) { p.HorizonYears = 0 }, wantErr: true},
		{name: "negative horizon", modify: func(p *SimulationParameters) { p.HorizonYears = -1 }, wantErr: true},
		{name: "zero steps", modify: func(p *SimulationParameters) { p.NumSteps = 0 }, wantErr: true},
		{name: "zero simulations", modify: func(p *SimulationParameters) { p.NumSimulations = 0 }, wantErr: true},
		{name: "too many draws", modify: func(p *SimulationParameters) {
			p.NumSteps = 100_000
			p.NumSimulations = 100_000
		}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.modify(&p)
			err := p.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSimulationParameters_Defaults(t *testing.T) {
	p := SimulationParameters{InitialPrice: 100, HorizonYears: 2}
	p.Defaults()
	assert.Equal(t, 504, p.NumSteps)

	// an explicit step count is left alone
	p = SimulationParameters{InitialPrice: 100, HorizonYears: 2, NumSteps: 10}
	p.Defaults()
	assert.Equal(t, 10, p.NumSteps)
}

func TestSimulationParameters_Dt(t *testing.T) {
	p := validParams()
	assert.InDelta(t, 1.0/252.0, p.Dt(), 1e-15)
}
