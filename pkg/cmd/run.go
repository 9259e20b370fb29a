package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riskforge/gbmsim/pkg/render"
	"github.com/riskforge/gbmsim/pkg/risk"
	"github.com/riskforge/gbmsim/pkg/simulation"
)

// go run ./cmd/gbmsim run --initial-price=100 --expected-return=0.1 --volatility=0.2 --horizon=1
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "simulate price paths and print the risk report",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := loadParameters(cmd)
		if err != nil {
			return err
		}

		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		log.Debugf("using random seed %d", seed)

		sim := simulation.NewPathSimulator(params, simulation.NewSeededSampler(seed))

		bar := pb.Full.Start(params.NumSimulations)
		sim.ProgressFn = func(done, total int) {
			bar.SetCurrent(int64(done))
		}
		matrix, err := sim.Run()
		bar.Finish()
		if err != nil {
			return err
		}

		report, err := risk.Summarize(params.InitialPrice, matrix.TerminalPrices())
		if err != nil {
			return err
		}

		color.Green("MONTE CARLO RISK REPORT (%d paths, %d steps, %.2fy horizon)",
			params.NumSimulations, params.NumSteps, params.HorizonYears)
		report.WriteTable(os.Stdout)
		if report.ValueAtRisk95 > 0 {
			color.Red("95%% VaR: -%.2f", report.ValueAtRisk95)
		} else {
			color.Green("95%% VaR: +%.2f", -report.ValueAtRisk95)
		}

		return writeCharts(cmd, matrix, report)
	},
}

func init() {
	registerRunFlags(runCmd)
	RootCmd.AddCommand(runCmd)
}

func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "scenario config file (yaml)")

	cmd.Flags().Float64("initial-price", 100.0, "current stock price")
	cmd.Flags().Float64("expected-return", 0.10, "annualized expected return, decimal fraction")
	cmd.Flags().Float64("volatility", 0.20, "annualized volatility, decimal fraction")
	cmd.Flags().Float64("horizon", 1.0, "simulation horizon in years")
	cmd.Flags().Int("steps", 0, "trading periods over the horizon, 0 = 252 per year")
	cmd.Flags().Int("simulations", 1000, "number of simulated paths")
	cmd.Flags().Int64("seed", 0, "random seed, omit for a time-based seed")

	cmd.Flags().String("paths-png", "", "write the path plot to this file")
	cmd.Flags().String("hist-png", "", "write the terminal-price histogram to this file")
	cmd.Flags().Int("plot-paths", 50, "number of paths to draw in the path plot")
	cmd.Flags().Int("bins", render.DefaultHistogramBins, "histogram bin count")
}

// loadParameters merges the optional scenario file with the command line;
// an explicitly set flag wins over the file.
func loadParameters(cmd *cobra.Command) (simulation.SimulationParameters, error) {
	var params simulation.SimulationParameters

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return params, err
	}
	if configFile != "" {
		content, err := os.ReadFile(configFile)
		if err != nil {
			return params, errors.Wrapf(err, "cannot read scenario config %s", configFile)
		}
		if err := yaml.Unmarshal(content, &params); err != nil {
			return params, errors.Wrapf(err, "cannot parse scenario config %s", configFile)
		}
	}

	flagFloats := map[string]*float64{
		"initial-price":   &params.InitialPrice,
		"expected-return": &params.ExpectedReturn,
		"volatility":      &params.Volatility,
		"horizon":         &params.HorizonYears,
	}
	for name, dst := range flagFloats {
		if configFile == "" || cmd.Flags().Changed(name) {
			if *dst, err = cmd.Flags().GetFloat64(name); err != nil {
				return params, err
			}
		}
	}
	flagInts := map[string]*int{
		"steps":       &params.NumSteps,
		"simulations": &params.NumSimulations,
	}
	for name, dst := range flagInts {
		if configFile == "" || cmd.Flags().Changed(name) {
			if *dst, err = cmd.Flags().GetInt(name); err != nil {
				return params, err
			}
		}
	}

	params.Defaults()
	return params, nil
}

func writeCharts(cmd *cobra.Command, matrix simulation.PricePathMatrix, report *risk.RiskReport) error {
	pathsPNG, err := cmd.Flags().GetString("paths-png")
	if err != nil {
		return err
	}
	if pathsPNG != "" {
		limit, err := cmd.Flags().GetInt("plot-paths")
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Simulated Price Paths (first %d)", limit)
		if err := render.NewPathsCanvas(title, matrix, limit).SavePNG(pathsPNG); err != nil {
			return err
		}
		log.Infof("saved path plot to %s", pathsPNG)
	}

	histPNG, err := cmd.Flags().GetString("hist-png")
	if err != nil {
		return err
	}
	if histPNG != "" {
		bins, err := cmd.Flags().GetInt("bins")
		if err != nil {
			return err
		}
		canvas := render.NewHistogramCanvas("Distribution of Final Prices",
			matrix.TerminalPrices(), bins, report.WorstCase5thPercentile)
		if err := canvas.SavePNG(histPNG); err != nil {
			return err
		}
		log.Infof("saved histogram to %s", histPNG)
	}
	return nil
}
