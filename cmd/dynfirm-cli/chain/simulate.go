package chain

import (
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/firmlab/dynfirm/logger"
	"github.com/firmlab/dynfirm/markov"
	"github.com/firmlab/dynfirm/utils"
)

// SimulateCommand data structure for the chain simulation app.
var SimulateCommand = cli.Command{
	Action: simulateAction,
	Name:   "simulate",
	Usage:  "draws a Monte Carlo sample path from a discretized AR(1) process",
	Flags: []cli.Flag{
		&utils.RhoFlag,
		&utils.MuFlag,
		&utils.SigmaEpsFlag,
		&utils.NumStatesFlag,
		&utils.MethodFlag,
		&utils.SpanFlag,
		&utils.BaseSigmaWeightFlag,
		&utils.StepsFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The simulate command discretizes the AR(1) process, draws a sample
path from the resulting Markov chain and compares the sample moments
of the path against the moments of the continuous process.`,
}

// simulationResult is the output of the simulate command in JSON format.
type simulationResult struct {
	Path            []int   `json:"path"`
	SampleMean      float64 `json:"sampleMean"`
	SampleStdDev    float64 `json:"sampleStdDev"`
	ProcessMean     float64 `json:"processMean"`
	StationarySigma float64 `json:"stationarySigma"`
}

// simulateAction implements the simulate command.
func simulateAction(ctx *cli.Context) error {
	cfg := utils.NewConfig(ctx)
	log := logger.NewLogger(cfg.LogLevel, "Simulate")

	mCfg, err := cfg.MarkovConfig()
	if err != nil {
		return err
	}
	p := cfg.AR1Params()
	chain, err := markov.Approximate(p, mCfg)
	if err != nil {
		return err
	}
	for _, w := range chain.Warnings {
		log.Warningf("numerical warning: %v", w)
	}

	log.Noticef("simulate %d steps with seed %d", cfg.Steps, cfg.RandomSeed)
	path, err := markov.Simulate(chain, cfg.Steps, cfg.RandomSeed)
	if err != nil {
		return err
	}

	values := make([]float64, len(path))
	for i, s := range path {
		values[i] = chain.States[s]
	}
	res := simulationResult{
		Path:            path,
		SampleMean:      stat.Mean(values, nil),
		SampleStdDev:    stat.StdDev(values, nil),
		ProcessMean:     p.Mu,
		StationarySigma: p.StationarySigma(),
	}
	log.Infof("sample mean %.6f (process mean %.6f)", res.SampleMean, res.ProcessMean)
	log.Infof("sample std-dev %.6f (stationary std-dev %.6f)", res.SampleStdDev, res.StationarySigma)

	if cfg.Output != "" {
		log.Noticef("write simulation file %v", cfg.Output)
		return writeJSON(cfg.Output, res)
	}
	return nil
}
