package chain

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/firmlab/dynfirm/logger"
	"github.com/firmlab/dynfirm/markov"
	"github.com/firmlab/dynfirm/markov/stationary"
	"github.com/firmlab/dynfirm/utils"
)

// StationaryCommand data structure for the stationary distribution app.
var StationaryCommand = cli.Command{
	Action: stationaryAction,
	Name:   "stationary",
	Usage:  "computes the stationary distribution of a discretized AR(1) process",
	Flags: []cli.Flag{
		&utils.RhoFlag,
		&utils.MuFlag,
		&utils.SigmaEpsFlag,
		&utils.NumStatesFlag,
		&utils.MethodFlag,
		&utils.SpanFlag,
		&utils.BaseSigmaWeightFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The stationary command discretizes the AR(1) process, computes the
stationary distribution of the resulting chain by eigen-decomposition
and compares its moments against the continuous process.`,
}

// stationaryResult is the output of the stationary command in JSON format.
type stationaryResult struct {
	States          []float64 `json:"states"`
	Distribution    []float64 `json:"distribution"`
	Mean            float64   `json:"mean"`
	StdDev          float64   `json:"stdDev"`
	ProcessMean     float64   `json:"processMean"`
	StationarySigma float64   `json:"stationarySigma"`
}

// stationaryAction implements the stationary command.
func stationaryAction(ctx *cli.Context) error {
	cfg := utils.NewConfig(ctx)
	log := logger.NewLogger(cfg.LogLevel, "Stationary")

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

	dist, err := stationary.ComputeDistribution(chain.Transition)
	if err != nil {
		return err
	}
	mean, variance, err := stationary.Moments(chain.States, dist)
	if err != nil {
		return err
	}
	res := stationaryResult{
		States:          chain.States,
		Distribution:    dist,
		Mean:            mean,
		StdDev:          math.Sqrt(variance),
		ProcessMean:     p.Mu,
		StationarySigma: p.StationarySigma(),
	}
	log.Infof("stationary mean %.6f (process mean %.6f)", res.Mean, res.ProcessMean)
	log.Infof("stationary std-dev %.6f (process %.6f)", res.StdDev, res.StationarySigma)

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"State", "Value", "Probability"})
	for i, s := range chain.States {
		tbl.Append([]string{strconv.Itoa(i), fmt.Sprintf("%.6f", s), fmt.Sprintf("%.6f", dist[i])})
	}
	tbl.Render()

	if cfg.Output != "" {
		log.Noticef("write stationary file %v", cfg.Output)
		return writeJSON(cfg.Output, res)
	}
	return nil
}
