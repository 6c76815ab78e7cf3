package main

import (
	"fmt"
	"os"

	"github.com/firmlab/dynfirm/cmd/dynfirm-cli/chain"
	"github.com/firmlab/dynfirm/cmd/dynfirm-cli/firm"
	"github.com/urfave/cli/v2"
)

// initApp initializes the dynfirm-cli app. This function is called by
// the main function and unit tests.
func initApp() *cli.App {
	return &cli.App{
		Name:     "Dynamic Firm-Investment Toolbox",
		HelpName: "dynfirm",
		Usage:    "discretizes AR(1) processes and solves firm-investment problems",
		Flags:    []cli.Flag{},
		Commands: []*cli.Command{
			&chain.ApproximateCommand,
			&chain.SimulateCommand,
			&chain.StationaryCommand,
			&firm.SolveCommand,
		},
	}
}

// main implements the "dynfirm" cli application.
func main() {
	app := initApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
