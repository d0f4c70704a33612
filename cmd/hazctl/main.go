// Command hazctl is a thin demonstration front-end for calc.ComputeHazard:
// it is not a production CLI product, only a way to exercise the pipeline
// end-to-end from the command line (grounded on jhkimqd-chaos-utils's
// cmd/chaos-runner cobra root-command layout).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "hazctl",
	Short:   "Probabilistic seismic hazard calculation demo CLI",
	Long:    `hazctl runs the calc package's hazard calculation pipeline against a small built-in demonstration model and writes per-site exceedance curves in the spec's CSV result format.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "CalcConfig YAML overlay (default: built-in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(gridCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
