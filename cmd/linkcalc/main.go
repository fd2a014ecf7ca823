package main

import (
	"fmt"
	"os"

	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	debug bool

	thresholds = aggregate.DefaultThresholds()

	version string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "linkcalc",
		Short:   "Display link timing and bandwidth calculator",
		Version: version,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "dump computed structures")
	rootCmd.PersistentFlags().Float64Var(&thresholds.LowMarginPct, "low-margin", aggregate.DefaultLowMarginPct, "margin percentage below which a fit is flagged")

	rootCmd.AddCommand(timingCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(modesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// dump prints v with kr/pretty when --debug is set.
func dump(v interface{}) {
	if debug {
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(v))
	}
}
