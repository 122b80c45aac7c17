package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "migrate-moved",
		Short: "generate moved blocks for migrating legacy per-region baseline state to the unified baseline module",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	verbose bool
	cfgFile string
)

func init() {
	rootCmd.AddCommand(generate())

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print lots of output to stderr")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./migrate-moved.yaml)")
}

// Execute primary function for cobra
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
