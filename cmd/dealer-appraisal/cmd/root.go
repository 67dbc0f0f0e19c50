// Package cmd implements the CLI commands for the dealer-appraisal server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dealer-appraisal",
	Short: "Trade-in appraisal service for dealership groups",
	Long: "An API service that values trade-in vehicles against the group's live\n" +
		"inventory, applies condition and history adjustments, and returns a\n" +
		"buy, wholesale or reject decision with a trade-in offer.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand(), openapiCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
