package main

import (
	"github.com/spf13/cobra"

	"upsell/config"
)

var (
	snapshotFile string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "upsellctl",
	Short: "Inspect upsell selections offline",
	Long: `upsellctl runs the compatibility, conflict, duplicate and pricing engines
against a JSON selection snapshot and prints the result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&snapshotFile, "file", "f", "", "path to a JSON selection snapshot")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of a report")

	rootCmd.AddCommand(analyzeCmd, priceCmd, checkCmd, seedCmd)
}
