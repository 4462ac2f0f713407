package main

import (
	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "kgplan",
	Short: "Kindergarten lesson-plan authoring and docx generation",
	Long: `kgplan fills weekly kindergarten lesson-plan documents from structured
plan data.

It provides:
  - A label-driven docx filler that writes plan content into table cells
  - Plan validation against the fixed field vocabulary
  - A local store for plans and the semester calendar
  - An HTTP API serving the browser form
  - AI-assisted splitting of activity drafts into plan subfields`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.kgplan/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "kgplan home directory (default: ~/.kgplan)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
