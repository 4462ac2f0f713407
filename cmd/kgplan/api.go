package main

import (
	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running kgplan server via HTTP.

These commands require a running server (kgplan serve).
Use --server to specify a custom server URL.

Examples:
  kgplan api health                  # Check server health
  kgplan api plans list              # List saved plan dates
  kgplan api plans get 2025-09-01    # Get a saved plan`,
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Plan storage commands",
}

var semesterCmd = &cobra.Command{
	Use:   "semester",
	Short: "Semester calendar commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8321", "Server URL",
	)

	// Health and schema at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SchemaEndpoint{}).Command(getServerURL))

	// Plans as subcommand group
	for _, ep := range endpoints.PlanCommands() {
		plansCmd.AddCommand(ep.Command(getServerURL))
	}

	// Semester as subcommand group
	for _, ep := range endpoints.SemesterCommands() {
		semesterCmd.AddCommand(ep.Command(getServerURL))
	}

	// Generation and AI split at top level of api
	apiCmd.AddCommand((&endpoints.GenerateEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SplitEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(plansCmd)
	apiCmd.AddCommand(semesterCmd)
	rootCmd.AddCommand(apiCmd)
}
