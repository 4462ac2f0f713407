package main

import (
	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/plan"
)

var schemaExportPath string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Plan form schema commands",
}

var schemaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the form schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.Output(plan.Schema())
	},
}

var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the form schema JSON to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return plan.ExportSchema(schemaExportPath)
	},
}

func init() {
	schemaExportCmd.Flags().StringVar(&schemaExportPath, "file", "schema.json", "Destination file")

	schemaCmd.AddCommand(schemaShowCmd)
	schemaCmd.AddCommand(schemaExportCmd)
	rootCmd.AddCommand(schemaCmd)
}
