package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/plan"
)

// SchemaEndpoint handles GET /api/v1/schema.
type SchemaEndpoint struct{}

func (e *SchemaEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/v1/schema", e.handler
}

func (e *SchemaEndpoint) RequiresInit() bool { return false }

func (e *SchemaEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plan.Schema())
}

func (e *SchemaEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Get the plan form schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var schema plan.FormSchema
			if err := client.Get(cmd.Context(), "/api/v1/schema", &schema); err != nil {
				return err
			}
			return api.Output(schema)
		},
	}
}
