package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/plan"
)

// ValidateResponse is the batched validation result for a plan.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidatePlanEndpoint handles POST /api/v1/plans/validate.
type ValidatePlanEndpoint struct{}

func (e *ValidatePlanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/plans/validate", e.handler
}

func (e *ValidatePlanEndpoint) RequiresInit() bool { return false }

func (e *ValidatePlanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body: "+err.Error())
		return
	}

	data, err := plan.DecodeJSON(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	errs := plan.Validate(data)
	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

func (e *ValidatePlanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plan.json>",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var body json.RawMessage = raw
			client := api.NewClient(getServerURL())
			var resp ValidateResponse
			if err := client.Post(cmd.Context(), "/api/v1/plans/validate", body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
