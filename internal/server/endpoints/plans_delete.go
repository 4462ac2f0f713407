package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// DeletePlanEndpoint handles DELETE /api/v1/plans/{date}.
type DeletePlanEndpoint struct{}

func (e *DeletePlanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/v1/plans/{date}", e.handler
}

func (e *DeletePlanEndpoint) RequiresInit() bool { return true }

func (e *DeletePlanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")

	st := svcctx.StoreFrom(r.Context())
	deleted, err := st.DeletePlan(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "no plan saved for "+date)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"date": date, "deleted": true})
}

func (e *DeletePlanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/v1/plans/"+args[0]); err != nil {
				return err
			}
			return api.Output(map[string]any{"date": args[0], "deleted": true})
		},
	}
}
