package endpoints

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/plan"
	"github.com/kgplan/kgplan/internal/store"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// GetPlanEndpoint handles GET /api/v1/plans/{date}.
type GetPlanEndpoint struct{}

func (e *GetPlanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/v1/plans/{date}", e.handler
}

func (e *GetPlanEndpoint) RequiresInit() bool { return true }

func (e *GetPlanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")

	st := svcctx.StoreFrom(r.Context())
	data, err := st.LoadPlan(r.Context(), date)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no plan saved for "+date)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, data)
}

func (e *GetPlanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <date>",
		Short: "Get a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var data plan.Data
			if err := client.Get(cmd.Context(), "/api/v1/plans/"+args[0], &data); err != nil {
				return err
			}
			return api.Output(data)
		},
	}
}
