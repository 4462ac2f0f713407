package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// PlanListResponse lists saved plan dates.
type PlanListResponse struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

// ListPlansEndpoint handles GET /api/v1/plans.
type ListPlansEndpoint struct{}

func (e *ListPlansEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/v1/plans", e.handler
}

func (e *ListPlansEndpoint) RequiresInit() bool { return true }

func (e *ListPlansEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	dates, err := st.ListPlanDates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if dates == nil {
		dates = []string{}
	}

	writeJSON(w, http.StatusOK, PlanListResponse{Dates: dates, Count: len(dates)})
}

func (e *ListPlansEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plan dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PlanListResponse
			if err := client.Get(cmd.Context(), "/api/v1/plans", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
