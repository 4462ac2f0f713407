package endpoints

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/store"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// PlanInfoResponse carries bookkeeping metadata for a stored plan.
type PlanInfoResponse struct {
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PlanInfoEndpoint handles GET /api/v1/plans/{date}/info.
type PlanInfoEndpoint struct{}

func (e *PlanInfoEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/v1/plans/{date}/info", e.handler
}

func (e *PlanInfoEndpoint) RequiresInit() bool { return true }

func (e *PlanInfoEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")

	st := svcctx.StoreFrom(r.Context())
	info, err := st.PlanInfo(r.Context(), date)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no plan saved for "+date)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, PlanInfoResponse{
		Date:      date,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	})
}

func (e *PlanInfoEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "info <date>",
		Short: "Show created/updated timestamps for a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PlanInfoResponse
			if err := client.Get(cmd.Context(), "/api/v1/plans/"+args[0]+"/info", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
