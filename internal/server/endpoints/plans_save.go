package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/plan"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// SavePlanResponse reports a stored plan date.
type SavePlanResponse struct {
	Date  string `json:"date"`
	Saved bool   `json:"saved"`
}

// SavePlanEndpoint handles PUT /api/v1/plans/{date}.
type SavePlanEndpoint struct{}

func (e *SavePlanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/v1/plans/{date}", e.handler
}

func (e *SavePlanEndpoint) RequiresInit() bool { return true }

func (e *SavePlanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body: "+err.Error())
		return
	}

	// Drafts are allowed: the schema check rejects unknown fields and wrong
	// shapes, not incompleteness.
	data, err := plan.DecodeJSON(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := svcctx.StoreFrom(r.Context())
	if err := st.SavePlan(r.Context(), date, data); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SavePlanResponse{Date: date, Saved: true})
}

func (e *SavePlanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "save <date> <plan.json>",
		Short: "Save a plan for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			var body json.RawMessage = raw
			client := api.NewClient(getServerURL())
			var resp SavePlanResponse
			if err := client.Put(cmd.Context(), "/api/v1/plans/"+args[0], body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
