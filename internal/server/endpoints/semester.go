package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/store"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// SemesterRequest sets the semester date range.
type SemesterRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SemesterResponse reports the stored semester range.
type SemesterResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SetSemesterEndpoint handles PUT /api/v1/semester.
type SetSemesterEndpoint struct{}

func (e *SetSemesterEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/v1/semester", e.handler
}

func (e *SetSemesterEndpoint) RequiresInit() bool { return true }

func (e *SetSemesterEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SemesterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request JSON: "+err.Error())
		return
	}

	start, err := time.Parse(time.DateOnly, req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(time.DateOnly, req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end date is before start date")
		return
	}

	st := svcctx.StoreFrom(r.Context())
	if err := st.SaveSemester(r.Context(), start, end); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SemesterResponse{Start: req.Start, End: req.End})
}

func (e *SetSemesterEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <start> <end>",
		Short: "Set the semester date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SemesterResponse
			req := SemesterRequest{Start: args[0], End: args[1]}
			if err := client.Put(cmd.Context(), "/api/v1/semester", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetSemesterEndpoint handles GET /api/v1/semester.
type GetSemesterEndpoint struct{}

func (e *GetSemesterEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/v1/semester", e.handler
}

func (e *GetSemesterEndpoint) RequiresInit() bool { return true }

func (e *GetSemesterEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	sem, err := st.LatestSemester(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "semester not configured")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SemesterResponse{
		Start: sem.Start.Format(time.DateOnly),
		End:   sem.End.Format(time.DateOnly),
	})
}

func (e *GetSemesterEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the semester date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SemesterResponse
			if err := client.Get(cmd.Context(), "/api/v1/semester", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
