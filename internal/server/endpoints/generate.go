package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/fill"
	"github.com/kgplan/kgplan/internal/plan"
	"github.com/kgplan/kgplan/internal/store"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// GenerateRequest asks the server to produce a filled plan document.
type GenerateRequest struct {
	// Date selects the plan day (YYYY-MM-DD).
	Date string `json:"date"`
	// Plan optionally supplies plan data inline; when absent the stored
	// plan for Date is used.
	Plan json.RawMessage `json:"plan,omitempty"`
	// Template optionally overrides the configured template path.
	Template string `json:"template,omitempty"`
}

// GenerateResponse reports the generated document.
type GenerateResponse struct {
	Date     string `json:"date"`
	WeekText string `json:"week_text"`
	DateText string `json:"date_text"`
	Output   string `json:"output"`
}

// GenerateEndpoint handles POST /api/v1/generate.
type GenerateEndpoint struct{}

func (e *GenerateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/generate", e.handler
}

func (e *GenerateEndpoint) RequiresInit() bool { return true }

func (e *GenerateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request JSON: "+err.Error())
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	ctx := r.Context()
	st := svcctx.StoreFrom(ctx)

	// Plan data: inline beats stored.
	var data plan.Data
	if len(req.Plan) > 0 {
		data, err = plan.DecodeJSON(req.Plan)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		data, err = st.LoadPlan(ctx, req.Date)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no plan saved for "+req.Date)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if errs := plan.Validate(data); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Errors: errs})
		return
	}

	sem, err := st.LatestSemester(ctx)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusConflict, "semester not configured")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	weekText := plan.BuildWeekText(plan.WeekNumber(sem.Start, date))
	dateText := plan.BuildDateText(date)

	templatePath := req.Template
	if templatePath == "" {
		templatePath = templateFromContext(ctx)
	}
	if templatePath == "" {
		writeError(w, http.StatusConflict, "template not configured")
		return
	}

	outputPath := outputPathFor(ctx, date)

	saved, err := fill.GeneratePlanDocx(templatePath, data, weekText, dateText, outputPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Date:     req.Date,
		WeekText: weekText,
		DateText: dateText,
		Output:   saved,
	})
}

func (e *GenerateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var planFile, template string

	cmd := &cobra.Command{
		Use:   "generate <date>",
		Short: "Generate a plan document for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := GenerateRequest{Date: args[0], Template: template}
			if planFile != "" {
				raw, err := os.ReadFile(planFile)
				if err != nil {
					return err
				}
				req.Plan = json.RawMessage(raw)
			}

			client := api.NewClient(getServerURL())
			var resp GenerateResponse
			if err := client.Post(cmd.Context(), "/api/v1/generate", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}

	cmd.Flags().StringVar(&planFile, "plan", "", "Plan JSON file (defaults to the stored plan)")
	cmd.Flags().StringVar(&template, "template", "", "Template path on the server")
	return cmd
}

// templateFromContext resolves the docx template path from config, falling
// back to the default location in the home directory.
func templateFromContext(ctx context.Context) string {
	if cm := svcctx.ConfigManagerFrom(ctx); cm != nil {
		if p := cm.Get().Template.Path; p != "" {
			return p
		}
	}
	if h := svcctx.HomeFrom(ctx); h != nil {
		p := h.TemplatePath("plan.docx")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// outputPathFor builds the destination path for a generated document.
func outputPathFor(ctx context.Context, date time.Time) string {
	name := "教案_" + date.Format("20060102") + ".docx"
	if cm := svcctx.ConfigManagerFrom(ctx); cm != nil {
		if dir := cm.Get().Output.Dir; dir != "" {
			return filepath.Join(dir, name)
		}
	}
	if h := svcctx.HomeFrom(ctx); h != nil {
		return h.OutputPath(name)
	}
	return name
}
