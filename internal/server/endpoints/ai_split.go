package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/svcctx"
)

// SplitRequest carries a collective-activity draft to break into subfields.
type SplitRequest struct {
	Draft string `json:"draft"`
	// SystemPrompt overrides the configured prompt for this request only.
	SystemPrompt string `json:"system_prompt,omitempty"`
}

// SplitResponse returns the extracted subfields.
type SplitResponse struct {
	Fields map[string]string `json:"fields"`
	Model  string            `json:"model"`
}

// SplitEndpoint handles POST /api/v1/ai/split.
type SplitEndpoint struct{}

func (e *SplitEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/ai/split", e.handler
}

func (e *SplitEndpoint) RequiresInit() bool { return true }

func (e *SplitEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Draft) == "" {
		writeError(w, http.StatusBadRequest, "draft text is empty")
		return
	}

	splitter := svcctx.SplitterFrom(r.Context())
	if splitter == nil {
		writeError(w, http.StatusServiceUnavailable, "AI splitter not configured")
		return
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		if cm := svcctx.ConfigManagerFrom(r.Context()); cm != nil {
			systemPrompt = cm.Get().AI.SystemPrompt
		}
	}

	fields, err := splitter.Split(r.Context(), req.Draft, systemPrompt)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SplitResponse{Fields: fields, Model: splitter.Model()})
}

func (e *SplitEndpoint) Command(getServerURL func() string) *cobra.Command {
	var systemPrompt string

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split an activity draft into plan subfields",
		Long:  "Reads a collective-activity draft from a file (or stdin) and splits it into the six plan subfields using the configured AI model.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var draft []byte
			var err error
			if len(args) == 1 {
				draft, err = os.ReadFile(args[0])
			} else {
				draft, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var resp SplitResponse
			req := SplitRequest{Draft: string(draft), SystemPrompt: systemPrompt}
			if err := client.Post(cmd.Context(), "/api/v1/ai/split", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}

	cmd.Flags().StringVar(&systemPrompt, "system-prompt", "", "Override the system prompt for this request")
	return cmd
}
