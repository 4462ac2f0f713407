package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/ai"
	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/config"
	"github.com/kgplan/kgplan/internal/home"
)

var splitSystemPrompt string

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split an activity draft into plan subfields",
	Long: `Split a collective-activity draft into the six plan subfields using
the configured AI model, without a running server. The draft is read from a
file argument or stdin.

Examples:
  kgplan split draft.txt
  cat draft.txt | kgplan split`,
	Args: cobra.MaximumNArgs(1),
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

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		cfgPath := cfgFile
		if cfgPath == "" && h.ConfigExists() {
			cfgPath = h.ConfigPath()
		}
		mgr, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		apiKey := config.ResolveEnvVars(cfg.AI.APIKey)
		if apiKey == "" {
			return errors.New("AI API key not configured (set OPENAI_API_KEY or ai.api_key)")
		}

		splitter, err := ai.NewSplitter(ai.Config{
			APIKey:  apiKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
		})
		if err != nil {
			return err
		}

		systemPrompt := splitSystemPrompt
		if systemPrompt == "" {
			systemPrompt = cfg.AI.SystemPrompt
		}

		fields, err := splitter.Split(cmd.Context(), string(draft), systemPrompt)
		if err != nil {
			return err
		}

		return api.Output(fields)
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitSystemPrompt, "system-prompt", "", "Override the system prompt")

	rootCmd.AddCommand(splitCmd)
}
