package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/api"
	"github.com/kgplan/kgplan/internal/config"
	"github.com/kgplan/kgplan/internal/fill"
	"github.com/kgplan/kgplan/internal/home"
	"github.com/kgplan/kgplan/internal/plan"
	"github.com/kgplan/kgplan/internal/store"
)

var (
	genDate     string
	genPlanFile string
	genTemplate string
	genOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan document without a running server",
	Long: `Generate a filled plan docx directly from the local store (or a plan
JSON file), the local template, and the locally stored semester range.

Examples:
  kgplan generate --date 2025-09-01
  kgplan generate --date 2025-09-01 --plan plan.json --out 教案.docx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		date, err := time.Parse(time.DateOnly, genDate)
		if err != nil {
			return fmt.Errorf("--date must be YYYY-MM-DD")
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

		dbPath := cfg.Database.Path
		if dbPath == "" {
			dbPath = h.DatabasePath()
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		// Plan data: file beats stored.
		var data plan.Data
		if genPlanFile != "" {
			raw, err := os.ReadFile(genPlanFile)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("invalid plan JSON: %w", err)
			}
		} else {
			data, err = st.LoadPlan(ctx, genDate)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no plan saved for %s", genDate)
			}
			if err != nil {
				return err
			}
		}

		if errs := plan.Validate(data); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e)
			}
			return fmt.Errorf("plan has %d validation errors", len(errs))
		}

		sem, err := st.LatestSemester(ctx)
		if errors.Is(err, store.ErrNotFound) {
			return errors.New("semester not configured (kgplan api semester set)")
		}
		if err != nil {
			return err
		}

		weekText := plan.BuildWeekText(plan.WeekNumber(sem.Start, date))
		dateText := plan.BuildDateText(date)

		templatePath := genTemplate
		if templatePath == "" {
			templatePath = cfg.Template.Path
		}
		if templatePath == "" {
			templatePath = h.TemplatePath("plan.docx")
		}

		outPath := genOut
		if outPath == "" {
			name := "教案_" + date.Format("20060102") + ".docx"
			if cfg.Output.Dir != "" {
				outPath = filepath.Join(cfg.Output.Dir, name)
			} else {
				outPath = h.OutputPath(name)
			}
		}

		saved, err := fill.GeneratePlanDocx(templatePath, data, weekText, dateText, outPath)
		if err != nil {
			return err
		}

		return api.Output(map[string]string{
			"date":      genDate,
			"week_text": weekText,
			"date_text": dateText,
			"output":    saved,
		})
	},
}

func init() {
	generateCmd.Flags().StringVar(&genDate, "date", "", "Plan date (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&genPlanFile, "plan", "", "Plan JSON file (defaults to the stored plan)")
	generateCmd.Flags().StringVar(&genTemplate, "template", "", "Template docx path")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output docx path")
	_ = generateCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(generateCmd)
}
