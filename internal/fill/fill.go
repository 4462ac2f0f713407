package fill

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kgplan/kgplan/internal/docx"
	"github.com/kgplan/kgplan/internal/plan"
)

// Options configures a fill pass over a document.
type Options struct {
	Columns Columns
	// HeaderTableIndex is the table whose first two rows are the computed
	// week/date header cells.
	HeaderTableIndex int
}

// DefaultOptions matches the standard teacher-plan template.
func DefaultOptions() Options {
	return Options{Columns: DefaultColumns, HeaderTableIndex: 0}
}

// Result reports which cells each pass wrote. Conflicts are cells the
// replace pass resolved after the append pass had already written them; the
// appended content is kept and the replacement is not applied.
type Result struct {
	Appended  []CellRef
	Replaced  []CellRef
	Conflicts []CellRef
}

// FillTeacherPlan fills a loaded template with one day's plan content. Plans
// are expected to be validated beforehand: a missing field simply leaves its
// cell blank here.
//
// Per table, the append-style pass runs first (cells whose lines embed field
// labels), then — for the header table — the week and date cells are written
// directly, then the replace-style pass fills rows by their label column.
// Scalar values stored under the reserved 周次/日期 field names override the
// supplied weekText/dateText.
func FillTeacherPlan(doc *docx.Document, data plan.Data, weekText, dateText string) *Result {
	return FillDocument(doc, data, weekText, dateText, DefaultOptions())
}

// FillDocument is FillTeacherPlan with explicit layout options.
func FillDocument(doc *docx.Document, data plan.Data, weekText, dateText string, opts Options) *Result {
	m := Flatten(data)

	if override := data.ScalarText(plan.FieldWeek); override != "" {
		weekText = override
	}
	if override := data.ScalarText(plan.FieldDate); override != "" {
		dateText = override
	}

	res := &Result{}
	for tableIdx, tbl := range doc.Tables() {
		appended := walkAppendTable(tbl, tableIdx, m, opts.Columns)
		res.Appended = append(res.Appended, appended...)

		if tableIdx == opts.HeaderTableIndex {
			if cell := tbl.Cell(0, opts.Columns.Content); cell != nil && weekText != "" {
				SetCellContent(cell, plan.FieldWeek, weekText, false)
			}
			if cell := tbl.Cell(1, opts.Columns.Content); cell != nil && dateText != "" {
				SetCellContent(cell, plan.FieldDate, dateText, false)
			}
		}

		skip := make(map[CellRef]struct{}, len(appended))
		for _, ref := range appended {
			skip[ref] = struct{}{}
		}
		replaced, conflicts := walkReplaceTable(tbl, tableIdx, m, opts.Columns, skip)
		res.Replaced = append(res.Replaced, replaced...)
		res.Conflicts = append(res.Conflicts, conflicts...)
	}
	return res
}

// GeneratePlanDocx loads the template, fills it, and saves the result to
// outputPath, creating parent directories as needed. The template file is
// never written to. Returns the output path on success.
func GeneratePlanDocx(templatePath string, data plan.Data, weekText, dateText, outputPath string) (string, error) {
	absTemplate, err := filepath.Abs(templatePath)
	if err != nil {
		return "", fmt.Errorf("resolve template path: %w", err)
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if absTemplate == absOutput {
		return "", fmt.Errorf("output path %s would overwrite the template", outputPath)
	}

	doc, err := docx.Open(templatePath)
	if err != nil {
		return "", err
	}

	FillTeacherPlan(doc, data, weekText, dateText)

	if err := os.MkdirAll(filepath.Dir(absOutput), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := doc.Save(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}
