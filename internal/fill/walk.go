package fill

import "github.com/kgplan/kgplan/internal/docx"

// CellRef identifies one content cell touched by a walking pass.
type CellRef struct {
	Table int
	Row   int
	Col   int
}

// Columns fixes which cell of a row holds the label and which holds content.
type Columns struct {
	Label   int
	Content int
}

// DefaultColumns matches the standard template layout: labels in the first
// column, content in the second.
var DefaultColumns = Columns{Label: 0, Content: 1}

// nextParent folds the parent-section context across a row scan: a row whose
// label is the parent part of some composite key becomes the context for all
// following rows; any other row leaves the context unchanged.
func nextParent(current, rowLabel string, m *LabelMap) string {
	if m.HasParent(rowLabel) {
		return rowLabel
	}
	return current
}

// walkReplaceTable is the replace-style pass: each row whose normalized
// label-column text resolves against the map (with the tracked parent
// context) gets its content cell replaced outright. Section-header rows
// update the context and are still resolved defensively, in case a scalar
// value happens to share the header's name. Rows too short to have both
// columns are skipped.
//
// Cells listed in skip were already written by another pass; instead of
// silently overwriting them the row is reported as a conflict.
func walkReplaceTable(tbl *docx.Table, tableIdx int, m *LabelMap, cols Columns, skip map[CellRef]struct{}) (touched, conflicts []CellRef) {
	parent := ""
	for rowIdx, row := range tbl.Rows() {
		labelCell := row.Cell(cols.Label)
		contentCell := row.Cell(cols.Content)
		if labelCell == nil || contentCell == nil {
			continue
		}

		label := NormalizeLabel(labelCell.Text())
		parent = nextParent(parent, label, m)

		value, ok := Resolve(m, label, parent)
		if !ok {
			continue
		}

		ref := CellRef{Table: tableIdx, Row: rowIdx, Col: cols.Content}
		if _, taken := skip[ref]; taken {
			conflicts = append(conflicts, ref)
			continue
		}
		SetCellContent(contentCell, label, value, true)
		touched = append(touched, ref)
	}
	return touched, conflicts
}

// walkAppendTable is the append-style pass: each row's content cell is
// scanned for lines that embed field labels as free text, and matching
// entries are appended after their label lines without destroying what the
// cell already holds. Rows with no matching line are left untouched. The
// parent context is tracked from the label column exactly as in the replace
// pass so embedded labels resolve to the right section.
func walkAppendTable(tbl *docx.Table, tableIdx int, m *LabelMap, cols Columns) []CellRef {
	var touched []CellRef
	parent := ""
	for rowIdx, row := range tbl.Rows() {
		contentCell := row.Cell(cols.Content)
		if contentCell == nil {
			continue
		}
		if labelCell := row.Cell(cols.Label); labelCell != nil {
			parent = nextParent(parent, NormalizeLabel(labelCell.Text()), m)
		}
		if AppendByLabels(contentCell, m, parent, false) {
			touched = append(touched, CellRef{Table: tableIdx, Row: rowIdx, Col: cols.Content})
		}
	}
	return touched
}
