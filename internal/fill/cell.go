package fill

import "github.com/kgplan/kgplan/internal/docx"

// Fixed run formatting for every inserted paragraph: 仿宋 at 12pt (小四),
// applied to both the default and East-Asian font faces, with a 24pt
// first-line indent on content paragraphs.
const (
	FontName             = "仿宋"
	fontSizeHalfPoint    = 24
	firstLineIndentTwips = 480
)

var runStyle = docx.RunStyle{Font: FontName, SizeHalfPoint: fontSizeHalfPoint}

var (
	plainPara    = docx.ParagraphOpts{Style: runStyle}
	indentedPara = docx.ParagraphOpts{Style: runStyle, FirstLineIndentTwips: firstLineIndentTwips}
)

// SetCellContent replaces the cell's paragraphs with text, one paragraph per
// segmented line (mode chosen by label). Header cells (week/date) are
// written without the first-line indent; everything else gets it.
func SetCellContent(cell *docx.Cell, label, text string, indent bool) {
	opts := plainPara
	if indent {
		opts = indentedPara
	}

	cell.Clear()
	wrote := false
	for _, line := range Segment(text, ModeForLabel(label)) {
		if line == "" {
			continue
		}
		cell.AddParagraph(line, opts)
		wrote = true
	}
	if !wrote {
		// A table cell must end with at least one paragraph.
		cell.AddParagraph("", plainPara)
	}
}

// AppendByLabels rewrites a cell whose existing lines embed field labels as
// free text. Every pre-existing line is preserved verbatim (restyled to the
// fixed run style); each line whose normalized text resolves to a pending
// entry gets that entry's segmented content appended immediately after it as
// indented paragraphs. A line of the form "label：existing text" matches on
// its label part. Each map entry is consumed at most once per cell.
//
// When appendUnmatched is set, entries with no matching line are appended at
// the end of the cell as a "label：" heading followed by content paragraphs.
//
// Reports whether any content was written; a cell with no matching lines is
// left untouched when appendUnmatched is false.
func AppendByLabels(cell *docx.Cell, m *LabelMap, parent string, appendUnmatched bool) bool {
	lines := cell.Lines()
	if len(lines) == 0 {
		lines = []string{""}
	}

	consumed := make(map[string]bool)
	matches := make([]string, len(lines)) // matched map key per line, "" for none
	for i, line := range lines {
		key, _, ok := resolveLineLabel(m, line, parent)
		if ok && !consumed[key] {
			consumed[key] = true
			matches[i] = key
		}
	}

	if len(consumed) == 0 && !appendUnmatched {
		return false
	}

	cell.Clear()
	for i, line := range lines {
		cell.AddParagraph(line, plainPara)
		key := matches[i]
		if key == "" {
			continue
		}
		value, _ := m.Get(key)
		appendContent(cell, key, value)
	}

	wrote := len(consumed) > 0
	if appendUnmatched {
		for _, key := range m.Keys() {
			if consumed[key] {
				continue
			}
			value, _ := m.Get(key)
			cell.AddParagraph(key+"：", plainPara)
			appendContent(cell, key, value)
			wrote = true
		}
	}
	return wrote
}

// resolveLineLabel resolves an existing cell line against the map: first the
// whole normalized line, then, for "label：content" lines, the part before
// the first colon.
func resolveLineLabel(m *LabelMap, line, parent string) (key, value string, ok bool) {
	norm := NormalizeLabel(line)
	if key, value, ok = ResolveEntry(m, norm, parent); ok {
		return key, value, true
	}
	if i := indexColon(line); i >= 0 {
		norm = NormalizeLabel(line[:i])
		return ResolveEntry(m, norm, parent)
	}
	return "", "", false
}

func indexColon(s string) int {
	for i, r := range s {
		if r == '：' || r == ':' {
			return i
		}
	}
	return -1
}

func appendContent(cell *docx.Cell, label, value string) {
	for _, part := range Segment(value, ModeForLabel(label)) {
		if part == "" {
			continue
		}
		cell.AddParagraph(part, indentedPara)
	}
}
