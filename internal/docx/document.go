package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// WordprocessingML main namespace.
const NS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// RunStyle is the character formatting applied to inserted runs. The font
// name is set for both the default and the East-Asian face so CJK text does
// not fall back to the theme font.
type RunStyle struct {
	Font          string
	SizeHalfPoint int
}

// ParagraphOpts controls a paragraph built by AddParagraph.
type ParagraphOpts struct {
	Style RunStyle
	// FirstLineIndentTwips indents the first line (twentieths of a point).
	// Zero means no indent element is written.
	FirstLineIndentTwips int
}

// Table is a view over a w:tbl element.
type Table struct{ node *Node }

// Row is a view over a w:tr element.
type Row struct{ node *Node }

// Cell is a view over a w:tc element.
type Cell struct{ node *Node }

// Tables returns the top-level tables of the document body, in order.
// Tables nested inside cells are not included.
func (d *Document) Tables() []*Table {
	body := d.root.Elem(NS, "body")
	if body == nil {
		return nil
	}
	var out []*Table
	for _, n := range body.Elems(NS, "tbl") {
		out = append(out, &Table{node: n})
	}
	return out
}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*Row {
	var out []*Row
	for _, n := range t.node.Elems(NS, "tr") {
		out = append(out, &Row{node: n})
	}
	return out
}

// Cell returns the cell at (row, col), or nil if either index is out of
// range. Template tables vary in width, so callers treat nil as "skip".
func (t *Table) Cell(row, col int) *Cell {
	rows := t.Rows()
	if row < 0 || row >= len(rows) {
		return nil
	}
	return rows[row].Cell(col)
}

// Cells returns the row's cells in order.
func (r *Row) Cells() []*Cell {
	var out []*Cell
	for _, n := range r.node.Elems(NS, "tc") {
		out = append(out, &Cell{node: n})
	}
	return out
}

// Cell returns the cell at index col, or nil if the row is too short.
func (r *Row) Cell(col int) *Cell {
	cells := r.Cells()
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// Text returns the cell's visible text, one line per paragraph.
func (c *Cell) Text() string {
	return strings.Join(c.Lines(), "\n")
}

// Lines returns the text of each paragraph in the cell, in order.
func (c *Cell) Lines() []string {
	var out []string
	for _, p := range c.node.Elems(NS, "p") {
		var sb strings.Builder
		collectRunText(p, &sb)
		out = append(out, sb.String())
	}
	return out
}

// collectRunText gathers w:t character data under a paragraph, including
// runs nested in hyperlinks or smart tags.
func collectRunText(n *Node, sb *strings.Builder) {
	if n.Name.Space == NS && n.Name.Local == "t" {
		n.text(sb)
		return
	}
	for _, c := range n.Children {
		if !c.IsText() {
			collectRunText(c, sb)
		}
	}
}

// Clear removes every paragraph from the cell, leaving cell properties
// (w:tcPr) intact. The cell is invalid OOXML until a paragraph is added
// back, so callers always follow Clear with at least one AddParagraph.
func (c *Cell) Clear() {
	kept := c.node.Children[:0]
	for _, child := range c.node.Children {
		if child.IsText() || child.Name.Space != NS || child.Name.Local != "p" {
			kept = append(kept, child)
		}
	}
	c.node.Children = kept
}

// AddParagraph appends a styled single-run paragraph to the cell.
func (c *Cell) AddParagraph(text string, opts ParagraphOpts) {
	c.node.Children = append(c.node.Children, buildParagraph(text, opts))
}

func buildParagraph(text string, opts ParagraphOpts) *Node {
	p := &Node{Name: xml.Name{Space: NS, Local: "p"}}

	if opts.FirstLineIndentTwips > 0 {
		pPr := &Node{Name: xml.Name{Space: NS, Local: "pPr"}}
		pPr.Children = append(pPr.Children, &Node{
			Name:  xml.Name{Space: NS, Local: "ind"},
			Attrs: []xml.Attr{wAttr("firstLine", itoa(opts.FirstLineIndentTwips))},
		})
		p.Children = append(p.Children, pPr)
	}

	p.Children = append(p.Children, buildRun(text, opts.Style))
	return p
}

func buildRun(text string, style RunStyle) *Node {
	r := &Node{Name: xml.Name{Space: NS, Local: "r"}}

	if style.Font != "" || style.SizeHalfPoint > 0 {
		rPr := &Node{Name: xml.Name{Space: NS, Local: "rPr"}}
		if style.Font != "" {
			rPr.Children = append(rPr.Children, &Node{
				Name: xml.Name{Space: NS, Local: "rFonts"},
				Attrs: []xml.Attr{
					wAttr("ascii", style.Font),
					wAttr("hAnsi", style.Font),
					wAttr("eastAsia", style.Font),
				},
			})
		}
		if style.SizeHalfPoint > 0 {
			sz := itoa(style.SizeHalfPoint)
			rPr.Children = append(rPr.Children, &Node{
				Name:  xml.Name{Space: NS, Local: "sz"},
				Attrs: []xml.Attr{wAttr("val", sz)},
			})
			rPr.Children = append(rPr.Children, &Node{
				Name:  xml.Name{Space: NS, Local: "szCs"},
				Attrs: []xml.Attr{wAttr("val", sz)},
			})
		}
		r.Children = append(r.Children, rPr)
	}

	t := &Node{
		Name: xml.Name{Space: NS, Local: "t"},
		// Leading/trailing spaces in run text are significant.
		Attrs:    []xml.Attr{{Name: xml.Name{Space: "xml", Local: "space"}, Value: "preserve"}},
		Children: []*Node{{Text: text}},
	}
	r.Children = append(r.Children, t)
	return r
}

func wAttr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Space: NS, Local: local}, Value: value}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
