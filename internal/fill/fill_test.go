package fill

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kgplan/kgplan/internal/docx"
	"github.com/kgplan/kgplan/internal/plan"
)

// buildTemplate assembles an in-memory .docx whose body holds the given
// tables; tables[t][r][c] is one cell's text, "\n" separating paragraphs.
func buildTemplate(t *testing.T, tables [][][]string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, tbl := range tables {
		body.WriteString("<w:tbl>")
		for _, row := range tbl {
			body.WriteString("<w:tr>")
			for _, cell := range row {
				body.WriteString("<w:tc>")
				for _, line := range strings.Split(cell, "\n") {
					body.WriteString("<w:p><w:r><w:t>")
					body.WriteString(line)
					body.WriteString("</w:t></w:r></w:p>")
				}
				body.WriteString("</w:tc>")
			}
			body.WriteString("</w:tr>")
		}
		body.WriteString("</w:tbl>")
	}
	body.WriteString("</w:body></w:document>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct{ name, data string }{
		{"[Content_Types].xml", `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`},
		{"word/document.xml", body.String()},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("create archive entry: %v", err)
		}
		if _, err := w.Write([]byte(e.data)); err != nil {
			t.Fatalf("write archive entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func openTemplate(t *testing.T, tables [][][]string) *docx.Document {
	t.Helper()
	doc, err := docx.OpenBytes(buildTemplate(t, tables))
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	return doc
}

func cellLines(t *testing.T, doc *docx.Document, table, row, col int) []string {
	t.Helper()
	cell := doc.Tables()[table].Cell(row, col)
	if cell == nil {
		t.Fatalf("no cell at table %d row %d col %d", table, row, col)
	}
	return cell.Lines()
}

func TestFillTeacherPlan(t *testing.T) {
	doc := openTemplate(t, [][][]string{
		{
			{"周次", ""},
			{"日期", ""},
		},
		{
			{"室内区域游戏：", ""},
			{"游戏区域", ""},
			{"指导要点", ""},
			{"下午户外游戏", ""},
			{"游戏区域", ""},
			{"一日活动反思", ""},
		},
	})

	res := FillTeacherPlan(doc, plan.SampleData(), "第（1）周", "周（一） 9月1日")

	if got := cellLines(t, doc, 0, 0, 1); !reflect.DeepEqual(got, []string{"第（1）周"}) {
		t.Errorf("week cell = %q", got)
	}
	if got := cellLines(t, doc, 0, 1, 1); !reflect.DeepEqual(got, []string{"周（一） 9月1日"}) {
		t.Errorf("date cell = %q", got)
	}

	// 游戏区域 resolves against the tracked section: 室内 first, 下午 later.
	if got := cellLines(t, doc, 1, 1, 1); !reflect.DeepEqual(got, []string{"阅读区、建构区"}) {
		t.Errorf("室内 游戏区域 cell = %q", got)
	}
	if got := cellLines(t, doc, 1, 4, 1); !reflect.DeepEqual(got, []string{"操场接力区"}) {
		t.Errorf("下午 游戏区域 cell = %q", got)
	}
	if got := cellLines(t, doc, 1, 2, 1); !reflect.DeepEqual(got, []string{"轮流表达、倾听他人"}) {
		t.Errorf("指导要点 cell = %q", got)
	}
	if got := cellLines(t, doc, 1, 5, 1); !reflect.DeepEqual(got, []string{"幼儿参与度高，但个别幼儿注意力分散。"}) {
		t.Errorf("反思 cell = %q", got)
	}

	wantReplaced := []CellRef{
		{Table: 1, Row: 1, Col: 1},
		{Table: 1, Row: 2, Col: 1},
		{Table: 1, Row: 4, Col: 1},
		{Table: 1, Row: 5, Col: 1},
	}
	if !reflect.DeepEqual(res.Replaced, wantReplaced) {
		t.Errorf("replaced = %v, want %v", res.Replaced, wantReplaced)
	}
	if len(res.Appended) != 0 || len(res.Conflicts) != 0 {
		t.Errorf("unexpected appended %v / conflicts %v", res.Appended, res.Conflicts)
	}
}

func TestFillTeacherPlan_SentenceSplit(t *testing.T) {
	doc := openTemplate(t, [][][]string{
		{
			{"集体活动", ""},
			{"活动目标", ""},
			{"活动过程", ""},
		},
	})

	data := plan.Data{
		"集体活动": plan.Group(map[string]string{
			"活动目标": "目标一。目标二！",
			"活动过程": "导入。示范。",
		}),
	}
	FillTeacherPlan(doc, data, "", "")

	if got := cellLines(t, doc, 0, 1, 1); !reflect.DeepEqual(got, []string{"目标一。", "目标二！"}) {
		t.Errorf("活动目标 cell = %q", got)
	}
	// 活动过程 is newline mode, sentences stay on one line.
	if got := cellLines(t, doc, 0, 2, 1); !reflect.DeepEqual(got, []string{"导入。示范。"}) {
		t.Errorf("活动过程 cell = %q", got)
	}
}

func TestFillTeacherPlan_ScalarOverridesHeader(t *testing.T) {
	doc := openTemplate(t, [][][]string{
		{
			{"周次", ""},
			{"日期", ""},
		},
	})

	data := plan.Data{
		plan.FieldWeek: plan.Scalar("第（9）周"),
	}
	FillTeacherPlan(doc, data, "第（1）周", "周（一） 9月1日")

	if got := cellLines(t, doc, 0, 0, 1); !reflect.DeepEqual(got, []string{"第（9）周"}) {
		t.Errorf("week cell = %q", got)
	}
	if got := cellLines(t, doc, 0, 1, 1); !reflect.DeepEqual(got, []string{"周（一） 9月1日"}) {
		t.Errorf("date cell = %q", got)
	}
}

func TestFillTeacherPlan_AppendsAfterEmbeddedLabels(t *testing.T) {
	doc := openTemplate(t, [][][]string{
		{
			{"晨间活动指导", "重点指导：原有说明\n活动目标"},
		},
	})

	res := FillTeacherPlan(doc, plan.SampleData(), "", "")

	want := []string{
		"重点指导：原有说明",
		"规则意识与安全",
		"活动目标",
		"提升动作协调性",
	}
	if got := cellLines(t, doc, 0, 0, 1); !reflect.DeepEqual(got, want) {
		t.Errorf("cell = %q, want %q", got, want)
	}
	if len(res.Appended) != 1 {
		t.Errorf("appended = %v", res.Appended)
	}
}

func TestFillTeacherPlan_ConflictKeepsAppendedContent(t *testing.T) {
	// The content cell embeds its own row label, so the append pass claims
	// the cell first and the replace pass must not overwrite it.
	doc := openTemplate(t, [][][]string{
		{
			{"晨间活动指导", ""},
			{"指导要点", "指导要点"},
		},
	})

	res := FillTeacherPlan(doc, plan.SampleData(), "", "")

	want := []string{"指导要点", "控制速度、保持间距"}
	if got := cellLines(t, doc, 0, 1, 1); !reflect.DeepEqual(got, want) {
		t.Errorf("cell = %q, want %q", got, want)
	}
	wantRef := []CellRef{{Table: 0, Row: 1, Col: 1}}
	if !reflect.DeepEqual(res.Appended, wantRef) {
		t.Errorf("appended = %v", res.Appended)
	}
	if !reflect.DeepEqual(res.Conflicts, wantRef) {
		t.Errorf("conflicts = %v", res.Conflicts)
	}
}

func TestSetCellContent_BlankKeepsOneParagraph(t *testing.T) {
	doc := openTemplate(t, [][][]string{{{"标签", "旧内容"}}})
	cell := doc.Tables()[0].Cell(0, 1)

	SetCellContent(cell, "一日活动反思", "", true)

	if got := cell.Lines(); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("expected single empty paragraph, got %q", got)
	}
}

func TestGeneratePlanDocx(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "plan.docx")
	data := buildTemplate(t, [][][]string{
		{
			{"周次", ""},
			{"日期", ""},
		},
	})
	if err := os.WriteFile(template, data, 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	out := filepath.Join(dir, "out", "教案_20250901.docx")
	got, err := GeneratePlanDocx(template, plan.SampleData(), "第（1）周", "周（一） 9月1日", out)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != out {
		t.Errorf("expected output path %s, got %s", out, got)
	}

	doc, err := docx.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if text := doc.Tables()[0].Cell(0, 1).Text(); text != "第（1）周" {
		t.Errorf("week cell = %q", text)
	}

	// The template itself must never be the write target.
	if _, err := GeneratePlanDocx(template, plan.SampleData(), "", "", template); err == nil {
		t.Error("expected error when output equals template")
	}
}
