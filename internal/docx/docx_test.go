package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

const testBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:tbl><w:tr>` +
	`<w:tc><w:tcPr><w:tcW w:w="1200" w:type="dxa"/></w:tcPr><w:p><w:r><w:t>标签</w:t></w:r></w:p></w:tc>` +
	`<w:tc><w:p><w:r><w:t>第一段</w:t></w:r></w:p><w:p><w:r><w:t>第二段</w:t></w:r></w:p></w:tc>` +
	`</w:tr></w:tbl>` +
	`<w:p><w:r><w:t>表外段落</w:t></w:r></w:p>` +
	`</w:body></w:document>`

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := []string{"[Content_Types].xml", "word/document.xml", "word/styles.xml"}
	for _, name := range names {
		data, ok := entries[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("write entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func testArchive(t *testing.T) []byte {
	t.Helper()
	return buildArchive(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   testBody,
		"word/styles.xml":     `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`,
	})
}

func readEntry(t *testing.T, archive []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry: %v", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read entry: %v", err)
		}
		return string(data)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestOpenBytes(t *testing.T) {
	doc, err := OpenBytes(testArchive(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	rows := tables[0].Rows()
	if len(rows) != 1 || len(rows[0].Cells()) != 2 {
		t.Fatalf("unexpected table shape: %d rows", len(rows))
	}

	if text := tables[0].Cell(0, 0).Text(); text != "标签" {
		t.Errorf("label cell = %q", text)
	}
	want := []string{"第一段", "第二段"}
	if got := tables[0].Cell(0, 1).Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("content lines = %q, want %q", got, want)
	}

	if tables[0].Cell(0, 5) != nil || tables[0].Cell(3, 0) != nil {
		t.Error("out-of-range cell lookups must return nil")
	}
}

func TestOpenBytes_Errors(t *testing.T) {
	t.Run("not a zip", func(t *testing.T) {
		if _, err := OpenBytes([]byte("not an archive")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("missing document entry", func(t *testing.T) {
		data := buildArchive(t, map[string]string{
			"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		})
		if _, err := OpenBytes(data); err == nil || !strings.Contains(err.Error(), "word/document.xml") {
			t.Errorf("expected missing-entry error, got %v", err)
		}
	})

	t.Run("malformed body xml", func(t *testing.T) {
		data := buildArchive(t, map[string]string{
			"word/document.xml": `<w:document xmlns:w="x"><w:body>`,
		})
		if _, err := OpenBytes(data); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestRoundTripPreservesArchive(t *testing.T) {
	doc, err := OpenBytes(testArchive(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	body := readEntry(t, out, "word/document.xml")
	for _, want := range []string{"<w:tbl>", "<w:tcPr>", `<w:tcW w:w="1200" w:type="dxa"/>`, "表外段落"} {
		if !strings.Contains(body, want) {
			t.Errorf("serialized body missing %q", want)
		}
	}
	if strings.Contains(body, "<body>") {
		t.Error("namespace prefix was dropped on serialization")
	}

	// Untouched members are carried through verbatim.
	styles := readEntry(t, out, "word/styles.xml")
	if !strings.Contains(styles, "<w:styles") {
		t.Errorf("styles entry corrupted: %q", styles)
	}

	reopened, err := OpenBytes(out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if text := reopened.Tables()[0].Cell(0, 1).Text(); text != "第一段\n第二段" {
		t.Errorf("round-trip text = %q", text)
	}
}

func TestCellClearAndAddParagraph(t *testing.T) {
	doc, err := OpenBytes(testArchive(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cell := doc.Tables()[0].Cell(0, 1)

	cell.Clear()
	if lines := cell.Lines(); len(lines) != 0 {
		t.Fatalf("expected no paragraphs after clear, got %q", lines)
	}

	cell.AddParagraph("新内容 带空格 ", ParagraphOpts{
		Style:                RunStyle{Font: "仿宋", SizeHalfPoint: 24},
		FirstLineIndentTwips: 480,
	})

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	body := readEntry(t, out, "word/document.xml")

	for _, want := range []string{
		`<w:rFonts w:ascii="仿宋" w:hAnsi="仿宋" w:eastAsia="仿宋"/>`,
		`<w:sz w:val="24"/>`,
		`<w:szCs w:val="24"/>`,
		`<w:ind w:firstLine="480"/>`,
		`xml:space="preserve"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("serialized body missing %q", want)
		}
	}

	// Cell properties survive Clear.
	if !strings.Contains(body, "<w:tcPr>") {
		t.Error("tcPr removed by Clear")
	}

	reopened, err := OpenBytes(out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.Tables()[0].Cell(0, 1).Lines(); !reflect.DeepEqual(got, []string{"新内容 带空格 "}) {
		t.Errorf("round-trip lines = %q", got)
	}
}
