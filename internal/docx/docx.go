// Package docx gives the filler a mutable view of a Word document: an
// ordered list of tables, each an ordered list of rows of cells, each cell
// holding styled paragraphs. The OOXML container is a zip archive with the
// body at word/document.xml; every other archive entry is carried through
// untouched on save.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

const documentEntry = "word/document.xml"

// archiveEntry is a raw zip member held in memory between load and save.
type archiveEntry struct {
	name string
	data []byte
}

// Document is an in-memory Word document. It is loaded fully before any
// mutation, so a read failure can never produce a half-written output file.
type Document struct {
	entries  []archiveEntry
	root     *Node
	prefixes map[string]string
}

// Open loads a .docx file into memory.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	doc, err := OpenBytes(data)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	return doc, nil
}

// OpenBytes loads a .docx from raw archive bytes.
func OpenBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	doc := &Document{}
	var bodyXML []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("read archive entry %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read archive entry %s: %w", f.Name, err)
		}
		doc.entries = append(doc.entries, archiveEntry{name: f.Name, data: content})
		if f.Name == documentEntry {
			bodyXML = content
		}
	}
	if bodyXML == nil {
		return nil, fmt.Errorf("%s not found in archive", documentEntry)
	}

	root, err := parseXML(bytes.NewReader(bodyXML))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentEntry, err)
	}
	doc.root = root
	doc.prefixes = nsPrefixes(root)
	return doc, nil
}

// Save writes the document to path, serializing the possibly mutated body
// and copying every other archive entry verbatim. The source file the
// document was opened from is never touched.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save document %s: %w", path, err)
	}
	return nil
}

// Bytes serializes the document to .docx archive bytes.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range d.entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", e.name, err)
		}
		if e.name == documentEntry {
			if err := serializeXML(w, d.root, d.prefixes); err != nil {
				return nil, fmt.Errorf("serialize %s: %w", documentEntry, err)
			}
			continue
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
