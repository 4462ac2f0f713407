package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FormSchema is the machine-readable form description the browser UI renders
// from. Field order follows FieldOrder.
type FormSchema struct {
	Fields []FormField `json:"fields"`
}

// FormField describes one form widget.
type FormField struct {
	Name        string         `json:"name"`
	Required    bool           `json:"required"`
	Type        string         `json:"type"`   // "group" or "text"
	Widget      string         `json:"widget"` // "group" or "textarea"
	Placeholder string         `json:"placeholder"`
	Subfields   []FormSubfield `json:"subfields"`
}

// FormSubfield describes one widget inside a group field.
type FormSubfield struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Widget      string `json:"widget"`
	Placeholder string `json:"placeholder"`
}

// Schema builds the form schema from the field vocabulary.
func Schema() FormSchema {
	var s FormSchema
	for _, f := range FieldOrder {
		ff := FormField{
			Name:        f.Name,
			Required:    f.Required,
			Type:        "text",
			Widget:      "textarea",
			Placeholder: fmt.Sprintf("请输入%s", f.Name),
			Subfields:   []FormSubfield{},
		}
		if f.IsGroup() {
			ff.Type = "group"
			ff.Widget = "group"
			for _, sub := range f.Subfields {
				ff.Subfields = append(ff.Subfields, FormSubfield{
					Name:        sub,
					Type:        "text",
					Widget:      "textarea",
					Placeholder: fmt.Sprintf("请输入%s", sub),
				})
			}
		}
		s.Fields = append(s.Fields, ff)
	}
	return s
}

// ExportSchema writes the form schema as indented JSON, creating parent
// directories as needed.
func ExportSchema(path string) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

// JSONSchema returns a JSON Schema document describing a valid plan payload:
// known field names only, scalar fields as strings, group fields as objects
// restricted to their declared subfields.
func JSONSchema() ([]byte, error) {
	properties := map[string]any{}
	for _, f := range FieldOrder {
		if f.IsGroup() {
			subProps := map[string]any{}
			for _, sub := range f.Subfields {
				subProps[sub] = map[string]any{"type": "string"}
			}
			properties[f.Name] = map[string]any{
				"type":                 "object",
				"properties":           subProps,
				"additionalProperties": false,
			}
			continue
		}
		properties[f.Name] = map[string]any{"type": "string"}
	}

	doc := map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal json schema: %w", err)
	}
	return data, nil
}

// compiledSchema caches the compiled JSON Schema; the vocabulary is fixed at
// build time so compiling once is safe.
var compiledSchema = func() *jsonschema.Schema {
	raw, err := JSONSchema()
	if err != nil {
		panic(fmt.Sprintf("plan: build json schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("plan.json", bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("plan: load json schema: %v", err))
	}
	schema, err := compiler.Compile("plan.json")
	if err != nil {
		panic(fmt.Sprintf("plan: compile json schema: %v", err))
	}
	return schema
}()

// DecodeJSON parses and shape-checks a plan payload from the HTTP boundary.
// Unknown field names, unknown subfields, and non-string leaves are rejected
// here so downstream code can trust the Data it receives. Completeness is a
// separate concern, checked by Validate.
func DecodeJSON(raw []byte) (Data, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("plan does not match schema: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return data, nil
}
