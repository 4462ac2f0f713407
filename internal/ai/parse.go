package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSplitResponse parses model output into a subfield map, with
// lightweight recovery for markdown code fences and surrounding text.
func ParseSplitResponse(content string) (map[string]string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty model output")
	}

	candidates := []string{content}
	if stripped := stripCodeFences(content); stripped != "" && stripped != content {
		candidates = append(candidates, stripped)
	}
	if extracted := extractJSONObject(content); extracted != "" && extracted != content {
		candidates = append(candidates, extracted)
	}

	for _, candidate := range candidates {
		var fields map[string]string
		if err := json.Unmarshal([]byte(candidate), &fields); err == nil {
			return normalizeFields(fields), nil
		}
	}

	return nil, fmt.Errorf("failed to parse model output as JSON")
}

// normalizeFields trims values and keeps only the known subfields, so stray
// keys from the model never reach a plan.
func normalizeFields(raw map[string]string) map[string]string {
	fields := make(map[string]string, len(SplitFields))
	for _, name := range SplitFields {
		if v, ok := raw[name]; ok {
			fields[name] = strings.TrimSpace(v)
		}
	}
	return fields
}

func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return ""
	}

	// Drop first fence line.
	lines = lines[1:]
	// Drop trailing fence if present.
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ""
	}
	return strings.TrimSpace(content[start : end+1])
}
