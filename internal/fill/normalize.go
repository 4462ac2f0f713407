// Package fill implements the label-driven document-filling engine: it takes
// flattened lesson-plan content and writes it into a fixed-layout table
// template by matching row labels, tracking the current parent section while
// walking rows, and appending or replacing cell paragraphs.
package fill

import "strings"

var lineSplitter = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLabel canonicalizes a template label for comparison. Each line of
// a (possibly wrapped) label is trimmed and stripped of trailing full- or
// half-width colons, then the lines collapse into one contiguous token with
// no separator. Idempotent.
//
// "下午：\n户外游戏", "  室内区域游戏：  " and "室内区域游戏" all normalize
// to their bare label text.
func NormalizeLabel(label string) string {
	var sb strings.Builder
	for _, line := range strings.Split(lineSplitter.Replace(label), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimRight(line, "：:")
		sb.WriteString(strings.TrimSpace(line))
	}
	return sb.String()
}
