package fill

import "strings"

// SegmentMode selects how free text is broken into display lines.
type SegmentMode int

const (
	// ByNewline splits only at line breaks.
	ByNewline SegmentMode = iota
	// BySentence additionally splits within a line at sentence-terminal
	// punctuation, keeping the mark attached to the preceding clause.
	BySentence
)

// sentenceModeLabels are the free-text evaluative/prescriptive fields that
// read better as one sentence per paragraph. Everything else splits at line
// breaks only.
var sentenceModeLabels = map[string]struct{}{
	"活动目标": {},
	"活动准备": {},
	"活动重点": {},
	"活动难点": {},
	"指导要点": {},
	"问题设计": {},
}

// ModeForLabel returns the segmentation mode for a (normalized) label.
// Composite "parent-subfield" keys are judged by their subfield part.
func ModeForLabel(label string) SegmentMode {
	if i := strings.LastIndex(label, compositeSep); i >= 0 {
		label = label[i+len(compositeSep):]
	}
	if _, ok := sentenceModeLabels[label]; ok {
		return BySentence
	}
	return ByNewline
}

// escapedBreakFixer turns literal backslash-escaped break sequences, which
// show up in text pasted from other systems, into real line feeds along with
// the usual CR/CRLF variants.
var escapedBreakFixer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	`\n`, "\n",
	`\r`, "\n",
)

// Segment splits text into an ordered sequence of non-blank display lines.
// Empty or whitespace-only input yields a single empty line; callers skip
// emitting paragraphs for blank lines.
func Segment(text string, mode SegmentMode) []string {
	var out []string
	for _, line := range strings.Split(escapedBreakFixer.Replace(text), "\n") {
		if mode == BySentence {
			out = append(out, splitSentences(line)...)
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// splitSentences breaks a single line at sentence-terminal punctuation. A
// trailing clause with no terminal mark is still emitted. A half-width
// period between digits is a decimal point, not a boundary.
func splitSentences(line string) []string {
	var out []string
	runes := []rune(line)
	start := 0
	for i, r := range runes {
		if !isSentenceTerminal(r) {
			continue
		}
		if r == '.' && i > 0 && i+1 < len(runes) && isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			continue
		}
		if seg := strings.TrimSpace(string(runes[start : i+1])); seg != "" {
			out = append(out, seg)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}

func isSentenceTerminal(r rune) bool {
	switch r {
	case '。', '．', '.', '！', '!', '？', '?':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
