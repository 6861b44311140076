package nlparser

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"nl-task-parser/pkg/textmatch"
)

// WorkingText is the text still unclaimed by the extractors. It is a value:
// every removal returns a new WorkingText and leaves the receiver intact.
type WorkingText struct {
	s string
}

// NewWorkingText wraps s in NFC so byte offsets are stable across extractors.
func NewWorkingText(s string) WorkingText {
	return WorkingText{s: norm.NFC.String(s)}
}

func (w WorkingText) String() string { return w.s }

// Remove cuts [start, end) and collapses the whitespace around the cut.
func (w WorkingText) Remove(start, end int) WorkingText {
	return WorkingText{s: textmatch.Cut(w.s, start, end)}
}

// RemoveSpans cuts non-overlapping spans, right to left so earlier offsets stay valid.
func (w WorkingText) RemoveSpans(spans []textmatch.Span) WorkingText {
	sorted := append([]textmatch.Span(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	out := w
	for _, sp := range sorted {
		out = out.Remove(sp.Start, sp.End)
	}
	return out
}

// Title returns the trimmed remainder, or placeholder when nothing is left.
func (w WorkingText) Title(placeholder string) string {
	if t := strings.TrimSpace(w.s); t != "" {
		return t
	}
	return placeholder
}
