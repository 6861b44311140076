package nlparser

import (
	"strings"
	"time"
	"unicode"

	"nl-task-parser/pkg/textmatch"
)

// dateExtraction holds the dates assigned by extractDates.
type dateExtraction struct {
	Due           *time.Time
	DueText       string
	Scheduled     *time.Time
	ScheduledText string
}

// extractDates resolves every date phrase left in w. The first phrase right
// after a due marker becomes the due date, marker included, regardless of its
// position. The first other phrase becomes the scheduled date. Further
// phrases stay in the text.
func extractDates(w WorkingText, pack *LanguagePack, dates DateResolver, now time.Time) (dateExtraction, WorkingText) {
	var out dateExtraction
	if dates == nil {
		return out, w
	}

	text := w.String()
	var spans []textmatch.Span
	for from := 0; from < len(text) && (out.Due == nil || out.Scheduled == nil); {
		m, ok := dates.Resolve(text[from:], now)
		if !ok || m.End <= m.Start {
			break
		}
		start, end := from+m.Start, from+m.End
		from = end

		date := m.Date
		if markerStart, ok := dueMarkerBefore(text, start, pack); ok {
			if out.Due == nil {
				out.Due, out.DueText = &date, text[markerStart:end]
				spans = append(spans, textmatch.Span{Start: markerStart, End: end})
			}
			continue
		}
		if out.Scheduled == nil {
			out.Scheduled, out.ScheduledText = &date, text[start:end]
			spans = append(spans, textmatch.Span{Start: start, End: end})
		}
	}

	return out, w.RemoveSpans(spans)
}

// dueMarkerBefore reports whether a due marker ends right before pos, allowing
// whitespace and a colon in between, and returns where the marker starts.
func dueMarkerBefore(text string, pos int, pack *LanguagePack) (int, bool) {
	before := strings.TrimRightFunc(text[:pos], func(r rune) bool {
		return unicode.IsSpace(r) || r == ':' || r == '：'
	})
	if before == "" {
		return 0, false
	}

	for _, marker := range pack.dueMarkers {
		spans := textmatch.IndexAllFold(before, marker, pack.wordBoundaries)
		if len(spans) == 0 {
			continue
		}
		if last := spans[len(spans)-1]; last.End == len(before) {
			return last.Start, true
		}
	}
	return 0, false
}
