package nlparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"nl-task-parser/pkg/textmatch"
)

// markerBody needs at least one letter so "#1" or "+100" stay in the text.
const markerBody = `[\p{L}\p{N}\p{M}_/-]*\p{L}[\p{L}\p{N}\p{M}_/-]*`

type markerPatterns struct {
	re          *regexp.Regexp
	spanGroup   int
	linkGroup   int
	prefixGroup int
	valueGroup  int
}

// compileMarkers builds one expression for every marker kind so a single
// left-to-right scan yields them in input order. A marker starts the text
// or follows whitespace, which keeps e-mail addresses out.
func compileMarkers(m MarkerPrefixes) markerPatterns {
	prefixes := regexp.QuoteMeta(string(m.Tag)) + "|" + regexp.QuoteMeta(string(m.Context)) + "|" + regexp.QuoteMeta(string(m.Project))
	link := regexp.QuoteMeta(string(m.Project)) + `\[\[(?P<link>[^\[\]\n]+)\]\]`
	re := regexp.MustCompile(`(?:^|\s)(?P<span>` + link + `|(?P<prefix>` + prefixes + `)(?P<value>` + markerBody + `))`)

	return markerPatterns{
		re:          re,
		spanGroup:   re.SubexpIndex("span"),
		linkGroup:   re.SubexpIndex("link"),
		prefixGroup: re.SubexpIndex("prefix"),
		valueGroup:  re.SubexpIndex("value"),
	}
}

// Markers are the classification tokens of a task line, without prefixes,
// deduplicated case-insensitively in first-seen order.
type Markers struct {
	Tags     []string
	Contexts []string
	Projects []string
	Matches  []Match
}

// ExtractMarkers collects every tag, context and project marker and removes
// them from w. Scanning repeats until the remainder holds no marker, so a
// marker glued behind another ("#a#b") is not left for a later call.
func (p *LanguagePack) ExtractMarkers(w WorkingText) (Markers, WorkingText) {
	out := Markers{Tags: []string{}, Contexts: []string{}, Projects: []string{}}
	seen := make(map[MatchKind]map[string]bool, 3)
	mp := p.markerRes

	for {
		text := w.String()
		locs := mp.re.FindAllStringSubmatchIndex(text, -1)
		if len(locs) == 0 {
			return out, w
		}

		spans := make([]textmatch.Span, 0, len(locs))
		for _, loc := range locs {
			span := textmatch.Span{Start: loc[2*mp.spanGroup], End: loc[2*mp.spanGroup+1]}
			spans = append(spans, textmatch.Span{Start: span.Start, End: trailingPunct(text, span.End)})

			var kind MatchKind
			var value string
			if loc[2*mp.linkGroup] >= 0 {
				kind = MatchProject
				value = strings.TrimSpace(text[loc[2*mp.linkGroup]:loc[2*mp.linkGroup+1]])
			} else {
				prefix, _ := utf8.DecodeRuneInString(text[loc[2*mp.prefixGroup]:])
				kind = p.markerKind(prefix)
				value = text[loc[2*mp.valueGroup]:loc[2*mp.valueGroup+1]]
			}
			out.Matches = append(out.Matches, Match{Kind: kind, Text: text[span.Start:span.End]})
			out.add(seen, kind, value)
		}
		w = w.RemoveSpans(spans)
	}
}

// markerPunct may trail a marker and goes with it when the marker is removed.
const markerPunct = ",;.:!?、。，；：！？"

// trailingPunct returns the end of the punctuation run starting at end, or
// end itself when the run is followed by something other than whitespace, so
// "#tag, next" loses the comma but "#v1.2" keeps ".2".
func trailingPunct(text string, end int) int {
	i := end
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !strings.ContainsRune(markerPunct, r) {
			break
		}
		i += size
	}
	if i == end || i == len(text) {
		return i
	}
	if r, _ := utf8.DecodeRuneInString(text[i:]); unicode.IsSpace(r) {
		return i
	}
	return end
}

func (m *Markers) add(seen map[MatchKind]map[string]bool, kind MatchKind, value string) {
	if value == "" {
		return
	}
	key := textmatch.Key(value)
	if seen[kind] == nil {
		seen[kind] = make(map[string]bool)
	}
	if seen[kind][key] {
		return
	}
	seen[kind][key] = true

	switch kind {
	case MatchTag:
		m.Tags = append(m.Tags, value)
	case MatchContext:
		m.Contexts = append(m.Contexts, value)
	case MatchProject:
		m.Projects = append(m.Projects, value)
	}
}

func (p *LanguagePack) markerKind(prefix rune) MatchKind {
	switch prefix {
	case p.markers.Tag:
		return MatchTag
	case p.markers.Context:
		return MatchContext
	default:
		return MatchProject
	}
}
