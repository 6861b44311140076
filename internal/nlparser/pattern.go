package nlparser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// PatternKind tags every pattern an extractor evaluates. Recurrence patterns
// are evaluated in the order they are declared in a pack.
type PatternKind int

const (
	KindDuration PatternKind = iota
	KindRecurrenceInterval
	KindRecurrenceOther
	KindRecurrenceUnit
	KindRecurrenceFixed
	KindKeyword
)

func (k PatternKind) String() string {
	switch k {
	case KindDuration:
		return "duration"
	case KindRecurrenceInterval:
		return "recurrence-interval"
	case KindRecurrenceOther:
		return "recurrence-other"
	case KindRecurrenceUnit:
		return "recurrence-unit"
	case KindRecurrenceFixed:
		return "recurrence-fixed"
	case KindKeyword:
		return "keyword"
	}
	return fmt.Sprintf("PatternKind(%d)", int(k))
}

// RecurrencePattern is one recurrence phrasing. Pattern is a regular
// expression fragment in which spaces match any whitespace run, {n} stands for
// the interval number and {unit} for the pack's recurrence unit words; each
// placeholder appears at most once.
type RecurrencePattern struct {
	Kind     PatternKind
	Pattern  string
	Freq     Frequency // KindRecurrenceFixed only
	Interval int       // KindRecurrenceFixed only, 0 means 1
}

type compiledRecurrence struct {
	RecurrencePattern
	re        *regexp.Regexp
	spanGroup int
	nGroup    int
	unitGroup int
}

// Keyword maps a literal phrase to its canonical value.
type Keyword struct {
	Phrase    string
	Canonical string
}

const (
	boundaryBefore = `(?:^|[^\p{L}\p{N}\p{M}_])`
	boundaryAfter  = `(?:[^\p{L}\p{N}\p{M}_]|$)`
)

// wrap anchors core on word boundaries for spaced scripts and exposes the
// match as the "span" group.
func wrap(core string, bounded bool) string {
	if !bounded {
		return `(?i)(?P<span>` + core + `)`
	}
	return `(?i)` + boundaryBefore + `(?P<span>` + core + `)` + boundaryAfter
}

// alternation quotes words, longest first, for use inside a regular expression.
func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool { return longerFirst(sorted[i], sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return strings.Join(quoted, "|")
}

func longerFirst(a, b string) bool {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la > lb
	}
	return a < b
}

func compileRecurrence(p RecurrencePattern, units []string, bounded bool) compiledRecurrence {
	if strings.Count(p.Pattern, "{n}") > 1 || strings.Count(p.Pattern, "{unit}") > 1 {
		panic(fmt.Sprintf("nlparser: recurrence pattern %q repeats a placeholder", p.Pattern))
	}

	core := strings.ReplaceAll(p.Pattern, " ", `\s+`)
	core = strings.Replace(core, "{n}", `(?P<n>\d+)`, 1)
	core = strings.Replace(core, "{unit}", `(?P<unit>`+alternation(units)+`)`, 1)

	re := regexp.MustCompile(wrap(core, bounded))
	return compiledRecurrence{
		RecurrencePattern: p,
		re:                re,
		spanGroup:         re.SubexpIndex("span"),
		nGroup:            re.SubexpIndex("n"),
		unitGroup:         re.SubexpIndex("unit"),
	}
}

const durationNumber = `\d+(?:[.,]\d+)?`

// compileDuration returns the expression matching a contiguous run of
// (number, unit) pairs and the expression matching one pair.
func compileDuration(units, joiners []string, bounded bool) (*regexp.Regexp, *regexp.Regexp) {
	unitAlt := alternation(units)
	pair := durationNumber + `\s*(?:` + unitAlt + `)`

	sep := `\s*,\s*|\s*`
	if len(joiners) > 0 {
		sep = `\s*,?\s*(?:` + alternation(joiners) + `)\s*|` + sep
	}

	run := pair + `(?:(?:` + sep + `)` + pair + `)*`
	one := regexp.MustCompile(`(?i)(?P<num>` + durationNumber + `)\s*(?P<unit>` + unitAlt + `)`)
	return regexp.MustCompile(wrap(run, bounded)), one
}

// sortKeywords orders keywords longest phrase first so the most specific one is
// tried first; ties are broken alphabetically to keep the order stable.
func sortKeywords(m map[string]string) []Keyword {
	out := make([]Keyword, 0, len(m))
	for phrase, canonical := range m {
		out = append(out, Keyword{Phrase: phrase, Canonical: canonical})
	}
	sort.Slice(out, func(i, j int) bool { return longerFirst(out[i].Phrase, out[j].Phrase) })
	return out
}
