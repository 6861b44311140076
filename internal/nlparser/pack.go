package nlparser

import (
	"regexp"
	"sort"

	"nl-task-parser/pkg/textmatch"
)

// Frequency is the FREQ part of a recurrence rule.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
)

// Canonical names produced by the built-in vocabularies.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"

	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
	StatusWaiting    = "waiting"
)

// MarkerPrefixes are the punctuation prefixes of classification tokens.
type MarkerPrefixes struct {
	Tag     rune
	Context rune
	Project rune
}

// DefaultMarkers is shared by every pack; markers are not language specific.
var DefaultMarkers = MarkerPrefixes{Tag: '#', Context: '@', Project: '+'}

// packSpec is the raw vocabulary of one language.
type packSpec struct {
	wordBoundaries  bool
	priority        map[string]string
	status          map[string]string
	recurrenceUnits map[string]Frequency
	recurrence      []RecurrencePattern
	durationUnits   map[string]int // unit word -> minutes
	joiners         []string
	dueMarkers      []string
}

// LanguagePack is the compiled, read-only vocabulary of one language.
// Packs are shared between concurrent parses and never modified after build.
type LanguagePack struct {
	language        Language
	wordBoundaries  bool
	priority        []Keyword
	status          []Keyword
	dueMarkers      []string
	recurrenceUnits map[string]Frequency
	durationUnits   map[string]int
	markers         MarkerPrefixes

	recurrence   []compiledRecurrence
	duration     *regexp.Regexp
	durationPair *regexp.Regexp
	markerRes    markerPatterns
}

func buildPack(lang Language, spec packSpec) *LanguagePack {
	p := &LanguagePack{
		language:        lang,
		wordBoundaries:  spec.wordBoundaries,
		priority:        sortKeywords(spec.priority),
		status:          sortKeywords(spec.status),
		recurrenceUnits: make(map[string]Frequency, len(spec.recurrenceUnits)),
		durationUnits:   make(map[string]int, len(spec.durationUnits)),
		markers:         DefaultMarkers,
	}

	p.dueMarkers = append([]string(nil), spec.dueMarkers...)
	sort.Slice(p.dueMarkers, func(i, j int) bool { return longerFirst(p.dueMarkers[i], p.dueMarkers[j]) })

	units := make([]string, 0, len(spec.recurrenceUnits))
	for w, f := range spec.recurrenceUnits {
		units = append(units, w)
		p.recurrenceUnits[textmatch.Key(w)] = f
	}
	for _, rp := range spec.recurrence {
		p.recurrence = append(p.recurrence, compileRecurrence(rp, units, spec.wordBoundaries))
	}

	durUnits := make([]string, 0, len(spec.durationUnits))
	for w, m := range spec.durationUnits {
		durUnits = append(durUnits, w)
		p.durationUnits[textmatch.Key(w)] = m
	}
	p.duration, p.durationPair = compileDuration(durUnits, spec.joiners, spec.wordBoundaries)
	p.markerRes = compileMarkers(p.markers)

	return p
}

// Language returns the language the pack belongs to.
func (p *LanguagePack) Language() Language { return p.language }

// WordBoundaries reports whether keywords must stand as whole words.
func (p *LanguagePack) WordBoundaries() bool { return p.wordBoundaries }

// Markers returns the classification prefixes.
func (p *LanguagePack) Markers() MarkerPrefixes { return p.markers }

// PriorityKeywords returns a copy of the built-in priority vocabulary, longest phrase first.
func (p *LanguagePack) PriorityKeywords() []Keyword { return append([]Keyword(nil), p.priority...) }

// StatusKeywords returns a copy of the built-in status vocabulary, longest phrase first.
func (p *LanguagePack) StatusKeywords() []Keyword { return append([]Keyword(nil), p.status...) }

// DueMarkers returns a copy of the words that route a following date to the due date.
func (p *LanguagePack) DueMarkers() []string { return append([]string(nil), p.dueMarkers...) }
