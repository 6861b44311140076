package nlparser

import (
	"unicode/utf8"

	"nl-task-parser/internal/model"
	"nl-task-parser/pkg/textmatch"
)

// KeywordMatch is a priority or status recognised in a task line.
type KeywordMatch struct {
	Canonical string
	Text      string
	Completed bool // status only
}

// selectVocabulary is the precedence rule. A user vocabulary replaces the
// built-in one entirely: when hasUserConfig is set the built-in keywords are
// never consulted, even if the user vocabulary matches nothing.
func selectVocabulary(hasUserConfig bool, builtIn, user []Keyword) []Keyword {
	if hasUserConfig {
		return user
	}
	return builtIn
}

// configKeywords expands one configured entry into the phrases that select
// it: value and label as written plus their normalised forms, so a value
// "in-progress" also matches "in progress".
func configKeywords(value, label string) []Keyword {
	var out []Keyword
	seen := make(map[string]bool, 4)
	for _, phrase := range []string{value, label, textmatch.Normalize(value), textmatch.Normalize(label)} {
		if phrase == "" || seen[phrase] {
			continue
		}
		seen[phrase] = true
		out = append(out, Keyword{Phrase: phrase, Canonical: value})
	}
	return out
}

func statusVocabulary(configs []model.StatusConfig) []Keyword {
	var out []Keyword
	for _, c := range configs {
		if c.Value == "" {
			continue
		}
		out = append(out, configKeywords(c.Value, c.Label)...)
	}
	return out
}

func priorityVocabulary(configs []model.PriorityConfig) []Keyword {
	var out []Keyword
	for _, c := range configs {
		if c.Value == "" {
			continue
		}
		out = append(out, configKeywords(c.Value, c.Label)...)
	}
	return out
}

// ResolveStatus recognises the status of a task line and removes every
// occurrence of the winning phrase from w.
func ResolveStatus(w WorkingText, pack *LanguagePack, configs []model.StatusConfig) (KeywordMatch, WorkingText, bool) {
	vocab := selectVocabulary(len(configs) > 0, pack.status, statusVocabulary(configs))
	m, rest, ok := resolveKeyword(w, vocab, pack.wordBoundaries)
	if !ok {
		return KeywordMatch{}, w, false
	}

	if len(configs) == 0 {
		m.Completed = m.Canonical == StatusDone
		return m, rest, true
	}
	for _, c := range configs {
		if c.Value == m.Canonical {
			m.Completed = c.IsCompleted
			break
		}
	}
	return m, rest, true
}

// ResolvePriority is the priority counterpart of ResolveStatus.
func ResolvePriority(w WorkingText, pack *LanguagePack, configs []model.PriorityConfig) (KeywordMatch, WorkingText, bool) {
	vocab := selectVocabulary(len(configs) > 0, pack.priority, priorityVocabulary(configs))
	return resolveKeyword(w, vocab, pack.wordBoundaries)
}

// resolveKeyword picks the longest matching phrase; ties go to the earliest
// position and then to vocabulary order. Every bounded occurrence of the
// winning phrase is removed, not just the chosen one, so a repeated keyword
// never survives into the title.
func resolveKeyword(w WorkingText, vocab []Keyword, bounded bool) (KeywordMatch, WorkingText, bool) {
	text := w.String()

	best := -1
	var bestSpan textmatch.Span
	var bestLen int
	for i, kw := range vocab {
		sp, ok := textmatch.IndexFold(text, kw.Phrase, 0, bounded)
		if !ok {
			continue
		}
		n := utf8.RuneCountInString(text[sp.Start:sp.End])
		if best < 0 || n > bestLen || (n == bestLen && sp.Start < bestSpan.Start) {
			best, bestSpan, bestLen = i, sp, n
		}
	}
	if best < 0 {
		return KeywordMatch{}, w, false
	}

	m := KeywordMatch{Canonical: vocab[best].Canonical, Text: text[bestSpan.Start:bestSpan.End]}
	return m, w.RemoveSpans(textmatch.IndexAllFold(text, vocab[best].Phrase, bounded)), true
}
