package nlparser

import (
	"sort"

	"nl-task-parser/internal/model"
	"nl-task-parser/pkg/textmatch"
)

// MaxSuggestions caps the completions returned for one partial word.
const MaxSuggestions = 10

// SuggestInput is a partial word to complete against the active vocabulary.
type SuggestInput struct {
	Prefix          string
	Language        string
	StatusConfigs   []model.StatusConfig
	PriorityConfigs []model.PriorityConfig
}

// Suggest completes a partial word with priority and status phrases. The
// vocabulary follows the same rule as extraction: configured entries replace
// the built-in keywords. Phrases equal to the prefix are not suggested.
func Suggest(in SuggestInput) []string {
	prefix := textmatch.Normalize(in.Prefix)
	if prefix == "" {
		return []string{}
	}
	pack := Lookup(in.Language)

	var vocab []Keyword
	vocab = append(vocab, selectVocabulary(len(in.PriorityConfigs) > 0, pack.priority, priorityVocabulary(in.PriorityConfigs))...)
	vocab = append(vocab, selectVocabulary(len(in.StatusConfigs) > 0, pack.status, statusVocabulary(in.StatusConfigs))...)

	prefixKey := textmatch.Key(prefix)
	seen := make(map[string]bool, len(vocab))
	out := []string{}
	for _, kw := range vocab {
		key := textmatch.Key(kw.Phrase)
		if seen[key] || key == prefixKey || !textmatch.HasPrefixFold(kw.Phrase, prefix) {
			continue
		}
		seen[key] = true
		out = append(out, kw.Phrase)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
