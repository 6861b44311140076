package task

import (
	"nl-task-parser/internal/model"
	"nl-task-parser/internal/nlparser"
)

// ParseInput is one task line with the caller's vocabulary.
// An empty Language uses the service default.
type ParseInput struct {
	Text            string
	Language        string
	StatusConfigs   []model.StatusConfig
	PriorityConfigs []model.PriorityConfig
	AutoSuggest     bool
}

// ParseOutput is the parsed task and the language pack that produced it.
type ParseOutput struct {
	Task     nlparser.ParsedTask
	Language nlparser.Language
	Cached   bool
}

// SuggestInput is a partial word to complete.
type SuggestInput struct {
	Prefix          string
	Language        string
	StatusConfigs   []model.StatusConfig
	PriorityConfigs []model.PriorityConfig
}

// SuggestOutput holds completions, shortest first.
type SuggestOutput struct {
	Suggestions []string
}

// LanguageInfo describes one supported language.
type LanguageInfo struct {
	Code string
	Name string
}
