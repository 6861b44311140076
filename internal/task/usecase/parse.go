package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/nlparser"
	"nl-task-parser/internal/task"
	"nl-task-parser/pkg/textmatch"
)

// Parse validates the input and runs the parser. Results are cached per
// language, vocabulary, text and calendar day, since relative dates change at
// midnight.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}
	if uc.maxInputLength > 0 && utf8.RuneCountInString(input.Text) > uc.maxInputLength {
		return task.ParseOutput{}, fmt.Errorf("%w: more than %d characters", task.ErrInputTooLong, uc.maxInputLength)
	}
	if err := validateStatuses(input.StatusConfigs); err != nil {
		return task.ParseOutput{}, err
	}
	if err := validatePriorities(input.PriorityConfigs); err != nil {
		return task.ParseOutput{}, err
	}

	if input.Language == "" {
		input.Language = uc.defaultLanguage
	}
	lang := nlparser.ParseLanguage(input.Language)
	now := uc.clock()

	key := cacheKey(lang, now.In(uc.location).Format("2006-01-02"), input)
	if uc.cache != nil {
		if parsed, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "task.usecase.Parse: cache hit lang=%s", lang)
			return task.ParseOutput{Task: parsed, Language: lang, Cached: true}, nil
		}
	}

	parsed := uc.parser.Parse(nlparser.Input{
		Text:            input.Text,
		Language:        lang.Code(),
		StatusConfigs:   input.StatusConfigs,
		PriorityConfigs: input.PriorityConfigs,
		AutoSuggest:     input.AutoSuggest,
		Now:             now,
	})
	uc.l.Debugf(ctx, "task.usecase.Parse: lang=%s matches=%d title=%q", lang, len(parsed.Matches), parsed.Title)

	if uc.cache != nil {
		uc.cache.Add(key, parsed)
	}
	return task.ParseOutput{Task: parsed, Language: lang}, nil
}

// Suggest completes a partial word against the active vocabulary.
func (uc *implUseCase) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	if err := validateStatuses(input.StatusConfigs); err != nil {
		return task.SuggestOutput{}, err
	}
	if err := validatePriorities(input.PriorityConfigs); err != nil {
		return task.SuggestOutput{}, err
	}
	if input.Language == "" {
		input.Language = uc.defaultLanguage
	}

	suggestions := nlparser.Suggest(nlparser.SuggestInput{
		Prefix:          input.Prefix,
		Language:        input.Language,
		StatusConfigs:   input.StatusConfigs,
		PriorityConfigs: input.PriorityConfigs,
	})
	uc.l.Debugf(ctx, "task.usecase.Suggest: prefix=%q found=%d", input.Prefix, len(suggestions))
	return task.SuggestOutput{Suggestions: suggestions}, nil
}

// Languages lists every supported language with its native name.
func (uc *implUseCase) Languages(ctx context.Context) []task.LanguageInfo {
	langs := nlparser.Languages()
	out := make([]task.LanguageInfo, len(langs))
	for i, l := range langs {
		out[i] = task.LanguageInfo{Code: l.Code(), Name: l.Name()}
	}
	return out
}

func validateStatuses(configs []model.StatusConfig) error {
	seen := make(map[string]bool, len(configs))
	for i, c := range configs {
		key := textmatch.Key(c.Value)
		if key == "" {
			return fmt.Errorf("%w: status %d has no value", task.ErrInvalidConfig, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate status value %q", task.ErrInvalidConfig, c.Value)
		}
		seen[key] = true
	}
	return nil
}

func validatePriorities(configs []model.PriorityConfig) error {
	seen := make(map[string]bool, len(configs))
	for i, c := range configs {
		key := textmatch.Key(c.Value)
		if key == "" {
			return fmt.Errorf("%w: priority %d has no value", task.ErrInvalidConfig, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate priority value %q", task.ErrInvalidConfig, c.Value)
		}
		seen[key] = true
	}
	return nil
}

// cacheKey identifies a parse by everything that can change its result.
func cacheKey(lang nlparser.Language, day string, input task.ParseInput) string {
	vocab, _ := json.Marshal(struct {
		S []model.StatusConfig
		P []model.PriorityConfig
	}{input.StatusConfigs, input.PriorityConfigs})

	return fmt.Sprintf("%s|%s|%t|%s|%s", lang.Code(), day, input.AutoSuggest, vocab, input.Text)
}
