package http

import (
	"errors"
	"strings"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/nlparser"
	"nl-task-parser/internal/task"
	"nl-task-parser/pkg/response"
)

var (
	errEmptyText     = errors.New("text is empty")
	errEmptyPrefix   = errors.New("prefix is required")
	errMissingStatus = errors.New("every status config needs a value")
	errMissingPrio   = errors.New("every priority config needs a value")
)

// --- Request DTOs ---

type parseReq struct {
	Text            string                 `json:"text"             binding:"required"`
	Language        string                 `json:"language"`
	AutoSuggest     bool                   `json:"auto_suggest_enabled"`
	StatusConfigs   []model.StatusConfig   `json:"status_configs"`
	PriorityConfigs []model.PriorityConfig `json:"priority_configs"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	for _, c := range r.StatusConfigs {
		if strings.TrimSpace(c.Value) == "" {
			return errMissingStatus
		}
	}
	for _, c := range r.PriorityConfigs {
		if strings.TrimSpace(c.Value) == "" {
			return errMissingPrio
		}
	}
	return nil
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{
		Text:            r.Text,
		Language:        r.Language,
		StatusConfigs:   r.StatusConfigs,
		PriorityConfigs: r.PriorityConfigs,
		AutoSuggest:     r.AutoSuggest,
	}
}

// ---

type suggestReq struct {
	Prefix   string `form:"prefix"`
	Language string `form:"language"`
}

func (r suggestReq) validate() error {
	if strings.TrimSpace(r.Prefix) == "" {
		return errEmptyPrefix
	}
	return nil
}

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{
		Prefix:   r.Prefix,
		Language: r.Language,
	}
}

// --- Response DTOs ---

type matchResp struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type taskResp struct {
	Title           string         `json:"title"`
	Priority        string         `json:"priority,omitempty"`
	Status          string         `json:"status,omitempty"`
	DueDate         *response.Date `json:"due_date"`
	ScheduledDate   *response.Date `json:"scheduled_date"`
	EstimateMinutes *int           `json:"estimate_minutes"`
	RecurrenceRule  string         `json:"recurrence_rule,omitempty"`
	Tags            []string       `json:"tags"`
	Contexts        []string       `json:"contexts"`
	Projects        []string       `json:"projects"`
	IsCompleted     bool           `json:"is_completed"`
	Matches         []matchResp    `json:"matches"`
	Suggestions     []string       `json:"suggestions,omitempty"`
}

func newTaskResp(t nlparser.ParsedTask) taskResp {
	matches := make([]matchResp, len(t.Matches))
	for i, m := range t.Matches {
		matches[i] = matchResp{Kind: string(m.Kind), Text: m.Text}
	}

	resp := taskResp{
		Title:           t.Title,
		Priority:        t.Priority,
		Status:          t.Status,
		EstimateMinutes: t.EstimateMinutes,
		RecurrenceRule:  t.RecurrenceRule,
		Tags:            t.Tags,
		Contexts:        t.Contexts,
		Projects:        t.Projects,
		IsCompleted:     t.IsCompleted,
		Matches:         matches,
		Suggestions:     t.Suggestions,
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.ScheduledDate != nil {
		d := response.Date(*t.ScheduledDate)
		resp.ScheduledDate = &d
	}
	return resp
}

type parseResp struct {
	Task     taskResp `json:"task"`
	Language string   `json:"language"`
	Cached   bool     `json:"cached"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Task:     newTaskResp(out.Task),
		Language: out.Language.Code(),
		Cached:   out.Cached,
	}
}

type suggestResp struct {
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	s := out.Suggestions
	if s == nil {
		s = []string{}
	}
	return suggestResp{Suggestions: s}
}

type languageResp struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type languagesResp struct {
	Languages []languageResp `json:"languages"`
}

func (h *handler) newLanguagesResp(langs []task.LanguageInfo) languagesResp {
	out := make([]languageResp, len(langs))
	for i, l := range langs {
		out[i] = languageResp{Code: l.Code, Name: l.Name}
	}
	return languagesResp{Languages: out}
}
