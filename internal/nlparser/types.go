package nlparser

import (
	"time"

	"nl-task-parser/internal/model"
	"nl-task-parser/pkg/datemath"
)

// Input is one task line to parse.
type Input struct {
	Text            string
	Language        string // BCP 47 code, unknown codes fall back to English
	StatusConfigs   []model.StatusConfig
	PriorityConfigs []model.PriorityConfig
	AutoSuggest     bool
	Now             time.Time // reference time for relative dates, zero means the parser clock
}

// MatchKind names the field a consumed span was assigned to.
type MatchKind string

const (
	MatchTag           MatchKind = "tag"
	MatchContext       MatchKind = "context"
	MatchProject       MatchKind = "project"
	MatchRecurrence    MatchKind = "recurrence"
	MatchDuration      MatchKind = "duration"
	MatchPriority      MatchKind = "priority"
	MatchStatus        MatchKind = "status"
	MatchDueDate       MatchKind = "due_date"
	MatchScheduledDate MatchKind = "scheduled_date"
)

// Match is a span of the input that was consumed by an extractor.
type Match struct {
	Kind MatchKind `json:"kind"`
	Text string    `json:"text"`
}

// ParsedTask is the result of parsing one task line. Optional fields are
// left at their zero value (nil or "") when nothing was recognised.
type ParsedTask struct {
	Title           string     `json:"title"`
	Priority        string     `json:"priority,omitempty"`
	Status          string     `json:"status,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	ScheduledDate   *time.Time `json:"scheduled_date,omitempty"`
	EstimateMinutes *int       `json:"estimate_minutes,omitempty"`
	RecurrenceRule  string     `json:"recurrence_rule,omitempty"`
	Tags            []string   `json:"tags"`
	Contexts        []string   `json:"contexts"`
	Projects        []string   `json:"projects"`
	IsCompleted     bool       `json:"is_completed"`
	Matches         []Match    `json:"matches"`
	Suggestions     []string   `json:"suggestions,omitempty"`
}

// DateMatch is a resolved date phrase inside the remaining text.
type DateMatch = datemath.Match

// DateResolver finds and resolves the leftmost date phrase of text.
// *datemath.Parser implements it.
type DateResolver interface {
	Resolve(text string, now time.Time) (DateMatch, bool)
}
