// Package nlparser turns a free-text task line into the attributes of a task
// record: title, priority, status, dates, recurrence, estimate and
// classification markers.
package nlparser

import (
	"time"

	"nl-task-parser/pkg/textmatch"
)

// DefaultPlaceholder is the title used when every word of a line was consumed.
const DefaultPlaceholder = "Untitled task"

// Parser runs the extraction pipeline. It holds no per-call state and is
// safe for concurrent use.
type Parser struct {
	dates       DateResolver
	placeholder string
	clock       func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithPlaceholder sets the title used for lines that are fully consumed.
func WithPlaceholder(title string) Option {
	return func(p *Parser) {
		if title != "" {
			p.placeholder = title
		}
	}
}

// WithClock sets the reference time source used when Input.Now is zero.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.clock = now
		}
	}
}

// New creates a Parser. A nil dates resolver disables date extraction.
func New(dates DateResolver, opts ...Option) *Parser {
	p := &Parser{
		dates:       dates,
		placeholder: DefaultPlaceholder,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts the task attributes of in.Text. It never fails: anything it
// does not recognise stays in the title.
//
// Extractors run in a fixed order: markers, recurrence, duration, priority,
// status, dates. Each one only removes text.
func (p *Parser) Parse(in Input) ParsedTask {
	pack := Lookup(in.Language)
	now := in.Now
	if now.IsZero() {
		now = p.clock()
	}

	task := ParsedTask{Matches: []Match{}}
	w := NewWorkingText(in.Text)

	markers, w := pack.ExtractMarkers(w)
	task.Tags, task.Contexts, task.Projects = markers.Tags, markers.Contexts, markers.Projects
	task.Matches = append(task.Matches, markers.Matches...)

	if rec, rest, ok := pack.ExtractRecurrence(w); ok {
		w = rest
		task.RecurrenceRule = rec.Rule.String()
		task.Matches = append(task.Matches, Match{Kind: MatchRecurrence, Text: rec.Text})
	}

	if dur, rest, ok := pack.ExtractDuration(w); ok {
		w = rest
		minutes := dur.Minutes
		task.EstimateMinutes = &minutes
		task.Matches = append(task.Matches, Match{Kind: MatchDuration, Text: dur.Text})
	}

	if pr, rest, ok := ResolvePriority(w, pack, in.PriorityConfigs); ok {
		w = rest
		task.Priority = pr.Canonical
		task.Matches = append(task.Matches, Match{Kind: MatchPriority, Text: pr.Text})
	}

	if st, rest, ok := ResolveStatus(w, pack, in.StatusConfigs); ok {
		w = rest
		task.Status = st.Canonical
		task.IsCompleted = st.Completed
		task.Matches = append(task.Matches, Match{Kind: MatchStatus, Text: st.Text})
	}

	dates, w := extractDates(w, pack, p.dates, now)
	if dates.Due != nil {
		task.DueDate = dates.Due
		task.Matches = append(task.Matches, Match{Kind: MatchDueDate, Text: dates.DueText})
	}
	if dates.Scheduled != nil {
		task.ScheduledDate = dates.Scheduled
		task.Matches = append(task.Matches, Match{Kind: MatchScheduledDate, Text: dates.ScheduledText})
	}

	task.Title = w.Title(p.placeholder)

	if in.AutoSuggest && task.Title != p.placeholder {
		task.Suggestions = Suggest(SuggestInput{
			Prefix:          textmatch.LastWord(task.Title),
			Language:        in.Language,
			StatusConfigs:   in.StatusConfigs,
			PriorityConfigs: in.PriorityConfigs,
		})
	}

	return task
}
