package nlparser_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/nlparser"
	"nl-task-parser/pkg/textmatch"
)

func TestParse_English(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		in   nlparser.Input
		want nlparser.ParsedTask
	}{
		{
			name: "every field at once",
			in:   nlparser.Input{Text: "Practice guitar 30 minutes every day high priority tomorrow"},
			want: nlparser.ParsedTask{
				Title:           "Practice guitar",
				Priority:        nlparser.PriorityHigh,
				ScheduledDate:   day(2024, time.March, 14),
				EstimateMinutes: minutes(30),
				RecurrenceRule:  "FREQ=DAILY",
			},
		},
		{
			name: "duration pairs are summed",
			in:   nlparser.Input{Text: "task 2 hours 30 minutes"},
			want: nlparser.ParsedTask{Title: "task", EstimateMinutes: minutes(150)},
		},
		{
			name: "duration with joiner and comma",
			in:   nlparser.Input{Text: "call 1h, 15m"},
			want: nlparser.ParsedTask{Title: "call", EstimateMinutes: minutes(75)},
		},
		{
			name: "decimal duration",
			in:   nlparser.Input{Text: "read 1.5 hours"},
			want: nlparser.ParsedTask{Title: "read", EstimateMinutes: minutes(90)},
		},
		{
			name: "zero estimate is kept",
			in:   nlparser.Input{Text: "stretch 0 minutes"},
			want: nlparser.ParsedTask{Title: "stretch", EstimateMinutes: minutes(0)},
		},
		{
			name: "every N months",
			in:   nlparser.Input{Text: "meeting every 2 months"},
			want: nlparser.ParsedTask{Title: "meeting", RecurrenceRule: "FREQ=MONTHLY;INTERVAL=2"},
		},
		{
			name: "out of range relative amount stays in title",
			in:   nlparser.Input{Text: "finish report in 99999999999999999999 days"},
			want: nlparser.ParsedTask{Title: "finish report in 99999999999999999999 days"},
		},
		{
			name: "repeated keyword is removed everywhere",
			in:   nlparser.Input{Text: "Fix the urgent bug before release urgent"},
			want: nlparser.ParsedTask{Title: "Fix the bug before release", Priority: nlparser.PriorityUrgent},
		},
		{
			name: "punctuation after markers goes with them",
			in:   nlparser.Input{Text: "x #tag, @home."},
			want: nlparser.ParsedTask{Title: "x", Tags: []string{"tag"}, Contexts: []string{"home"}},
		},
		{
			name: "every other day",
			in:   nlparser.Input{Text: "cleanup every other day"},
			want: nlparser.ParsedTask{Title: "cleanup", RecurrenceRule: "FREQ=DAILY;INTERVAL=2"},
		},
		{
			name: "every 0 days is not a recurrence",
			in:   nlparser.Input{Text: "water plants every 0 days"},
			want: nlparser.ParsedTask{Title: "water plants every 0 days"},
		},
		{
			name: "fixed biweekly",
			in:   nlparser.Input{Text: "sync with Ana biweekly"},
			want: nlparser.ParsedTask{Title: "sync with Ana", RecurrenceRule: "FREQ=WEEKLY;INTERVAL=2"},
		},
		{
			name: "done status completes the task",
			in:   nlparser.Input{Text: "Write tests done"},
			want: nlparser.ParsedTask{Title: "Write tests", Status: nlparser.StatusDone, IsCompleted: true},
		},
		{
			name: "due marker wins over position",
			in:   nlparser.Input{Text: "Submit report tomorrow due friday"},
			want: nlparser.ParsedTask{
				Title:         "Submit report",
				DueDate:       day(2024, time.March, 15),
				ScheduledDate: day(2024, time.March, 14),
			},
		},
		{
			name: "two word due marker",
			in:   nlparser.Input{Text: "due by 2024-04-01 Pay rent"},
			want: nlparser.ParsedTask{Title: "Pay rent", DueDate: day(2024, time.April, 1)},
		},
		{
			name: "markers",
			in:   nlparser.Input{Text: "Email @home about #Work and #work +[[Big Project]] +garden a@b.com #123"},
			want: nlparser.ParsedTask{
				Title:    "Email about and a@b.com #123",
				Tags:     []string{"Work"},
				Contexts: []string{"home"},
				Projects: []string{"Big Project", "garden"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Now = refNow
			got := p.Parse(tt.in)

			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Priority, got.Priority)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.DueDate, got.DueDate)
			assert.Equal(t, tt.want.ScheduledDate, got.ScheduledDate)
			assert.Equal(t, tt.want.EstimateMinutes, got.EstimateMinutes)
			assert.Equal(t, tt.want.RecurrenceRule, got.RecurrenceRule)
			assert.Equal(t, tt.want.IsCompleted, got.IsCompleted)
			assert.ElementsMatch(t, tt.want.Tags, got.Tags)
			assert.ElementsMatch(t, tt.want.Contexts, got.Contexts)
			assert.Equal(t, nonNil(tt.want.Projects), got.Projects)
		})
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func TestParse_UserConfigReplacesBuiltInVocabulary(t *testing.T) {
	p := newParser(t)
	statuses := []model.StatusConfig{
		{ID: "1", Value: "todo", Label: "To Do"},
		{ID: "2", Value: "in-progress", Label: "Working"},
		{ID: "3", Value: "shipped", Label: "Shipped", IsCompleted: true},
	}

	t.Run("configured vocabulary without the word", func(t *testing.T) {
		got := p.Parse(nlparser.Input{Text: "Task is blocked by dependencies", StatusConfigs: statuses, Now: refNow})
		assert.Empty(t, got.Status)
		assert.Equal(t, "Task is blocked by dependencies", got.Title)
	})

	t.Run("built-in vocabulary", func(t *testing.T) {
		got := p.Parse(nlparser.Input{Text: "Task is blocked by dependencies", Now: refNow})
		assert.Equal(t, nlparser.StatusWaiting, got.Status)
		assert.Equal(t, "Task is by dependencies", got.Title)
	})

	t.Run("normalised config value", func(t *testing.T) {
		got := p.Parse(nlparser.Input{Text: "Refactor parser in progress", StatusConfigs: statuses, Now: refNow})
		assert.Equal(t, "in-progress", got.Status)
		assert.Equal(t, "Refactor parser", got.Title)
	})

	t.Run("config completion flag", func(t *testing.T) {
		got := p.Parse(nlparser.Input{Text: "Feature shipped", StatusConfigs: statuses, Now: refNow})
		assert.Equal(t, "shipped", got.Status)
		assert.True(t, got.IsCompleted)
		assert.Equal(t, "Feature", got.Title)
	})

	t.Run("priority follows the same rule", func(t *testing.T) {
		priorities := []model.PriorityConfig{{ID: "a", Value: "p1", Label: "P1", Weight: 3}}

		got := p.Parse(nlparser.Input{Text: "Fix urgent bug", PriorityConfigs: priorities, Now: refNow})
		assert.Empty(t, got.Priority)
		assert.Equal(t, "Fix urgent bug", got.Title)

		got = p.Parse(nlparser.Input{Text: "Fix p1 bug", PriorityConfigs: priorities, Now: refNow})
		assert.Equal(t, "p1", got.Priority)
		assert.Equal(t, "Fix bug", got.Title)
	})

	t.Run("longest configured label wins", func(t *testing.T) {
		priorities := []model.PriorityConfig{
			{Value: "high", Label: "High"},
			{Value: "very-high", Label: "Very High"},
		}
		got := p.Parse(nlparser.Input{Text: "Fix bug very high", PriorityConfigs: priorities, Now: refNow})
		assert.Equal(t, "very-high", got.Priority)
		assert.Equal(t, "Fix bug", got.Title)
	})
}

func TestParse_Determinism(t *testing.T) {
	p := newParser(t)
	in := nlparser.Input{Text: "Plan sprint #work @office every 2 weeks 1h urgent due monday", Now: refNow}

	first := p.Parse(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Parse(in))
	}
}

func TestParse_TitleHoldsNoConsumedSpan(t *testing.T) {
	p := newParser(t)
	inputs := []string{
		"Practice guitar 30 minutes every day high priority tomorrow",
		"urgent urgent deploy fix #ops",
		"Plan sprint #work @office every 2 weeks 1h urgent due monday",
		"Write tests done today",
		"Pay rent due by 2024-04-01 monthly",
	}

	for _, text := range inputs {
		got := p.Parse(nlparser.Input{Text: text, Now: refNow})
		require.NotEmpty(t, got.Matches, text)
		for _, m := range got.Matches {
			_, found := textmatch.IndexFold(got.Title, m.Text, 0, true)
			assert.False(t, found, "%q: %s span %q left in title %q", text, m.Kind, m.Text, got.Title)
		}
	}
}

func TestParse_LanguageFallback(t *testing.T) {
	p := newParser(t)
	inputs := []string{
		"Practice guitar 30 minutes every day high priority tomorrow",
		"Task is blocked by dependencies",
		"Buy milk",
	}

	for _, text := range inputs {
		en := p.Parse(nlparser.Input{Text: text, Language: "en", Now: refNow})
		for _, code := range []string{"xx", "", "not a language", "EN-us"} {
			assert.Equal(t, en, p.Parse(nlparser.Input{Text: text, Language: code, Now: refNow}), "code %q", code)
		}
	}
}

func TestParse_RoundTripOnEmptyMatch(t *testing.T) {
	p := newParser(t)

	got := p.Parse(nlparser.Input{Text: "  Call Bob about the report  ", Now: refNow})

	assert.Equal(t, "Call Bob about the report", got.Title)
	assert.Empty(t, got.Priority)
	assert.Empty(t, got.Status)
	assert.Nil(t, got.DueDate)
	assert.Nil(t, got.ScheduledDate)
	assert.Nil(t, got.EstimateMinutes)
	assert.Empty(t, got.RecurrenceRule)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Contexts)
	assert.Empty(t, got.Projects)
	assert.False(t, got.IsCompleted)
	assert.Empty(t, got.Matches)
}

func TestParse_Placeholder(t *testing.T) {
	got := newParser(t).Parse(nlparser.Input{Text: "#work every day", Now: refNow})
	assert.Equal(t, nlparser.DefaultPlaceholder, got.Title)

	got = newParser(t, nlparser.WithPlaceholder("(no title)")).Parse(nlparser.Input{Text: "   ", Now: refNow})
	assert.Equal(t, "(no title)", got.Title)
}

func TestParse_Clock(t *testing.T) {
	p := newParser(t, nlparser.WithClock(func() time.Time { return refNow }))

	got := p.Parse(nlparser.Input{Text: "Dentist tomorrow"})

	assert.Equal(t, day(2024, time.March, 14), got.ScheduledDate)
}

func TestParse_NoDateResolver(t *testing.T) {
	p := nlparser.New(nil)

	got := p.Parse(nlparser.Input{Text: "Dentist tomorrow urgent", Now: refNow})

	assert.Nil(t, got.ScheduledDate)
	assert.Equal(t, "Dentist tomorrow", got.Title)
	assert.Equal(t, nlparser.PriorityUrgent, got.Priority)
}

func TestParse_AutoSuggest(t *testing.T) {
	p := newParser(t)
	in := nlparser.Input{Text: "Call mom imp", Now: refNow}

	plain := p.Parse(in)
	in.AutoSuggest = true
	suggested := p.Parse(in)

	assert.Equal(t, []string{"important"}, suggested.Suggestions)
	assert.Nil(t, plain.Suggestions)

	suggested.Suggestions = nil
	assert.Equal(t, plain, suggested)
}

func TestParse_Concurrent(t *testing.T) {
	p := newParser(t)
	inputs := []nlparser.Input{
		{Text: "Practice guitar 30 minutes every day high priority tomorrow", Now: refNow},
		{Text: "Bericht schreiben jeden Tag dringend morgen", Language: "de", Now: refNow},
		{Text: "レポート提出 毎週 1時間30分 緊急", Language: "ja", Now: refNow},
		{Text: "Позвонить маме каждые 2 недели срочно", Language: "ru", Now: refNow},
	}
	want := make([]nlparser.ParsedTask, len(inputs))
	for i, in := range inputs {
		want[i] = p.Parse(in)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				k := (g + i) % len(inputs)
				assert.Equal(t, want[k], p.Parse(inputs[k]))
			}
		}(g)
	}
	wg.Wait()
}
