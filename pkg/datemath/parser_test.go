package datemath_test

import (
	"testing"
	"time"

	"nl-task-parser/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "Tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "German tomorrow",
			relative: "morgen",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Japanese day after tomorrow",
			relative: "明後日",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in  2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "In N days beyond int range",
			relative: "in 99999999999999999999 days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "In N weeks above the cap",
			relative: "in 10001 weeks",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "In N days at the cap",
			relative: "in 10000 days",
			want:     startOfBase.AddDate(0, 0, 10000),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "On Friday",
			relative: "on Friday",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Next week",
			relative: "next week",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "ISO date",
			relative: "2024-06-15",
			want:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Invalid ISO date",
			relative: "2024-13-45",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Unknown phrase",
			relative: "some random day",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantPhrase string
		wantStart  int
		wantDate   time.Time
	}{
		{
			name:       "phrase at end",
			text:       "call mom tomorrow",
			wantOK:     true,
			wantPhrase: "tomorrow",
			wantStart:  9,
			wantDate:   startOfBase.AddDate(0, 0, 1),
		},
		{
			name:       "leftmost wins",
			text:       "today or next friday",
			wantOK:     true,
			wantPhrase: "today",
			wantStart:  0,
			wantDate:   startOfBase,
		},
		{
			name:       "weekday with on",
			text:       "dentist on Friday at noon",
			wantOK:     true,
			wantPhrase: "on Friday",
			wantStart:  8,
			wantDate:   startOfBase.AddDate(0, 0, 2),
		},
		{
			name:       "unspaced script",
			text:       "買い物明日",
			wantOK:     true,
			wantPhrase: "明日",
			wantStart:  9,
			wantDate:   startOfBase.AddDate(0, 0, 1),
		},
		{
			name:       "invalid iso skipped",
			text:       "2024-13-45 then 2024-06-01",
			wantOK:     true,
			wantPhrase: "2024-06-01",
			wantStart:  16,
			wantDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "out of range amount skipped",
			text: "call in 99999999999999999999 days",
		},
		{
			name:       "out of range amount skipped for a later phrase",
			text:       "in 99999999999999999999 days or tomorrow",
			wantOK:     true,
			wantPhrase: "tomorrow",
			wantStart:  32,
			wantDate:   startOfBase.AddDate(0, 0, 1),
		},
		{
			name: "inside word",
			text: "todays news",
		},
		{
			name: "nothing",
			text: "write report",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := parser.Resolve(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if m.Phrase != tt.wantPhrase || m.Start != tt.wantStart {
				t.Errorf("Resolve() got phrase %q at %d, want %q at %d", m.Phrase, m.Start, tt.wantPhrase, tt.wantStart)
			}
			if m.End != m.Start+len(m.Phrase) {
				t.Errorf("Resolve() End = %d, want %d", m.End, m.Start+len(m.Phrase))
			}
			if !m.Date.Equal(tt.wantDate) {
				t.Errorf("Resolve() date = %v, want %v", m.Date, tt.wantDate)
			}
		})
	}
}
