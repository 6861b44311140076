package textmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nl-task-parser/pkg/textmatch"
)

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		phrase  string
		bounded bool
		want    textmatch.Span
		wantOK  bool
	}{
		{name: "case insensitive", text: "Call Mom URGENT", phrase: "urgent", bounded: true, want: textmatch.Span{Start: 9, End: 15}, wantOK: true},
		{name: "inside word rejected", text: "insurgent plan", phrase: "urgent", bounded: true},
		{name: "inside word unbounded", text: "insurgent plan", phrase: "urgent", want: textmatch.Span{Start: 3, End: 9}, wantOK: true},
		{name: "whitespace run", text: "this is high   priority", phrase: "high priority", bounded: true, want: textmatch.Span{Start: 8, End: 23}, wantOK: true},
		{name: "unicode fold", text: "Wichtig: HOHE PRIORITÄT", phrase: "hohe priorität", bounded: true, want: textmatch.Span{Start: 9, End: 24}, wantOK: true},
		{name: "cyrillic", text: "Позвонить СРОЧНО", phrase: "срочно", bounded: true, want: textmatch.Span{Start: 19, End: 31}, wantOK: true},
		{name: "unspaced script", text: "買い物明日", phrase: "明日", bounded: true, want: textmatch.Span{Start: 9, End: 15}, wantOK: true},
		{name: "punctuation boundary", text: "(done)", phrase: "done", bounded: true, want: textmatch.Span{Start: 1, End: 5}, wantOK: true},
		{name: "empty phrase", text: "abc", phrase: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := textmatch.IndexFold(tt.text, tt.phrase, 0, tt.bounded)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIndexAllFold(t *testing.T) {
	spans := textmatch.IndexAllFold("due Done DONE undone", "done", true)
	assert.Equal(t, []textmatch.Span{{Start: 4, End: 8}, {Start: 9, End: 13}}, spans)
}

func TestCut(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       string
	}{
		{name: "middle", text: "task 2 hours here", start: 5, end: 12, want: "task here"},
		{name: "leading", text: "urgent  call mom", start: 0, end: 6, want: "call mom"},
		{name: "trailing", text: "call mom  tomorrow", start: 10, end: 18, want: "call mom"},
		{name: "whole", text: "done", start: 0, end: 4, want: ""},
		{name: "unspaced", text: "買い物明日行く", start: 9, end: 15, want: "買い物行く"},
		{name: "invalid span", text: "abc", start: 2, end: 1, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textmatch.Cut(tt.text, tt.start, tt.end))
		})
	}
}

func TestNormalizeAndKey(t *testing.T) {
	assert.Equal(t, "in progress", textmatch.Normalize("in-progress"))
	assert.Equal(t, "On Hold", textmatch.Normalize("  On__Hold "))
	assert.Equal(t, textmatch.Key("In-Progress"), textmatch.Key("in progress"))
}

func TestLastWord(t *testing.T) {
	assert.Equal(t, "hig", textmatch.LastWord("call mom hig"))
	assert.Equal(t, "", textmatch.LastWord("call mom "))
	assert.Equal(t, "solo", textmatch.LastWord("solo"))
}
