package nlparser

import (
	"math"
	"strconv"
	"strings"

	"nl-task-parser/pkg/textmatch"
)

// DurationMatch is the estimate phrase consumed from a task line.
type DurationMatch struct {
	Minutes int
	Text    string
}

// ExtractDuration consumes the first contiguous run of (number, unit) pairs
// and sums it to whole minutes. Later runs and bare numbers are left alone.
func (p *LanguagePack) ExtractDuration(w WorkingText) (DurationMatch, WorkingText, bool) {
	text := w.String()
	loc := p.duration.FindStringSubmatchIndex(text)
	if loc == nil {
		return DurationMatch{}, w, false
	}

	g := p.duration.SubexpIndex("span")
	span := textmatch.Span{Start: loc[2*g], End: loc[2*g+1]}
	phrase := text[span.Start:span.End]

	minutes, ok := p.totalMinutes(phrase)
	if !ok {
		return DurationMatch{}, w, false
	}
	return DurationMatch{Minutes: minutes, Text: phrase}, w.Remove(span.Start, span.End), true
}

// totalMinutes sums every pair of phrase, rounding the total to the nearest minute.
func (p *LanguagePack) totalMinutes(phrase string) (int, bool) {
	numGroup := p.durationPair.SubexpIndex("num")
	unitGroup := p.durationPair.SubexpIndex("unit")

	var total float64
	pairs := p.durationPair.FindAllStringSubmatch(phrase, -1)
	for _, pair := range pairs {
		n, err := strconv.ParseFloat(strings.Replace(pair[numGroup], ",", ".", 1), 64)
		if err != nil {
			return 0, false
		}
		mult, ok := p.durationUnits[textmatch.Key(pair[unitGroup])]
		if !ok {
			return 0, false
		}
		total += n * float64(mult)
	}
	if len(pairs) == 0 || total > math.MaxInt32 {
		return 0, false
	}
	return int(math.Round(total)), true
}
