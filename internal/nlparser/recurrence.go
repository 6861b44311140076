package nlparser

import (
	"strconv"

	"nl-task-parser/pkg/textmatch"
)

// Rule is a recurrence rule in the FREQ=<freq>[;INTERVAL=<n>] grammar.
type Rule struct {
	Freq     Frequency
	Interval int
}

// String renders the rule. INTERVAL is written only when it is above 1.
func (r Rule) String() string {
	if r.Freq == "" {
		return ""
	}
	s := "FREQ=" + string(r.Freq)
	if r.Interval > 1 {
		s += ";INTERVAL=" + strconv.Itoa(r.Interval)
	}
	return s
}

// RecurrenceMatch is the recurrence phrase consumed from a task line.
type RecurrenceMatch struct {
	Rule Rule
	Kind PatternKind
	Text string
}

// ExtractRecurrence evaluates the pack's recurrence patterns in declared
// order and consumes the first phrase that yields a rule. Phrases with a zero
// interval ("every 0 days") are not recurrences and are skipped.
func (p *LanguagePack) ExtractRecurrence(w WorkingText) (RecurrenceMatch, WorkingText, bool) {
	text := w.String()
	for _, cp := range p.recurrence {
		for _, loc := range cp.re.FindAllStringSubmatchIndex(text, -1) {
			rule, ok := p.ruleFor(cp, text, loc)
			if !ok {
				continue
			}
			span := textmatch.Span{Start: loc[2*cp.spanGroup], End: loc[2*cp.spanGroup+1]}
			m := RecurrenceMatch{Rule: rule, Kind: cp.Kind, Text: text[span.Start:span.End]}
			return m, w.Remove(span.Start, span.End), true
		}
	}
	return RecurrenceMatch{}, w, false
}

func (p *LanguagePack) ruleFor(cp compiledRecurrence, text string, loc []int) (Rule, bool) {
	if cp.Kind == KindRecurrenceFixed {
		interval := cp.Interval
		if interval == 0 {
			interval = 1
		}
		return Rule{Freq: cp.Freq, Interval: interval}, true
	}

	if cp.unitGroup < 0 || loc[2*cp.unitGroup] < 0 {
		return Rule{}, false
	}
	freq, ok := p.recurrenceUnits[textmatch.Key(text[loc[2*cp.unitGroup]:loc[2*cp.unitGroup+1]])]
	if !ok {
		return Rule{}, false
	}

	switch cp.Kind {
	case KindRecurrenceInterval:
		if cp.nGroup < 0 || loc[2*cp.nGroup] < 0 {
			return Rule{}, false
		}
		n, err := strconv.Atoi(text[loc[2*cp.nGroup]:loc[2*cp.nGroup+1]])
		if err != nil || n < 1 {
			return Rule{}, false
		}
		return Rule{Freq: freq, Interval: n}, true
	case KindRecurrenceOther:
		return Rule{Freq: freq, Interval: 2}, true
	default:
		return Rule{Freq: freq, Interval: 1}, true
	}
}
