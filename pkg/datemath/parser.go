package datemath

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Parser converts date phrases to absolute days and finds them inside free text.
// It is safe for concurrent use.
type Parser struct {
	location *time.Location
	bounded  *regexp.Regexp
	unspaced *regexp.Regexp
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{
		location: loc,
		bounded:  compileBounded(),
		unspaced: compileUnspaced(),
	}, nil
}

func compileBounded() *regexp.Regexp {
	days := make([]string, 0, len(weekdays))
	for d := range weekdays {
		days = append(days, d)
	}
	sort.Strings(days)
	weekday := strings.Join(days, "|")

	alts := []string{
		`\d{4}-\d{2}-\d{2}`,
		`in\s+\d+\s+(?:days?|weeks?|months?)`,
		`next\s+(?:week|month|` + weekday + `)`,
		`(?:on\s+)?(?:` + weekday + `)`,
	}
	alts = append(alts, phraseAlternation(relativeDays)...)

	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(?P<phrase>` + strings.Join(alts, "|") + `)(?:[^\p{L}\p{N}_]|$)`)
}

func compileUnspaced() *regexp.Regexp {
	return regexp.MustCompile(`(?P<phrase>` + strings.Join(phraseAlternation(unspacedDays), "|") + `)`)
}

// phraseAlternation quotes the keys of m, longest first, spaces matching any whitespace run.
func phraseAlternation(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strings.ReplaceAll(regexp.QuoteMeta(k), " ", `\s+`)
	}
	return out
}

// Resolve finds the leftmost date phrase in text and resolves it against now.
// Phrases that look like dates but do not resolve (e.g. "2024-13-45") are skipped.
func (p *Parser) Resolve(text string, now time.Time) (Match, bool) {
	for from := 0; from < len(text); {
		start, end, ok := p.find(text, from)
		if !ok {
			return Match{}, false
		}

		phrase := text[start:end]
		date, err := p.Parse(phrase, now)
		if err == nil {
			return Match{Start: start, End: end, Phrase: phrase, Date: date}, true
		}
		from = end
	}
	return Match{}, false
}

// find returns the leftmost phrase from either expression at or after from.
func (p *Parser) find(text string, from int) (int, int, bool) {
	start, end, found := -1, -1, false
	for _, re := range []*regexp.Regexp{p.bounded, p.unspaced} {
		loc := re.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			continue
		}
		g := re.SubexpIndex("phrase")
		s, e := loc[2*g]+from, loc[2*g+1]+from
		if !found || s < start {
			start, end, found = s, e, true
		}
	}
	return start, end, found
}

// Parse converts a date phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	if offset, ok := relativeDays[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}
	if offset, ok := unspacedDays[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	if d, err := time.ParseInLocation(isoDateLayout, relative, p.location); err == nil {
		return d, nil
	} else if looksISO(relative) {
		return baseTime, fmt.Errorf("invalid date %q: %w", relative, err)
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	switch relative {
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	// Handle "next <weekday>", "on <weekday>" and a bare weekday
	relative = strings.TrimPrefix(relative, "on ")
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}
	if _, ok := weekdays[relative]; ok {
		return p.parseNextWeekday("next "+relative, baseTime)
	}

	return baseTime, fmt.Errorf("unknown date phrase: %q", relative)
}

func looksISO(s string) bool {
	return len(s) == len(isoDateLayout) && s[4] == '-' && s[7] == '-'
}

// maxRelativeAmount bounds "in N units" so the resulting date stays meaningful.
const maxRelativeAmount = 10000

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxRelativeAmount {
		return baseTime, fmt.Errorf("amount out of range: %q", matches[1])
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
