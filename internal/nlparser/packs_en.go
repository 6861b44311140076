package nlparser

var englishPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"urgent":          PriorityUrgent,
		"critical":        PriorityUrgent,
		"asap":            PriorityUrgent,
		"high priority":   PriorityHigh,
		"important":       PriorityHigh,
		"medium priority": PriorityNormal,
		"normal priority": PriorityNormal,
		"low priority":    PriorityLow,
	},
	status: map[string]string{
		"todo":        StatusOpen,
		"to do":       StatusOpen,
		"to-do":       StatusOpen,
		"in progress": StatusInProgress,
		"in-progress": StatusInProgress,
		"doing":       StatusInProgress,
		"started":     StatusInProgress,
		"done":        StatusDone,
		"completed":   StatusDone,
		"finished":    StatusDone,
		"cancelled":   StatusCancelled,
		"canceled":    StatusCancelled,
		"waiting":     StatusWaiting,
		"blocked":     StatusWaiting,
		"on hold":     StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"day": Daily, "days": Daily,
		"week": Weekly, "weeks": Weekly,
		"month": Monthly, "months": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `(?:every|each) {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `(?:every|each) other {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `(?:every|each) {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `biweekly|fortnightly`, Freq: Weekly, Interval: 2},
		{Kind: KindRecurrenceFixed, Pattern: `daily|everyday`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `weekly`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `monthly`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"hours": 60, "hour": 60, "hrs": 60, "hr": 60, "h": 60,
		"minutes": 1, "minute": 1, "mins": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"and"},
	dueMarkers: []string{"due", "due on", "due by", "by", "deadline"},
}
