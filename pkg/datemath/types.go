package datemath

import "time"

// Match is a date phrase found inside a longer text.
type Match struct {
	Start  int       // byte offset of the phrase in the searched text
	End    int       // byte offset just past the phrase
	Phrase string    // the phrase as written
	Date   time.Time // start of the resolved day in the parser's timezone
}

// relativeDays maps language-neutral "today / tomorrow" words to day offsets.
var relativeDays = map[string]int{
	"today": 0, "tomorrow": 1, "yesterday": -1, "day after tomorrow": 2,
	"heute": 0, "morgen": 1, "übermorgen": 2, "gestern": -1,
	"hoy": 0, "mañana": 1, "pasado mañana": 2, "ayer": -1,
	"aujourd'hui": 0, "demain": 1, "après-demain": 2,
	"oggi": 0, "domani": 1, "dopodomani": 2, "ieri": -1,
	"hoje": 0, "amanhã": 1, "depois de amanhã": 2, "ontem": -1,
	"vandaag": 0, "overmorgen": 2, "gisteren": -1,
	"сегодня": 0, "завтра": 1, "послезавтра": 2, "вчера": -1,
	"idag": 0, "imorgon": 1, "i morgon": 1, "i dag": 0, "igår": -1,
	"dzisiaj": 0, "dziś": 0, "jutro": 1, "pojutrze": 2, "wczoraj": -1,
}

// unspacedDays are relative day words of scripts written without spaces.
// They are matched without word boundaries.
var unspacedDays = map[string]int{
	"今日": 0, "明日": 1, "明後日": 2, "昨日": -1,
	"今天": 0, "明天": 1, "后天": 2, "昨天": -1,
	"오늘": 0, "내일": 1, "모레": 2, "어제": -1,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

const isoDateLayout = "2006-01-02"
