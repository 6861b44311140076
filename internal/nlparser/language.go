package nlparser

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is one of the supported vocabulary languages.
type Language int

const (
	English Language = iota
	German
	Spanish
	French
	Italian
	Portuguese
	Dutch
	Russian
	Swedish
	Polish
	Japanese
	Chinese
	Korean

	numLanguages
)

var languageCodes = [numLanguages]string{
	English:    "en",
	German:     "de",
	Spanish:    "es",
	French:     "fr",
	Italian:    "it",
	Portuguese: "pt",
	Dutch:      "nl",
	Russian:    "ru",
	Swedish:    "sv",
	Polish:     "pl",
	Japanese:   "ja",
	Chinese:    "zh",
	Korean:     "ko",
}

// Code returns the ISO 639-1 code of l.
func (l Language) Code() string {
	if l < 0 || l >= numLanguages {
		return languageCodes[English]
	}
	return languageCodes[l]
}

func (l Language) String() string { return l.Code() }

// Name returns the language name written in the language itself, e.g. "Deutsch".
func (l Language) Name() string {
	return display.Self.Name(language.Make(l.Code()))
}

// Languages returns every supported language in declaration order.
func Languages() []Language {
	out := make([]Language, numLanguages)
	for i := range out {
		out[i] = Language(i)
	}
	return out
}

// ParseLanguage maps a BCP 47 style code ("de", "pt-BR", "zh_Hant", "EN") to a
// supported Language. Anything it cannot map, including malformed codes, is English.
func ParseLanguage(code string) Language {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return English
	}

	tag, err := language.Parse(code)
	if err != nil {
		return English
	}
	base, conf := tag.Base()
	if conf == language.No {
		return English
	}

	for i, c := range languageCodes {
		if c == base.String() {
			return Language(i)
		}
	}
	return English
}
