package nlparser

import "sync"

var packSpecs = [numLanguages]*packSpec{
	English:    &englishPack,
	German:     &germanPack,
	Spanish:    &spanishPack,
	French:     &frenchPack,
	Italian:    &italianPack,
	Portuguese: &portuguesePack,
	Dutch:      &dutchPack,
	Russian:    &russianPack,
	Swedish:    &swedishPack,
	Polish:     &polishPack,
	Japanese:   &japanesePack,
	Chinese:    &chinesePack,
	Korean:     &koreanPack,
}

var registry = sync.OnceValue(func() [numLanguages]*LanguagePack {
	var packs [numLanguages]*LanguagePack
	for i, spec := range packSpecs {
		packs[i] = buildPack(Language(i), *spec)
	}
	return packs
})

// Pack returns the pack of l. Out of range values get the English pack.
func Pack(l Language) *LanguagePack {
	if l < 0 || l >= numLanguages {
		l = English
	}
	return registry()[l]
}

// Lookup returns the pack for a language code. It never fails: unknown or
// malformed codes resolve to English.
func Lookup(code string) *LanguagePack {
	return Pack(ParseLanguage(code))
}
