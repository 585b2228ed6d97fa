package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// smallWords are the closed-class words left lower-case inside a title:
// articles, coordinating conjunctions and short prepositions.
var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "so": {}, "yet": {},
	"as": {}, "at": {}, "by": {}, "in": {}, "of": {}, "off": {}, "on": {},
	"per": {}, "to": {}, "up": {}, "via": {}, "vs": {},
}

// TitleCase normalizes a model-produced title: words that arrived
// lower-cased get their first letter raised, except small words in the
// middle of the title. Words the model already capitalized, including
// acronyms, pass through untouched.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsLower(first) {
			continue
		}
		if _, small := smallWords[strings.ToLower(word)]; small && i != 0 && i != len(words)-1 {
			continue
		}
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + word[size:]
}
