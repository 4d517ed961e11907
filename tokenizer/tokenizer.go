package tokenizer

import (
	"strings"
	"sync"
	"unicode"

	"text2crisis.com/drc/lemmatizer"
)

var (
	setupOnce sync.Once
	analyzer  lemmatizer.MorphologicalAnalyzer
)

// setup loads the lemmatization tables exactly once; per-call tokenization
// never touches initialization state again.
func setup() {
	analyzer = lemmatizer.NewMorphologicalAnalyzer(lemmatizer.DefaultRules())
}

// Tokenize splits text into normalized tokens: lowercased, lemmatized and
// trimmed. Punctuation runs are emitted as single-rune tokens. Pure and
// deterministic for a given input.
func Tokenize(text string) []string {
	setupOnce.Do(setup)

	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		token := analyzer(word.String())
		if token != "" {
			tokens = append(tokens, token)
		}
		word.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word.WriteRune(unicode.ToLower(r))
		case r == '\'' && word.Len() > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			// internal apostrophe ("don't")
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				tokens = append(tokens, string(r))
			}
		}
	}
	flush()

	return tokens
}

// TokenizeWords is Tokenize with punctuation tokens removed.
func TokenizeWords(text string) []string {
	all := Tokenize(text)
	words := all[:0:0]
	for _, tok := range all {
		r := []rune(tok)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			words = append(words, tok)
		}
	}
	return words
}
