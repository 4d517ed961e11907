package nlp

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not close a sentence
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "st": true,
	"no": true, "vs": true, "etc": true, "approx": true,
	"e.g": true, "i.e": true,
}

// Sentences splits text into sentence spans. Boundaries are terminal
// punctuation runs (. ! ?) followed by whitespace, and blank lines. This is
// a rule-based detector; the corpus is short informal messages, not prose
// with deep abbreviation structure.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	emit := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		switch r {
		case '.', '!', '?':
			// swallow a terminal run like "?!" or "..."
			for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
				i++
				current.WriteRune(runes[i])
			}
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if r == '.' && isAbbreviation(current.String()) {
					continue
				}
				emit()
			}
		case '\n':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				emit()
			}
		}
	}
	emit()

	return sentences
}

func isAbbreviation(chunk string) bool {
	chunk = strings.TrimRight(strings.TrimSpace(chunk), ".")
	idx := strings.LastIndexFunc(chunk, unicode.IsSpace)
	last := strings.ToLower(chunk[idx+1:])
	return abbreviations[last]
}
