package pos

import (
	"strings"
	"unicode"
)

type Tagger func(tokens []string) []string

// NewTagger returns a lexicon-and-suffix part of speech tagger over
// normalized tokens. It is deliberately small: the feature extraction layer
// only needs reliable verb detection at sentence starts, not full
// treebank-grade tagging.
func NewTagger() Tagger {
	return func(tokens []string) []string {
		tags := make([]string, len(tokens))
		for i, token := range tokens {
			tags[i] = tagToken(token)
		}
		return tags
	}
}

func tagToken(token string) string {
	if token == "" {
		return "NN"
	}
	first := []rune(token)[0]
	if unicode.IsPunct(first) || unicode.IsSymbol(first) {
		return token
	}
	if unicode.IsDigit(first) {
		return "CD"
	}

	lower := strings.ToLower(token)
	if tag, ok := closedClass[lower]; ok {
		return tag
	}
	if irregularPast[lower] {
		return "VBD"
	}
	if verbBase[lower] {
		return "VB"
	}

	switch {
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return "RB"
	case strings.HasSuffix(lower, "ous"), strings.HasSuffix(lower, "ful"),
		strings.HasSuffix(lower, "ive"), strings.HasSuffix(lower, "able"),
		strings.HasSuffix(lower, "ible"):
		return "JJ"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") &&
		verbBase[strings.TrimSuffix(lower, "s")]:
		return "VBZ"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 3:
		return "NNS"
	}

	return "NN"
}
