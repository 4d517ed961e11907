package features

import (
	"strings"

	"text2crisis.com/drc/nlp"
	"text2crisis.com/drc/pos"
	"text2crisis.com/drc/tokenizer"
)

// retweetMarker is checked against the leading token of a sentence; a
// retweet behaves like an imperative for routing purposes.
const retweetMarker = "RT"

// StartingVerb emits one boolean column: whether any sentence of the text
// opens with a base-form or present-tense verb, or with the retweet marker.
// It is stateless; Fit exists only to satisfy the Extractor contract.
type StartingVerb struct {
	tagger pos.Tagger
}

func NewStartingVerb() *StartingVerb {
	return &StartingVerb{tagger: pos.NewTagger()}
}

func (sv *StartingVerb) Fit(texts []string) error {
	return nil
}

func (sv *StartingVerb) Transform(texts []string) (Matrix, error) {
	out := make(Matrix, len(texts))
	for i, text := range texts {
		val := 0.0
		if sv.startingVerb(text) {
			val = 1.0
		}
		out[i] = []float64{val}
	}
	return out, nil
}

func (sv *StartingVerb) startingVerb(text string) bool {
	for _, sentence := range nlp.Sentences(text) {
		tokens := tokenizer.Tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		tags := sv.tagger(tokens)
		if tags[0] == "VB" || tags[0] == "VBP" || strings.EqualFold(tokens[0], retweetMarker) {
			return true
		}
	}
	return false
}
