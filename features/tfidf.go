package features

import (
	"errors"
	"math"
	"sort"

	"text2crisis.com/drc/tokenizer"
)

var ErrNotFitted = errors.New("extractor is not fitted")

// TFIDFVectorizer learns a token vocabulary and smoothed inverse document
// frequency weights from training texts, then maps any text onto weighted
// term counts. Tokens outside the fitted vocabulary are silently ignored;
// the output width never changes after Fit.
type TFIDFVectorizer struct {
	// Terms is the fitted vocabulary in column order; IDF is the weight
	// per term. Both are exported for artifact serialization.
	Terms []string  `json:"terms"`
	IDF   []float64 `json:"idf"`

	// MaxFeatures caps the vocabulary to the most frequent terms
	// (0 = unlimited). MaxDF drops terms appearing in more than the given
	// proportion of training documents (1.0 = keep all).
	MaxFeatures int     `json:"max_features"`
	MaxDF       float64 `json:"max_df"`

	index map[string]int
}

func NewTFIDFVectorizer(maxFeatures int, maxDF float64) *TFIDFVectorizer {
	if maxDF <= 0 {
		maxDF = 1.0
	}
	return &TFIDFVectorizer{MaxFeatures: maxFeatures, MaxDF: maxDF}
}

func (v *TFIDFVectorizer) Fit(texts []string) error {
	if len(texts) == 0 {
		return errors.New("cannot fit vectorizer on empty corpus")
	}

	docFreq := make(map[string]int)
	termFreq := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]bool)
		for _, token := range tokenizer.Tokenize(text) {
			termFreq[token]++
			if !seen[token] {
				docFreq[token]++
				seen[token] = true
			}
		}
	}

	n := len(texts)
	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if v.MaxDF < 1.0 && float64(df) > v.MaxDF*float64(n) {
			continue
		}
		terms = append(terms, term)
	}

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		// most frequent terms first, ties broken by term for determinism
		sort.Slice(terms, func(i, j int) bool {
			if termFreq[terms[i]] != termFreq[terms[j]] {
				return termFreq[terms[i]] > termFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.Terms = terms
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		// smoothed idf, as if one extra document contained every term
		v.IDF[i] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}
	v.Reindex()

	return nil
}

// Reindex rebuilds the term lookup from Terms. Callers restoring a
// vectorizer from a serialized artifact must invoke it before Transform.
func (v *TFIDFVectorizer) Reindex() {
	v.index = make(map[string]int, len(v.Terms))
	for i, term := range v.Terms {
		v.index[term] = i
	}
}

func (v *TFIDFVectorizer) Transform(texts []string) (Matrix, error) {
	if v.index == nil {
		return nil, ErrNotFitted
	}

	out := make(Matrix, len(texts))
	for i, text := range texts {
		row := make([]float64, len(v.Terms))
		for _, token := range tokenizer.Tokenize(text) {
			if j, ok := v.index[token]; ok {
				row[j] += v.IDF[j]
			}
		}
		out[i] = row
	}
	return out, nil
}
