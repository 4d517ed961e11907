package pipeline

import (
	"errors"
	"fmt"

	"text2crisis.com/drc/features"
	"text2crisis.com/drc/ml"
	"text2crisis.com/drc/types"
)

const modelDocVersion = 1

// ModelDoc is the serializable state of a fitted pipeline: vocabulary,
// weighting statistics and the per-label classifiers. The artifact layer
// treats it as an opaque document.
type ModelDoc struct {
	Version    int                       `json:"version"`
	Candidate  types.Candidate           `json:"candidate"`
	Categories []string                  `json:"categories"`
	Vectorizer *features.TFIDFVectorizer `json:"vectorizer"`
	Learners   []*ml.AdaBoost            `json:"learners"`
}

func (p *Pipeline) Export() (*ModelDoc, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}

	learners := make([]*ml.AdaBoost, len(p.classifier.Learners))
	for i, l := range p.classifier.Learners {
		boost, ok := l.(*ml.AdaBoost)
		if !ok {
			return nil, fmt.Errorf("label %d learner has unexpected type %T", i, l)
		}
		learners[i] = boost
	}

	return &ModelDoc{
		Version:    modelDocVersion,
		Candidate:  p.candidate,
		Categories: p.categories.Names(),
		Vectorizer: p.vectorizer,
		Learners:   learners,
	}, nil
}

// FromDoc restores an inference-capable pipeline from a serialized model
// document.
func FromDoc(doc *ModelDoc, workers int) (*Pipeline, error) {
	if doc.Version != modelDocVersion {
		return nil, fmt.Errorf("unsupported model document version %d", doc.Version)
	}
	if doc.Vectorizer == nil || len(doc.Learners) == 0 {
		return nil, errors.New("model document is incomplete")
	}
	if len(doc.Learners) != len(doc.Categories) {
		return nil, fmt.Errorf("model document has %d learners for %d categories",
			len(doc.Learners), len(doc.Categories))
	}

	p := New(doc.Candidate, types.NewCategorySet(doc.Categories), workers)
	p.vectorizer.Terms = doc.Vectorizer.Terms
	p.vectorizer.IDF = doc.Vectorizer.IDF
	p.vectorizer.Reindex()

	p.classifier.Learners = make([]ml.Learner, len(doc.Learners))
	for i, boost := range doc.Learners {
		p.classifier.Learners[i] = boost
	}

	p.fitted = true
	return p, nil
}
