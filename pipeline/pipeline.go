package pipeline

import (
	"errors"
	"fmt"

	"text2crisis.com/drc/features"
	"text2crisis.com/drc/ml"
	"text2crisis.com/drc/types"
)

var ErrNotFitted = errors.New("pipeline is not fitted")

// Pipeline composes the feature union (weighted text vectors + the
// starting-verb signal) with a multi-output AdaBoost classifier. The
// category set travels with the pipeline so prediction columns can never
// drift from their names.
type Pipeline struct {
	candidate  types.Candidate
	categories types.CategorySet

	vectorizer *features.TFIDFVectorizer
	union      *features.Union
	classifier *ml.MultiOutput

	fitted bool
}

func New(candidate types.Candidate, categories types.CategorySet, workers int) *Pipeline {
	vectorizer := features.NewTFIDFVectorizer(candidate.MaxFeatures, candidate.MaxDF)
	factory := func() ml.Learner {
		return ml.NewAdaBoost(candidate.NEstimators, candidate.LearningRate)
	}

	return &Pipeline{
		candidate:  candidate,
		categories: categories,
		vectorizer: vectorizer,
		union:      features.NewUnion(vectorizer, features.NewStartingVerb()),
		classifier: ml.NewMultiOutput(factory, workers),
	}
}

func (p *Pipeline) Candidate() types.Candidate {
	return p.candidate
}

func (p *Pipeline) Categories() types.CategorySet {
	return p.categories
}

func (p *Pipeline) Fit(texts []string, labels types.LabelMatrix) error {
	if len(texts) == 0 {
		return errors.New("cannot fit pipeline on empty corpus")
	}
	if len(texts) != len(labels) {
		return fmt.Errorf("texts (%d) and labels (%d) are misaligned", len(texts), len(labels))
	}
	for i, row := range labels {
		if len(row) != p.categories.Len() {
			return fmt.Errorf("label row %d has %d columns, want %d", i, len(row), p.categories.Len())
		}
	}

	if err := p.union.Fit(texts); err != nil {
		return err
	}
	x, err := p.union.Transform(texts)
	if err != nil {
		return err
	}
	if err := p.classifier.Fit(x, labels); err != nil {
		return err
	}

	p.fitted = true
	return nil
}

func (p *Pipeline) Predict(texts []string) (types.LabelMatrix, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	x, err := p.union.Transform(texts)
	if err != nil {
		return nil, err
	}
	return p.classifier.Predict(x)
}
