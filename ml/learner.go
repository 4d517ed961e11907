package ml

import "text2crisis.com/drc/features"

// Learner is the capability interface for a single-label classifier.
type Learner interface {
	Fit(x features.Matrix, y []int) error
	Predict(x features.Matrix) []int
}

// Factory produces a fresh, unfitted learner instance. MultiOutput calls it
// once per label column so instances never share state.
type Factory func() Learner
