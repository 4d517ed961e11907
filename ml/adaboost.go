package ml

import (
	"errors"
	"math"
	"sort"

	"text2crisis.com/drc/features"
)

const minStumpError = 1e-10

// AdaBoost boosts decision stumps over a binary label column (discrete
// SAMME). A column with a single observed class degenerates into a
// constant predictor instead of failing.
type AdaBoost struct {
	NEstimators  int     `json:"n_estimators"`
	LearningRate float64 `json:"learning_rate"`

	// Classes holds the observed class values in ascending order; a
	// negative stump score maps to Classes[0]. Majority is the fallback
	// prediction when boosting produced no usable stump.
	Classes  []int   `json:"classes"`
	Majority int     `json:"majority"`
	Stumps   []Stump `json:"stumps"`
}

func NewAdaBoost(nEstimators int, learningRate float64) *AdaBoost {
	return &AdaBoost{NEstimators: nEstimators, LearningRate: learningRate}
}

func (a *AdaBoost) Fit(x features.Matrix, y []int) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.New("feature matrix and targets must be non-empty and aligned")
	}
	if a.NEstimators < 1 {
		return errors.New("n_estimators must be positive")
	}
	if a.LearningRate <= 0 {
		return errors.New("learning_rate must be positive")
	}

	counts := make(map[int]int)
	for _, v := range y {
		counts[v]++
	}
	a.Classes = a.Classes[:0]
	for v := range counts {
		a.Classes = append(a.Classes, v)
	}
	sort.Ints(a.Classes)

	a.Majority = a.Classes[0]
	for _, v := range a.Classes {
		if counts[v] > counts[a.Majority] {
			a.Majority = v
		}
	}

	// degenerate column: the constant predictor is the accepted behavior
	if len(a.Classes) == 1 {
		a.Stumps = nil
		return nil
	}
	if len(a.Classes) != 2 {
		return errors.New("adaboost expects a binary label column")
	}

	n := len(y)
	targets := make([]int, n)
	for i, v := range y {
		if v == a.Classes[1] {
			targets[i] = 1
		} else {
			targets[i] = -1
		}
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}

	a.Stumps = a.Stumps[:0]
	for m := 0; m < a.NEstimators; m++ {
		stump, werr := fitStump(x, targets, weights)
		if werr >= 0.5 {
			break
		}
		werr = math.Max(werr, minStumpError)
		stump.Alpha = a.LearningRate * math.Log((1-werr)/werr)
		a.Stumps = append(a.Stumps, stump)

		if werr <= minStumpError {
			break
		}

		total := 0.0
		for i := range weights {
			if stump.predict(x[i]) != targets[i] {
				weights[i] *= math.Exp(stump.Alpha)
			}
			total += weights[i]
		}
		for i := range weights {
			weights[i] /= total
		}
	}

	return nil
}

func (a *AdaBoost) Predict(x features.Matrix) []int {
	out := make([]int, len(x))
	if len(a.Classes) < 2 || len(a.Stumps) == 0 {
		for i := range out {
			out[i] = a.Majority
		}
		return out
	}

	for i, row := range x {
		score := 0.0
		for _, stump := range a.Stumps {
			score += stump.Alpha * float64(stump.predict(row))
		}
		if score > 0 {
			out[i] = a.Classes[1]
		} else {
			out[i] = a.Classes[0]
		}
	}
	return out
}
