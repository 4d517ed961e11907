package ml

import (
	"math"
	"sort"

	"text2crisis.com/drc/features"
)

// Stump is a depth-1 decision rule: polarity +1 predicts the positive class
// when the feature value is at or above the threshold, polarity -1 inverts
// that.
type Stump struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Polarity  int     `json:"polarity"`
	Alpha     float64 `json:"alpha"`
}

func (s Stump) predict(row []float64) int {
	v := -1
	if row[s.Feature] >= s.Threshold {
		v = 1
	}
	return v * s.Polarity
}

// fitStump finds the weighted-error-minimizing stump for targets t (±1)
// under sample weights w (normalized to sum 1). It sweeps every feature's
// sorted value sequence, flipping one sample's prediction per step.
func fitStump(x features.Matrix, t []int, w []float64) (Stump, float64) {
	n := len(t)
	nFeatures := len(x[0])

	best := Stump{Polarity: 1}
	bestErr := math.Inf(1)

	consider := func(feature int, threshold, errPos float64) {
		if errPos < bestErr {
			bestErr = errPos
			best = Stump{Feature: feature, Threshold: threshold, Polarity: 1}
		}
		if 1-errPos < bestErr {
			bestErr = 1 - errPos
			best = Stump{Feature: feature, Threshold: threshold, Polarity: -1}
		}
	}

	order := make([]int, n)
	for j := 0; j < nFeatures; j++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return x[order[a]][j] < x[order[b]][j]
		})

		// threshold below every value: everything predicted positive
		errPos := 0.0
		for i := 0; i < n; i++ {
			if t[i] == -1 {
				errPos += w[i]
			}
		}
		consider(j, x[order[0]][j]-1, errPos)

		k := 0
		for k < n {
			v := x[order[k]][j]
			for k < n && x[order[k]][j] == v {
				i := order[k]
				if t[i] == 1 {
					errPos += w[i]
				} else {
					errPos -= w[i]
				}
				k++
			}
			threshold := v + 1
			if k < n {
				threshold = (v + x[order[k]][j]) / 2
			}
			consider(j, threshold, errPos)
		}
	}

	return best, bestErr
}
