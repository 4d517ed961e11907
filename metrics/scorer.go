package metrics

import (
	"fmt"
	"math"

	"text2crisis.com/drc/types"
)

// perfectScore is the filtering cutoff: a label scoring exactly this value
// is assumed to be trivially easy (near-single-class) and is excluded so it
// cannot inflate the aggregate.
const perfectScore = 1.0

// ColumnScores returns the weighted F-beta score of every label column.
func ColumnScores(yTrue, yPred types.LabelMatrix, beta float64) ([]float64, error) {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("label matrices must be non-empty and aligned: %d vs %d rows",
			len(yTrue), len(yPred))
	}
	k := len(yTrue[0])
	if k != len(yPred[0]) {
		return nil, fmt.Errorf("label matrices differ in width: %d vs %d", k, len(yPred[0]))
	}

	scores := make([]float64, k)
	for col := 0; col < k; col++ {
		scores[col] = FBetaWeighted(yTrue.Column(col), yPred.Column(col), beta)
	}
	return scores, nil
}

// GMeanScore is the aggregate multi-output metric: per-column weighted
// F-beta scores, perfect scores dropped, geometric mean of the rest.
//
// When filtering removes every column (every label scored a perfect 1.0)
// the aggregate is defined as 1.0: the filter exists to stop perfect
// trivial labels from masking imperfect ones, and with no imperfect label
// left there is nothing to mask.
func GMeanScore(yTrue, yPred types.LabelMatrix, beta float64) (float64, error) {
	scores, err := ColumnScores(yTrue, yPred, beta)
	if err != nil {
		return 0, err
	}
	return GMean(scores), nil
}

// GMean aggregates per-label scores as described on GMeanScore. Exposed
// separately so reports can reuse already-computed column scores.
func GMean(scores []float64) float64 {
	logSum := 0.0
	kept := 0
	for _, s := range scores {
		if s >= perfectScore {
			continue
		}
		if s == 0 {
			return 0
		}
		logSum += math.Log(s)
		kept++
	}
	if kept == 0 {
		return perfectScore
	}
	return math.Exp(logSum / float64(kept))
}
