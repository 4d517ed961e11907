package metrics

// classCounts holds the confusion counts of one class within a single
// label column.
type classCounts struct {
	tp, fp, fn, support int
}

func countClasses(yTrue, yPred []int) map[int]*classCounts {
	counts := make(map[int]*classCounts)
	get := func(c int) *classCounts {
		cc, ok := counts[c]
		if !ok {
			cc = &classCounts{}
			counts[c] = cc
		}
		return cc
	}
	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if t == p {
			get(t).tp++
		} else {
			get(t).fn++
			get(p).fp++
		}
		get(t).support++
	}
	return counts
}

// precisionRecallFBeta derives the three metrics from confusion counts.
// Division by zero contributes zero, never an error.
func precisionRecallFBeta(cc *classCounts, beta float64) (precision, recall, fbeta float64) {
	if cc.tp+cc.fp > 0 {
		precision = float64(cc.tp) / float64(cc.tp+cc.fp)
	}
	if cc.tp+cc.fn > 0 {
		recall = float64(cc.tp) / float64(cc.tp+cc.fn)
	}
	b2 := beta * beta
	if denom := b2*precision + recall; denom > 0 {
		fbeta = (1 + b2) * precision * recall / denom
	}
	return precision, recall, fbeta
}

// FBetaWeighted computes the support-weighted average of per-class F-beta
// scores within one binary label column. Weighting by true-class support
// dampens severe class imbalance inside the column.
func FBetaWeighted(yTrue, yPred []int, beta float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}

	counts := countClasses(yTrue, yPred)
	total := 0
	weighted := 0.0
	for _, cc := range counts {
		if cc.support == 0 {
			continue
		}
		_, _, fbeta := precisionRecallFBeta(cc, beta)
		weighted += fbeta * float64(cc.support)
		total += cc.support
	}
	if total == 0 {
		return 0
	}
	return weighted / float64(total)
}
