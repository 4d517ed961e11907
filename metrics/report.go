package metrics

import "text2crisis.com/drc/types"

// ClassMetrics is one row of a per-category classification report.
type ClassMetrics struct {
	Class     int     `json:"class"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// CategoryReport compares one predicted label column against its truth.
type CategoryReport struct {
	Category string         `json:"category"`
	Classes  []ClassMetrics `json:"classes"`
	FBeta    float64        `json:"fbeta_weighted"`
}

// Report is the evaluator's structured output: data, not formatted text.
type Report struct {
	Categories      []CategoryReport `json:"categories"`
	OverallAccuracy float64          `json:"overall_accuracy"`
	AggregateScore  float64          `json:"aggregate_score"`
}

// NewCategoryReport builds the per-class report for one label column.
func NewCategoryReport(category string, yTrue, yPred []int, beta float64) CategoryReport {
	counts := countClasses(yTrue, yPred)

	classes := make([]ClassMetrics, 0, len(counts))
	for c := 0; c <= 1; c++ {
		cc, ok := counts[c]
		if !ok {
			continue
		}
		precision, recall, f1 := precisionRecallFBeta(cc, 1)
		classes = append(classes, ClassMetrics{
			Class:     c,
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   cc.support,
		})
	}

	return CategoryReport{
		Category: category,
		Classes:  classes,
		FBeta:    FBetaWeighted(yTrue, yPred, beta),
	}
}

// OverallAccuracy is the mean exact-match indicator over every
// (sample, label) cell.
func OverallAccuracy(yTrue, yPred types.LabelMatrix) float64 {
	cells, hits := 0, 0
	for i := range yTrue {
		for j := range yTrue[i] {
			cells++
			if yTrue[i][j] == yPred[i][j] {
				hits++
			}
		}
	}
	if cells == 0 {
		return 0
	}
	return float64(hits) / float64(cells)
}
