package pipeline

import (
	"text2crisis.com/drc/metrics"
	"text2crisis.com/drc/types"
)

// Predictor is the inference surface the evaluator needs; both freshly
// trained and restored pipelines satisfy it.
type Predictor interface {
	Predict(texts []string) (types.LabelMatrix, error)
}

// Evaluate predicts on the held-out corpus and builds the structured
// result bundle: per-category reports, overall cell accuracy and the
// aggregate score. It has no output side effects; rendering is the
// caller's concern.
func Evaluate(model Predictor, test types.Corpus, beta float64) (metrics.Report, error) {
	var report metrics.Report

	pred, err := model.Predict(test.Messages())
	if err != nil {
		return report, err
	}
	yTrue := test.LabelMatrix()

	colScores, err := metrics.ColumnScores(yTrue, pred, beta)
	if err != nil {
		return report, err
	}

	report.Categories = make([]metrics.CategoryReport, test.Categories.Len())
	for _, cat := range test.Categories {
		report.Categories[cat.Column] = metrics.NewCategoryReport(
			cat.Name,
			yTrue.Column(cat.Column),
			pred.Column(cat.Column),
			beta,
		)
	}

	report.OverallAccuracy = metrics.OverallAccuracy(yTrue, pred)
	report.AggregateScore = metrics.GMean(colScores)
	return report, nil
}
