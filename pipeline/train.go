package pipeline

import (
	"text2crisis.com/drc/corpus"
	"text2crisis.com/drc/logger"
	"text2crisis.com/drc/metrics"
	"text2crisis.com/drc/search"
	"text2crisis.com/drc/types"
)

type TrainParams struct {
	CorpusPath string
	Config     types.TrainingConfig
	Workers    int
}

type TrainOutput struct {
	Model      *Pipeline
	Search     *search.Result
	Report     metrics.Report
	Categories types.CategorySet
}

// Train runs the whole batch: load the corpus, split it once, grid-search
// the training partition with cross-validation, refit the winner, evaluate
// on the held-out partition. One deterministic pass; a failed run is rerun
// in full.
func Train(params TrainParams) (*TrainOutput, error) {
	fdlLogger := logger.NewLogger("Trainer")

	if err := params.Config.Validate(); err != nil {
		return nil, err
	}

	data, err := corpus.LoadSQLite(params.CorpusPath)
	if err != nil {
		return nil, err
	}

	trainSet, testSet, err := corpus.Split(data, params.Config.TestRatio, params.Config.Seed)
	if err != nil {
		return nil, err
	}
	fdlLogger.Info().
		Int("train_samples", trainSet.Len()).
		Int("test_samples", testSet.Len()).
		Int("categories", data.Categories.Len()).
		Msg("Partitioned corpus")

	candidates := search.Expand(params.Config.Grid)
	builder := func(c types.Candidate) search.Estimator {
		return New(c, data.Categories, params.Workers)
	}

	result, err := search.Run(
		trainSet.Messages(),
		trainSet.LabelMatrix(),
		candidates,
		builder,
		search.Params{
			Folds:   params.Config.Folds,
			Beta:    params.Config.Beta,
			Seed:    params.Config.Seed,
			Workers: params.Workers,
		},
	)
	if err != nil {
		return nil, err
	}
	model := result.Best.(*Pipeline)

	report, err := Evaluate(model, testSet, params.Config.Beta)
	if err != nil {
		return nil, err
	}
	fdlLogger.Info().
		Float64("overall_accuracy", report.OverallAccuracy).
		Float64("aggregate_score", report.AggregateScore).
		Msg("Evaluated model on the test partition")

	return &TrainOutput{
		Model:      model,
		Search:     result,
		Report:     report,
		Categories: data.Categories,
	}, nil
}
