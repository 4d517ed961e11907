package search

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"text2crisis.com/drc/logger"
	"text2crisis.com/drc/metrics"
	"text2crisis.com/drc/types"
)

var ErrEmptyGrid = errors.New("candidate grid is empty")

// Estimator is the trainable pipeline surface the search drives. A fresh
// instance is built per (candidate, fold) unit so no feature state is
// shared across concurrent fits.
type Estimator interface {
	Fit(texts []string, labels types.LabelMatrix) error
	Predict(texts []string) (types.LabelMatrix, error)
}

type Builder func(c types.Candidate) Estimator

type Params struct {
	Folds   int
	Beta    float64
	Seed    uint64
	Workers int
}

type CandidateScore struct {
	Candidate  types.Candidate `json:"candidate"`
	FoldScores []float64       `json:"fold_scores"`
	MeanScore  float64         `json:"mean_score"`
}

type Result struct {
	Best          Estimator
	BestCandidate types.Candidate
	BestScore     float64
	Scores        []CandidateScore
}

// Run cross-validates every candidate over the training partition, selects
// the best mean score (ties to the earliest candidate), and refits the
// winner on the entire training partition.
func Run(texts []string, labels types.LabelMatrix, candidates []types.Candidate, build Builder, p Params) (*Result, error) {
	fdlLogger := logger.NewLogger("GridSearch")

	if len(candidates) == 0 {
		return nil, ErrEmptyGrid
	}
	folds, err := KFold(len(texts), p.Folds, p.Seed)
	if err != nil {
		return nil, err
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fdlLogger.Info().
		Int("candidates", len(candidates)).
		Int("folds", len(folds)).
		Int("workers", workers).
		Msg("Starting cross-validated search")

	scores := make([][]float64, len(candidates))
	for ci := range scores {
		scores[ci] = make([]float64, len(folds))
	}

	// each (candidate, fold) unit is independent and writes only its own
	// cell of the score matrix
	var g errgroup.Group
	g.SetLimit(workers)
	for ci := range candidates {
		for fi := range folds {
			ci, fi := ci, fi
			g.Go(func() error {
				fold := folds[fi]
				est := build(candidates[ci])
				if err := est.Fit(subsetTexts(texts, fold.Train), subsetLabels(labels, fold.Train)); err != nil {
					return err
				}
				pred, err := est.Predict(subsetTexts(texts, fold.Test))
				if err != nil {
					return err
				}
				score, err := metrics.GMeanScore(subsetLabels(labels, fold.Test), pred, p.Beta)
				if err != nil {
					return err
				}
				scores[ci][fi] = score
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Scores: make([]CandidateScore, len(candidates))}
	bestIdx := 0
	for ci, cand := range candidates {
		mean := 0.0
		for _, s := range scores[ci] {
			mean += s
		}
		mean /= float64(len(folds))

		result.Scores[ci] = CandidateScore{
			Candidate:  cand,
			FoldScores: scores[ci],
			MeanScore:  mean,
		}
		fdlLogger.Info().
			Interface("candidate", cand).
			Float64("mean_score", mean).
			Msg("Scored candidate")

		// strict greater-than keeps the earliest candidate on ties
		if mean > result.Scores[bestIdx].MeanScore {
			bestIdx = ci
		}
	}

	result.BestCandidate = result.Scores[bestIdx].Candidate
	result.BestScore = result.Scores[bestIdx].MeanScore

	fdlLogger.Info().
		Interface("candidate", result.BestCandidate).
		Float64("mean_score", result.BestScore).
		Msg("Refitting best candidate on the full training partition")

	best := build(result.BestCandidate)
	if err := best.Fit(texts, labels); err != nil {
		return nil, err
	}
	result.Best = best

	return result, nil
}

func subsetTexts(texts []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = texts[idx]
	}
	return out
}

func subsetLabels(labels types.LabelMatrix, indices []int) types.LabelMatrix {
	out := make(types.LabelMatrix, len(indices))
	for i, idx := range indices {
		out[i] = labels[idx]
	}
	return out
}
