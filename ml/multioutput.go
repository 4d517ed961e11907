package ml

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"text2crisis.com/drc/features"
	"text2crisis.com/drc/types"
)

// MultiOutput trains one independent learner per label column and predicts
// by column-wise gather in label order. Per-column fits run on a bounded
// worker pool; learners share no mutable state.
type MultiOutput struct {
	factory Factory
	workers int

	Learners []Learner
}

func NewMultiOutput(factory Factory, workers int) *MultiOutput {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &MultiOutput{factory: factory, workers: workers}
}

func (m *MultiOutput) Fit(x features.Matrix, labels types.LabelMatrix) error {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return errors.New("label matrix is empty")
	}
	if len(x) != len(labels) {
		return fmt.Errorf("feature rows (%d) do not match label rows (%d)", len(x), len(labels))
	}

	k := len(labels[0])
	m.Learners = make([]Learner, k)

	var g errgroup.Group
	g.SetLimit(m.workers)
	for col := 0; col < k; col++ {
		col := col
		g.Go(func() error {
			learner := m.factory()
			if err := learner.Fit(x, labels.Column(col)); err != nil {
				return fmt.Errorf("label column %d: %w", col, err)
			}
			m.Learners[col] = learner
			return nil
		})
	}
	return g.Wait()
}

func (m *MultiOutput) Predict(x features.Matrix) (types.LabelMatrix, error) {
	if len(m.Learners) == 0 {
		return nil, errors.New("multi-output classifier is not fitted")
	}

	columns := make([][]int, len(m.Learners))
	var g errgroup.Group
	g.SetLimit(m.workers)
	for col := range m.Learners {
		col := col
		g.Go(func() error {
			columns[col] = m.Learners[col].Predict(x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(types.LabelMatrix, len(x))
	for i := range out {
		row := make([]int, len(m.Learners))
		for col := range m.Learners {
			row[col] = columns[col][i]
		}
		out[i] = row
	}
	return out, nil
}
