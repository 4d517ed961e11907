package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"text2crisis.com/drc/types"
)

func TestNewCategoryReport(t *testing.T) {
	yTrue := []int{1, 1, 0, 0}
	yPred := []int{1, 0, 0, 0}

	got := NewCategoryReport("water", yTrue, yPred, 1)

	want := CategoryReport{
		Category: "water",
		Classes: []ClassMetrics{
			{Class: 0, Precision: 2.0 / 3.0, Recall: 1, F1: 0.8, Support: 2},
			{Class: 1, Precision: 1, Recall: 0.5, F1: 2.0 / 3.0, Support: 2},
		},
		FBeta: (2.0/3.0*2 + 0.8*2) / 4,
	}

	if diff := cmp.Diff(want, got, cmpFloatTolerance()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func cmpFloatTolerance() cmp.Option {
	return cmp.Comparer(func(a, b float64) bool {
		d := a - b
		return d < 1e-12 && d > -1e-12
	})
}

func TestOverallAccuracy(t *testing.T) {
	yTrue := types.LabelMatrix{{1, 0}, {0, 1}}
	yPred := types.LabelMatrix{{1, 1}, {0, 1}}
	require.InDelta(t, 0.75, OverallAccuracy(yTrue, yPred), 1e-12)

	require.Equal(t, 0.0, OverallAccuracy(nil, nil))
}
