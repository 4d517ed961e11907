package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"text2crisis.com/drc/types"
)

func TestFBetaWeighted(t *testing.T) {
	t.Run("hand-computed column", func(t *testing.T) {
		yTrue := []int{1, 1, 0, 0}
		yPred := []int{1, 0, 0, 0}
		// class 1: P=1, R=0.5, F1=2/3, support 2
		// class 0: P=2/3, R=1, F1=0.8, support 2
		want := (2.0/3.0*2 + 0.8*2) / 4
		require.InDelta(t, want, FBetaWeighted(yTrue, yPred, 1), 1e-12)
	})

	t.Run("perfect column", func(t *testing.T) {
		y := []int{0, 1, 1, 0}
		require.InDelta(t, 1.0, FBetaWeighted(y, y, 1), 1e-12)
	})

	t.Run("zero division is absorbed", func(t *testing.T) {
		yTrue := []int{0, 0, 0}
		yPred := []int{1, 1, 1}
		require.Equal(t, 0.0, FBetaWeighted(yTrue, yPred, 1))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, 0.0, FBetaWeighted(nil, nil, 1))
	})

	t.Run("invariant under row permutation", func(t *testing.T) {
		yTrue := []int{1, 0, 1, 1, 0, 0, 1, 0}
		yPred := []int{1, 1, 0, 1, 0, 0, 0, 1}
		want := FBetaWeighted(yTrue, yPred, 2)

		rng := rand.New(rand.NewSource(7))
		for trial := 0; trial < 20; trial++ {
			perm := rng.Perm(len(yTrue))
			pTrue := make([]int, len(yTrue))
			pPred := make([]int, len(yPred))
			for i, j := range perm {
				pTrue[i] = yTrue[j]
				pPred[i] = yPred[j]
			}
			require.InDelta(t, want, FBetaWeighted(pTrue, pPred, 2), 1e-12)
		}
	})
}

func TestGMean(t *testing.T) {
	t.Run("worked example filters the perfect score", func(t *testing.T) {
		// [0.8, 1.0, 0.6] -> geometric mean of [0.8, 0.6] = sqrt(0.48)
		require.InDelta(t, math.Sqrt(0.48), GMean([]float64{0.8, 1.0, 0.6}), 1e-12)
	})

	t.Run("all perfect falls back to 1", func(t *testing.T) {
		require.Equal(t, 1.0, GMean([]float64{1, 1, 1}))
	})

	t.Run("zero score collapses the mean", func(t *testing.T) {
		require.Equal(t, 0.0, GMean([]float64{0.9, 0, 0.5}))
	})
}

func TestGMeanScore(t *testing.T) {
	t.Run("aggregate stays in unit interval", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for trial := 0; trial < 50; trial++ {
			n, k := 30, 4
			yTrue := make(types.LabelMatrix, n)
			yPred := make(types.LabelMatrix, n)
			for i := 0; i < n; i++ {
				yTrue[i] = make([]int, k)
				yPred[i] = make([]int, k)
				for j := 0; j < k; j++ {
					yTrue[i][j] = rng.Intn(2)
					yPred[i][j] = rng.Intn(2)
				}
			}
			score, err := GMeanScore(yTrue, yPred, 1)
			require.NoError(t, err)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		}
	})

	t.Run("perfect trivial label cannot mask a weak one", func(t *testing.T) {
		yTrue := types.LabelMatrix{{1, 1}, {1, 0}, {1, 1}, {1, 0}}
		yPred := types.LabelMatrix{{1, 0}, {1, 1}, {1, 1}, {1, 1}}
		// column 0 scores a perfect 1.0 and is filtered out
		score, err := GMeanScore(yTrue, yPred, 1)
		require.NoError(t, err)
		want := FBetaWeighted(yTrue.Column(1), yPred.Column(1), 1)
		require.InDelta(t, want, score, 1e-12)
	})

	t.Run("every label perfect uses the documented fallback", func(t *testing.T) {
		y := types.LabelMatrix{{1, 0}, {0, 1}, {1, 1}}
		score, err := GMeanScore(y, y, 1)
		require.NoError(t, err)
		require.Equal(t, 1.0, score)
	})

	t.Run("misaligned matrices are rejected", func(t *testing.T) {
		_, err := GMeanScore(types.LabelMatrix{{1}}, types.LabelMatrix{{1}, {0}}, 1)
		require.Error(t, err)
	})
}
