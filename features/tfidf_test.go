package features

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTFIDFVectorizer(t *testing.T) {
	trainTexts := []string{
		"we need water and food",
		"water pipes broken in the city",
		"send food to the shelter",
	}

	t.Run("dimensionality is fixed by the training corpus", func(t *testing.T) {
		v := NewTFIDFVectorizer(0, 1.0)
		require.NoError(t, v.Fit(trainTexts))

		trainX, err := v.Transform(trainTexts)
		require.NoError(t, err)

		testX, err := v.Transform([]string{"earthquake victims need tents and blankets"})
		require.NoError(t, err)

		require.Equal(t, len(v.Terms), trainX.Cols())
		require.Equal(t, trainX.Cols(), testX.Cols())
	})

	t.Run("unseen tokens are silently ignored", func(t *testing.T) {
		v := NewTFIDFVectorizer(0, 1.0)
		require.NoError(t, v.Fit(trainTexts))

		x, err := v.Transform([]string{"zzz qqq unseen tokens only"})
		require.NoError(t, err)
		for _, val := range x[0] {
			require.Equal(t, 0.0, val)
		}
	})

	t.Run("known tokens get positive weight", func(t *testing.T) {
		v := NewTFIDFVectorizer(0, 1.0)
		require.NoError(t, v.Fit(trainTexts))

		x, err := v.Transform([]string{"water water"})
		require.NoError(t, err)

		positive := 0
		for _, val := range x[0] {
			if val > 0 {
				positive++
			}
		}
		require.Equal(t, 1, positive)
	})

	t.Run("max features caps the vocabulary", func(t *testing.T) {
		v := NewTFIDFVectorizer(3, 1.0)
		require.NoError(t, v.Fit(trainTexts))
		require.Len(t, v.Terms, 3)

		x, err := v.Transform(trainTexts)
		require.NoError(t, err)
		require.Equal(t, 3, x.Cols())
	})

	t.Run("max df drops ubiquitous terms", func(t *testing.T) {
		texts := []string{"water here", "water there", "water everywhere"}
		v := NewTFIDFVectorizer(0, 0.5)
		require.NoError(t, v.Fit(texts))
		require.NotContains(t, v.Terms, "water")
	})

	t.Run("transform before fit fails", func(t *testing.T) {
		v := NewTFIDFVectorizer(0, 1.0)
		_, err := v.Transform([]string{"anything"})
		require.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("fit on empty corpus fails", func(t *testing.T) {
		v := NewTFIDFVectorizer(0, 1.0)
		require.Error(t, v.Fit(nil))
	})
}
