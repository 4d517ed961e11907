package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"text2crisis.com/drc/artifact"
	"text2crisis.com/drc/types"
)

func trainingCorpus() ([]string, types.LabelMatrix, types.CategorySet) {
	texts := []string{
		"we urgently require water please",
		"send clean water to the camp",
		"water tanks are empty again",
		"people require food in the camp",
		"send food supplies to the east",
		"food rations ran out yesterday",
		"the bridge collapsed last night",
		"roads to the village are blocked",
	}
	labels := types.LabelMatrix{
		{1, 0}, {1, 0}, {1, 0},
		{0, 1}, {0, 1}, {0, 1},
		{0, 0}, {0, 0},
	}
	return texts, labels, types.NewCategorySet([]string{"water", "food"})
}

func defaultCandidate() types.Candidate {
	return types.Candidate{NEstimators: 10, LearningRate: 1.0, MaxFeatures: 0, MaxDF: 1.0}
}

func TestPipelineFitPredict(t *testing.T) {
	texts, labels, categories := trainingCorpus()

	t.Run("recovers separable labels", func(t *testing.T) {
		p := New(defaultCandidate(), categories, 1)
		require.NoError(t, p.Fit(texts, labels))

		pred, err := p.Predict(texts)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(labels, pred))
	})

	t.Run("prediction keeps one column per category", func(t *testing.T) {
		p := New(defaultCandidate(), categories, 1)
		require.NoError(t, p.Fit(texts, labels))

		pred, err := p.Predict([]string{"we have no water", "all is quiet"})
		require.NoError(t, err)
		require.Len(t, pred, 2)
		for _, row := range pred {
			require.Len(t, row, categories.Len())
		}
	})

	t.Run("predict before fit fails", func(t *testing.T) {
		p := New(defaultCandidate(), categories, 1)
		_, err := p.Predict(texts)
		require.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("misaligned labels fail", func(t *testing.T) {
		p := New(defaultCandidate(), categories, 1)
		require.Error(t, p.Fit(texts, labels[:len(labels)-1]))
	})

	t.Run("wrong label width fails", func(t *testing.T) {
		narrow := make(types.LabelMatrix, len(texts))
		for i := range narrow {
			narrow[i] = []int{0}
		}
		p := New(defaultCandidate(), categories, 1)
		require.Error(t, p.Fit(texts, narrow))
	})
}

func TestEvaluate(t *testing.T) {
	texts, labels, categories := trainingCorpus()

	p := New(defaultCandidate(), categories, 1)
	require.NoError(t, p.Fit(texts, labels))

	test := types.Corpus{Categories: categories}
	for i, text := range texts {
		test.Samples = append(test.Samples, types.Sample{
			ID:      texts[i],
			Message: text,
			Labels:  labels[i],
		})
	}

	report, err := Evaluate(p, test, 1.0)
	require.NoError(t, err)

	require.Len(t, report.Categories, 2)
	require.Equal(t, "water", report.Categories[0].Category)
	require.Equal(t, "food", report.Categories[1].Category)
	require.InDelta(t, 1.0, report.OverallAccuracy, 1e-12)
	require.InDelta(t, 1.0, report.AggregateScore, 1e-12)
}

func TestModelDocRoundTrip(t *testing.T) {
	texts, labels, categories := trainingCorpus()

	p := New(defaultCandidate(), categories, 1)
	require.NoError(t, p.Fit(texts, labels))

	probes := append([]string{"there is no water left", "nothing to report"}, texts...)
	want, err := p.Predict(probes)
	require.NoError(t, err)

	t.Run("restored pipeline predicts identically", func(t *testing.T) {
		doc, err := p.Export()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "model.json.gz")
		require.NoError(t, artifact.Save(path, doc))

		var loaded ModelDoc
		require.NoError(t, artifact.Load(path, &loaded))

		restored, err := FromDoc(&loaded, 1)
		require.NoError(t, err)
		require.Equal(t, categories.Names(), restored.Categories().Names())

		got, err := restored.Predict(probes)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("export before fit fails", func(t *testing.T) {
		_, err := New(defaultCandidate(), categories, 1).Export()
		require.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("version mismatch fails", func(t *testing.T) {
		doc, err := p.Export()
		require.NoError(t, err)
		doc.Version = 99
		_, err = FromDoc(doc, 1)
		require.Error(t, err)
	})

	t.Run("learner and category counts must agree", func(t *testing.T) {
		doc, err := p.Export()
		require.NoError(t, err)
		doc.Categories = doc.Categories[:1]
		_, err = FromDoc(doc, 1)
		require.Error(t, err)
	})
}
