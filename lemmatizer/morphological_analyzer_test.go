package lemmatizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMorphologicalAnalyzer(t *testing.T) {
	analyze := NewMorphologicalAnalyzer(DefaultRules())

	tests := []struct {
		form string
		want string
	}{
		// irregular plurals resolve through the exception table
		{"children", "child"},
		{"people", "person"},
		{"supplies", "supply"},
		{"crises", "crisis"},

		// suffix rules
		{"trucks", "truck"},
		{"families", "family"},
		{"churches", "church"},
		{"boxes", "box"},
		{"dishes", "dish"},

		// protected and double-s forms keep their final s
		{"news", "news"},
		{"bus", "bus"},
		{"glass", "glass"},
		{"is", "is"},
		{"as", "as"},
		{"us", "us"},

		// unchanged forms pass through
		{"water", "water"},
		{"help", "help"},
	}
	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			require.Equal(t, tt.want, analyze(tt.form))
		})
	}

	t.Run("input is normalized first", func(t *testing.T) {
		require.Equal(t, "child", analyze("  Children  "))
		require.Equal(t, "truck", analyze("TRUCKS"))
	})
}
