package pos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTagger(t *testing.T) {
	tag := NewTagger()

	t.Run("tags a whole sentence", func(t *testing.T) {
		got := tag([]string{"send", "the", "trucks", "to", "us", "now", "!"})
		want := []string{"VB", "DT", "NNS", "TO", "PRP", "RB", "!"}
		require.Empty(t, cmp.Diff(want, got))
	})

	tests := []struct {
		token string
		want  string
	}{
		// lexicon
		{"run", "VB"},
		{"please", "VB"},
		{"ran", "VBD"},
		{"is", "VBZ"},
		{"are", "VBP"},
		{"the", "DT"},
		{"must", "MD"},

		// suffix rules
		{"helping", "VBG"},
		{"evacuated", "VBD"},
		{"quickly", "RB"},
		{"dangerous", "JJ"},
		{"sends", "VBZ"},
		{"shelters", "NNS"},

		// fallbacks
		{"water", "NN"},
		{"7", "CD"},
		{"?", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require.Equal(t, tt.want, tag([]string{tt.token})[0])
		})
	}
}
