package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStringSeeded(t *testing.T) {
	t.Run("deterministic per seed", func(t *testing.T) {
		require.Equal(t, HashStringSeeded("12503", 7), HashStringSeeded("12503", 7))
	})

	t.Run("seed changes the assignment", func(t *testing.T) {
		diff := 0
		for i := 0; i < 100; i++ {
			s := strconv.Itoa(i)
			if HashStringSeeded(s, 1) != HashStringSeeded(s, 2) {
				diff++
			}
		}
		require.Equal(t, 100, diff)
	})

	t.Run("distinct inputs rarely collide", func(t *testing.T) {
		seen := make(map[uint64]bool)
		for i := 0; i < 1000; i++ {
			seen[HashStringSeeded(strconv.Itoa(i), 0)] = true
		}
		require.Len(t, seen, 1000)
	})
}
