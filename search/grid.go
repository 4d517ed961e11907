package search

import "text2crisis.com/drc/types"

// Expand enumerates the cartesian product of the grid's parameter lists.
// The nesting order below is the canonical enumeration order; score ties
// are broken by the earliest position in it.
func Expand(grid types.Grid) []types.Candidate {
	var candidates []types.Candidate
	for _, n := range grid.NEstimators {
		for _, lr := range grid.LearningRate {
			for _, mf := range grid.MaxFeatures {
				for _, df := range grid.MaxDF {
					candidates = append(candidates, types.Candidate{
						NEstimators:  n,
						LearningRate: lr,
						MaxFeatures:  mf,
						MaxDF:        df,
					})
				}
			}
		}
	}
	return candidates
}
