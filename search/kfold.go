package search

import (
	"fmt"
	"math/rand"
)

// Fold is one cross-validation split: indices into the training partition.
type Fold struct {
	Train []int
	Test  []int
}

// KFold shuffles sample indices with the given seed and cuts them into k
// contiguous held-out blocks. The first n%k folds hold one extra sample.
// Deterministic for a given (n, k, seed).
func KFold(n, k int, seed uint64) ([]Fold, error) {
	if k < 2 {
		return nil, fmt.Errorf("cross-validation needs at least 2 folds, got %d", k)
	}
	if n < k {
		return nil, fmt.Errorf("cannot cut %d samples into %d folds", n, k)
	}

	perm := rand.New(rand.NewSource(int64(seed))).Perm(n)

	folds := make([]Fold, k)
	base := n / k
	extra := n % k
	start := 0
	for f := 0; f < k; f++ {
		size := base
		if f < extra {
			size++
		}
		test := perm[start : start+size]

		train := make([]int, 0, n-size)
		train = append(train, perm[:start]...)
		train = append(train, perm[start+size:]...)

		folds[f] = Fold{Train: train, Test: test}
		start += size
	}
	return folds, nil
}
