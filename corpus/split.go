package corpus

import (
	"fmt"

	"text2crisis.com/drc/types"
	"text2crisis.com/drc/utils"
)

const splitBuckets = 10_000

// Split assigns every sample to the train or test partition by hashing its
// ID together with the run seed. Membership is immutable for the run and
// independent of sample order; the partitions are disjoint and cover the
// corpus.
func Split(c types.Corpus, testRatio float64, seed uint64) (train, test types.Corpus, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return train, test, fmt.Errorf("test ratio must be in (0,1), got %v", testRatio)
	}

	cutoff := uint64(testRatio * splitBuckets)
	var trainIdx, testIdx []int
	for i, s := range c.Samples {
		if utils.HashStringSeeded(s.ID, seed)%splitBuckets < cutoff {
			testIdx = append(testIdx, i)
		} else {
			trainIdx = append(trainIdx, i)
		}
	}

	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return train, test, fmt.Errorf("degenerate split: %d train / %d test samples",
			len(trainIdx), len(testIdx))
	}

	return c.Subset(trainIdx), c.Subset(testIdx), nil
}
