package types

// Sample is one disaster-response message with its binary category labels.
// Labels column order matches the CategorySet of the corpus the sample
// belongs to.
type Sample struct {
	ID      string
	Message string
	Labels  []int
}

type Category struct {
	Name   string
	Column int
}

// CategorySet is the canonical ordered pairing of category names and label
// matrix columns. It travels with every label matrix so the pairing cannot
// drift.
type CategorySet []Category

func NewCategorySet(names []string) CategorySet {
	cs := make(CategorySet, len(names))
	for i, name := range names {
		cs[i] = Category{Name: name, Column: i}
	}
	return cs
}

func (cs CategorySet) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

func (cs CategorySet) Len() int {
	return len(cs)
}

// LabelMatrix is row-major: one row per sample, one column per category.
type LabelMatrix [][]int

func (m LabelMatrix) Column(k int) []int {
	col := make([]int, len(m))
	for i, row := range m {
		col[i] = row[k]
	}
	return col
}

type Corpus struct {
	Samples    []Sample
	Categories CategorySet
}

func (c Corpus) Len() int {
	return len(c.Samples)
}

func (c Corpus) Messages() []string {
	msgs := make([]string, len(c.Samples))
	for i, s := range c.Samples {
		msgs[i] = s.Message
	}
	return msgs
}

func (c Corpus) LabelMatrix() LabelMatrix {
	m := make(LabelMatrix, len(c.Samples))
	for i, s := range c.Samples {
		m[i] = s.Labels
	}
	return m
}

// Subset returns a corpus over the given sample indices. Samples are shared,
// not copied; callers treat corpora as read-only.
func (c Corpus) Subset(indices []int) Corpus {
	samples := make([]Sample, len(indices))
	for i, idx := range indices {
		samples[i] = c.Samples[idx]
	}
	return Corpus{Samples: samples, Categories: c.Categories}
}
