package features

import "fmt"

// Union concatenates the outputs of an ordered extractor list into one
// feature matrix. Column blocks appear in registration order; rows align by
// sample index.
type Union struct {
	extractors []Extractor
}

func NewUnion(extractors ...Extractor) *Union {
	return &Union{extractors: extractors}
}

func (u *Union) Fit(texts []string) error {
	for i, ext := range u.extractors {
		if err := ext.Fit(texts); err != nil {
			return fmt.Errorf("extractor %d: %w", i, err)
		}
	}
	return nil
}

func (u *Union) Transform(texts []string) (Matrix, error) {
	if len(u.extractors) == 0 {
		return nil, fmt.Errorf("union has no extractors")
	}

	blocks := make([]Matrix, len(u.extractors))
	for i, ext := range u.extractors {
		block, err := ext.Transform(texts)
		if err != nil {
			return nil, fmt.Errorf("extractor %d: %w", i, err)
		}
		if block.Rows() != len(texts) {
			return nil, fmt.Errorf("extractor %d returned %d rows for %d samples",
				i, block.Rows(), len(texts))
		}
		blocks[i] = block
	}

	width := 0
	for _, block := range blocks {
		width += block.Cols()
	}

	out := make(Matrix, len(texts))
	for r := range out {
		row := make([]float64, 0, width)
		for _, block := range blocks {
			row = append(row, block[r]...)
		}
		out[r] = row
	}
	return out, nil
}
