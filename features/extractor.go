package features

// Matrix is a dense row-major feature matrix: one row per sample.
type Matrix [][]float64

func (m Matrix) Rows() int {
	return len(m)
}

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Extractor is the capability interface every feature extraction stage
// implements. Fit learns extractor state from training texts only;
// Transform maps texts onto a feature matrix whose width is fixed once the
// extractor is fitted.
type Extractor interface {
	Fit(texts []string) error
	Transform(texts []string) (Matrix, error)
}
