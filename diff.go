package listlens

// DiffResult reports a pixel-exact comparison of two screenshots.
type DiffResult struct {
	// Identical holds iff no pixel differs.
	Identical bool `json:"identical"`

	// DifferencePercentage is the proportion of differing pixels, 0-100,
	// rounded to two decimal places. 100.0 when dimensions differ.
	DifferencePercentage float64 `json:"differencePercentage"`

	// DimensionsMatch reports whether the images were the same size. When
	// false no pixel comparison was attempted.
	DimensionsMatch bool `json:"dimensionsMatch"`

	DifferingPixels int `json:"differingPixels"`
	TotalPixels     int `json:"totalPixels"`
}

// DiffStatus classifies a comparison against a caller-supplied threshold.
// The differ itself is threshold-agnostic.
type DiffStatus int

// Visual-test outcomes.
const (
	DiffPass DiffStatus = iota
	DiffWarn
	DiffFail
)

// String returns the status identifier.
func (s DiffStatus) String() string {
	switch s {
	case DiffWarn:
		return "warn"
	case DiffFail:
		return "fail"
	default:
		return "pass"
	}
}

// Classify maps the result to pass/warn/fail: identical images pass, minor
// differences within the threshold percentage warn, everything else fails.
func (r DiffResult) Classify(threshold float64) DiffStatus {
	switch {
	case r.Identical:
		return DiffPass
	case r.DimensionsMatch && r.DifferencePercentage <= threshold:
		return DiffWarn
	default:
		return DiffFail
	}
}
