package listlens_test

import (
	"testing"

	"github.com/ktsujino/listlens"
	"github.com/stretchr/testify/assert"
)

func TestDiffResult_Classify(t *testing.T) {
	t.Parallel()

	t.Run("identical passes regardless of threshold", func(t *testing.T) {
		t.Parallel()
		r := listlens.DiffResult{Identical: true, DimensionsMatch: true}
		assert.Equal(t, listlens.DiffPass, r.Classify(0))
	})

	t.Run("small difference within threshold warns", func(t *testing.T) {
		t.Parallel()
		r := listlens.DiffResult{DimensionsMatch: true, DifferencePercentage: 3.25}
		assert.Equal(t, listlens.DiffWarn, r.Classify(5.0))
	})

	t.Run("difference beyond threshold fails", func(t *testing.T) {
		t.Parallel()
		r := listlens.DiffResult{DimensionsMatch: true, DifferencePercentage: 12.5}
		assert.Equal(t, listlens.DiffFail, r.Classify(5.0))
	})

	t.Run("dimension mismatch always fails", func(t *testing.T) {
		t.Parallel()
		r := listlens.DiffResult{DimensionsMatch: false, DifferencePercentage: 100.0}
		assert.Equal(t, listlens.DiffFail, r.Classify(100.0))
	})
}
