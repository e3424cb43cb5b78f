package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneHotEncoderObservedOrder(t *testing.T) {
	e := NewOneHotEncoder("drop_frames")
	e.Fit([]string{"uniform", "none", "uniform", "all"})

	assert.Equal(t, []string{"uniform", "none", "all"}, e.Categories)
	assert.Equal(t,
		[]string{"drop_frames_uniform", "drop_frames_none", "drop_frames_all"},
		e.FeatureNames())
}

func TestOneHotEncoderTransform(t *testing.T) {
	e := NewOneHotEncoder("drop_frames")
	e.Fit([]string{"none", "all"})

	out := e.Transform([]string{"all", "none"})
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, out)
}

func TestOneHotEncoderUnknownCategory(t *testing.T) {
	e := NewOneHotEncoder("drop_frames")
	e.Fit([]string{"none", "all"})

	// Never seen at fit time: all zeros, not an error.
	out := e.Transform([]string{"every-other"})
	assert.Equal(t, [][]float64{{0, 0}}, out)
}

func TestOneHotColumn(t *testing.T) {
	assert.Equal(t, "drop_frames_none", OneHotColumn("drop_frames", "none"))
}
