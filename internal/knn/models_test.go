package knn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkDataset(t *testing.T, d *Dataset) {
	t.Helper()

	require.Equal(t, d.N*d.D, len(d.Data), "%s: data length", d.Name)
	require.Equal(t, d.N, len(d.Labels), "%s: label count", d.Name)
	require.Equal(t, d.Classes, len(d.LabelNames), "%s: label names", d.Name)
	require.GreaterOrEqual(t, d.N, d.K, "%s: fewer rows than K", d.Name)

	for i, lb := range d.Labels {
		assert.Less(t, int(lb), d.Classes, "%s: row %d label out of range", d.Name, i)
	}
	for c, name := range d.LabelNames {
		assert.NotEmpty(t, name, "%s: class %d has no name", d.Name, c)
	}
}

func TestGestureModelConsistent(t *testing.T) {
	checkDataset(t, GestureModel)
	assert.Equal(t, 12, GestureModel.D)
}

func TestSentenceModelConsistent(t *testing.T) {
	checkDataset(t, SentenceModel)
	assert.Equal(t, 960, SentenceModel.D)
}

func TestSentenceScalerMatchesModel(t *testing.T) {
	require.Equal(t, SentenceModel.D, len(SentenceScaler.Mean))
	require.Equal(t, SentenceModel.D, len(SentenceScaler.Scale))

	for i, s := range SentenceScaler.Scale {
		assert.NotZero(t, s, "scale[%d] would divide by zero", i)
	}
}

// Every reference row must classify as its own label: the row itself is the
// nearest neighbor at distance zero, and the trained clusters are separated
// well enough that the remaining K-1 neighbors cannot outvote it.
func TestGestureModelRowsSelfClassify(t *testing.T) {
	for i := 0; i < GestureModel.N; i++ {
		label, _ := Classify(GestureModel, GestureModel.Row(i))
		assert.Equal(t, int(GestureModel.Labels[i]), label, "row %d", i)
	}
}
