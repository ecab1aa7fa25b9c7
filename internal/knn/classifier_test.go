package knn

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce reproduces the classification result with a naive full sort,
// keeping the earlier row on equal distances like the insertion scan does.
func bruteForce(d *Dataset, query []float64) (label int, meanDist float64) {
	type neighbor struct {
		dist float64
		row  int
	}
	all := make([]neighbor, d.N)
	for i := 0; i < d.N; i++ {
		row := d.Row(i)
		sum := 0.0
		for j := 0; j < d.D; j++ {
			diff := query[j] - row[j]
			sum += diff * diff
		}
		all[i] = neighbor{dist: math.Sqrt(sum), row: i}
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].dist < all[b].dist })

	votes := make([]int, d.Classes)
	sum := 0.0
	for _, n := range all[:d.K] {
		votes[d.Labels[n.row]]++
		sum += n.dist
	}
	best, maxVotes := 0, 0
	for c, v := range votes {
		if v > maxVotes {
			maxVotes = v
			best = c
		}
	}
	return best, sum / float64(d.K)
}

func TestClassifyMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	d := &Dataset{
		Name:    "random",
		N:       60,
		D:       8,
		K:       5,
		Classes: 4,
	}
	d.Data = make([]float64, d.N*d.D)
	for i := range d.Data {
		d.Data[i] = rng.NormFloat64()
	}
	d.Labels = make([]uint8, d.N)
	for i := range d.Labels {
		d.Labels[i] = uint8(rng.Intn(d.Classes))
	}

	for trial := 0; trial < 50; trial++ {
		query := make([]float64, d.D)
		for i := range query {
			query[i] = rng.NormFloat64()
		}

		wantLabel, wantMean := bruteForce(d, query)
		gotLabel, gotMean := Classify(d, query)

		assert.Equal(t, wantLabel, gotLabel, "trial %d", trial)
		assert.InDelta(t, wantMean, gotMean, 1e-9, "trial %d", trial)
	}
}

func TestClassifyBoundaryTieKeepsEarlierRow(t *testing.T) {
	// Rows at distance 1, 2 and 2 from the query. The third row ties the
	// current worst kept neighbor exactly, so it must be discarded and the
	// vote falls to the earlier rows.
	d := &Dataset{
		N:       3,
		D:       1,
		K:       2,
		Classes: 3,
		Data:    []float64{1, 2, -2},
		Labels:  []uint8{0, 1, 2},
	}

	label, meanDist := Classify(d, []float64{0})

	// Kept neighbors are class 0 and class 1 with one vote each; the tie
	// resolves to the lowest class index.
	assert.Equal(t, 0, label)
	assert.InDelta(t, 1.5, meanDist, 1e-12)
}

func TestClassifyVoteTiePrefersLowestClass(t *testing.T) {
	d := &Dataset{
		N:       4,
		D:       1,
		K:       4,
		Classes: 3,
		Data:    []float64{1, 2, 3, 4},
		Labels:  []uint8{2, 1, 1, 2},
	}

	label, meanDist := Classify(d, []float64{0})

	assert.Equal(t, 1, label)
	assert.InDelta(t, 2.5, meanDist, 1e-12)
}

func TestClassifyExactDuplicateRows(t *testing.T) {
	// Three identical rows of class 2 plus distractors. A query equal to
	// the duplicated row must come back as class 2 at zero mean distance.
	row := []float64{0.3, 0.7, 0.1}
	d := &Dataset{
		N:       5,
		D:       3,
		K:       3,
		Classes: 3,
		Data: []float64{
			9, 9, 9,
			0.3, 0.7, 0.1,
			-9, -9, -9,
			0.3, 0.7, 0.1,
			0.3, 0.7, 0.1,
		},
		Labels:     []uint8{0, 2, 1, 2, 2},
		LabelNames: []string{"L0", "L1", "L2"},
	}

	label, meanDist := Classify(d, row)

	require.Equal(t, 2, label)
	assert.Equal(t, "L2", d.LabelName(label))
	assert.InDelta(t, 0.0, meanDist, 1e-12)
	assert.Equal(t, 1.0, Confidence(meanDist))
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 1.0, Confidence(0))

	prev := Confidence(0)
	for _, dist := range []float64{0.1, 1, 5, 50, 999999} {
		c := Confidence(dist)
		assert.Greater(t, c, 0.0)
		assert.Less(t, c, prev, "confidence must decrease with distance")
		prev = c
	}
}

func TestDatasetLabelName(t *testing.T) {
	d := &Dataset{LabelNames: []string{"a", "b"}}

	assert.Equal(t, "a", d.LabelName(0))
	assert.Equal(t, "b", d.LabelName(1))
	assert.Equal(t, "unknown", d.LabelName(-1))
	assert.Equal(t, "unknown", d.LabelName(2))
}

func TestScalerStandardize(t *testing.T) {
	s := &Scaler{
		Mean:  []float64{1, 2},
		Scale: []float64{2, 4},
	}
	x := []float64{3, 10}
	s.Standardize(x)

	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 2.0, x[1], 1e-12)
}
