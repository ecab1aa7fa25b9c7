package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestBuffer(t *testing.T, duration, interval time.Duration) (*Buffer, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	return NewWithClock(duration, interval, clk.now), clk
}

func TestAddIgnoredWhenIdle(t *testing.T) {
	b, _ := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)

	assert.False(t, b.Add(features.Sample{F1: 1}))
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Recording())
	assert.False(t, b.Filled())
}

func TestSampleSpacingDropsFastSamples(t *testing.T) {
	b, clk := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)
	b.Start()

	require.False(t, b.Add(features.Sample{}))
	require.Equal(t, 1, b.Len())

	clk.advance(40 * time.Millisecond)
	assert.False(t, b.Add(features.Sample{}))
	assert.Equal(t, 1, b.Len(), "sample under the interval must be dropped")

	clk.advance(60 * time.Millisecond)
	assert.False(t, b.Add(features.Sample{}))
	assert.Equal(t, 2, b.Len())
}

func TestCompletesAtCapacity(t *testing.T) {
	b, clk := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)
	require.Equal(t, 5, b.Capacity())

	b.Start()
	for i := 0; i < 4; i++ {
		require.False(t, b.Add(features.Sample{}), "add %d", i)
		clk.advance(100 * time.Millisecond)
	}

	assert.True(t, b.Add(features.Sample{}), "fifth sample must complete the window")
	assert.True(t, b.Filled())
	assert.False(t, b.Recording())
	assert.Equal(t, 5, b.Len())

	// Completion is reported once; later samples bounce off.
	clk.advance(100 * time.Millisecond)
	assert.False(t, b.Add(features.Sample{}))
	assert.Equal(t, 5, b.Len())
}

func TestCompletesByDurationWithPartialBuffer(t *testing.T) {
	b, clk := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)
	b.Start()

	for i := 0; i < 3; i++ {
		require.False(t, b.Add(features.Sample{}), "add %d", i)
		clk.advance(200 * time.Millisecond)
	}

	// 600 ms in, only 4 samples: the duration elapses before capacity.
	assert.True(t, b.Add(features.Sample{}))
	assert.True(t, b.Filled())
	assert.Equal(t, 4, b.Len())
}

func TestDurationElapsesUnderSampleFlood(t *testing.T) {
	b, clk := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)
	b.Start()
	require.False(t, b.Add(features.Sample{}))

	// Every following sample violates the spacing, but the window must
	// still complete once the duration has elapsed.
	completions := 0
	for i := 0; i < 60; i++ {
		clk.advance(10 * time.Millisecond)
		if b.Add(features.Sample{}) {
			completions++
		}
	}

	assert.Equal(t, 1, completions)
	assert.True(t, b.Filled())
	assert.Equal(t, 1, b.Len())
}

func TestProgress(t *testing.T) {
	b, clk := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)

	assert.Equal(t, 0.0, b.Progress(), "idle buffer has no progress")

	b.Start()
	assert.Equal(t, 0.0, b.Progress())

	clk.advance(250 * time.Millisecond)
	assert.InDelta(t, 0.5, b.Progress(), 1e-12)

	clk.advance(500 * time.Millisecond)
	assert.Equal(t, 1.0, b.Progress(), "progress clamps at 1")

	b.Reset()
	assert.Equal(t, 0.0, b.Progress())
}

func TestRemaining(t *testing.T) {
	b, clk := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)

	assert.Equal(t, time.Duration(0), b.Remaining())

	b.Start()
	assert.Equal(t, 500*time.Millisecond, b.Remaining())

	clk.advance(200 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, b.Remaining())

	clk.advance(400 * time.Millisecond)
	assert.Equal(t, time.Duration(0), b.Remaining())
}

func TestPredictBeforeFilled(t *testing.T) {
	b, _ := newTestBuffer(t, 500*time.Millisecond, 100*time.Millisecond)

	ds := &knn.Dataset{N: 1, D: 60, K: 1, Classes: 1, Data: make([]float64, 60), Labels: []uint8{0}}
	sc := identityScaler(60)

	label, dist := b.Predict(ds, sc)
	assert.Equal(t, 0, label)
	assert.Equal(t, NotReadyDistance, dist)

	b.Start()
	_, dist = b.Predict(ds, sc)
	assert.Equal(t, NotReadyDistance, dist, "recording but not filled")
}

func TestPredictClassifiesFlattenedWindow(t *testing.T) {
	b, clk := newTestBuffer(t, 200*time.Millisecond, 100*time.Millisecond)
	require.Equal(t, 2, b.Capacity())

	s1 := features.Sample{F1: 0.1, F2: 0.2, F3: 0.3, F4: 0.4, F5: 0.5, GDP: 120, Ax: 0.5, Ay: -0.25, Az: 1, Gx: 10, Gy: -20, Gz: 30}
	s2 := features.Sample{F1: 0.9, F2: 0.8, F3: 0.7, F4: 0.6, F5: 0.5, GDP: 340, Ax: -1, Ay: 0.75, Az: 0, Gx: -40, Gy: 50, Gz: -60}

	row := s2.Append(s1.Append(nil))
	far := make([]float64, len(row))
	for i := range far {
		far[i] = row[i] + 100
	}
	ds := &knn.Dataset{
		Name:       "window",
		N:          2,
		D:          2 * features.PerSample,
		K:          1,
		Classes:    2,
		Data:       append(append([]float64{}, far...), row...),
		Labels:     []uint8{0, 1},
		LabelNames: []string{"far", "near"},
	}

	b.Start()
	require.False(t, b.Add(s1))
	clk.advance(100 * time.Millisecond)
	require.True(t, b.Add(s2))

	label, meanDist := b.Predict(ds, identityScaler(ds.D))
	assert.Equal(t, 1, label)
	assert.InDelta(t, 0.0, meanDist, 1e-12)
}

func TestResetAllowsRestart(t *testing.T) {
	b, clk := newTestBuffer(t, 200*time.Millisecond, 100*time.Millisecond)

	b.Start()
	require.False(t, b.Add(features.Sample{}))
	clk.advance(100 * time.Millisecond)
	require.True(t, b.Add(features.Sample{}))

	b.Reset()
	assert.False(t, b.Filled())
	assert.Equal(t, 0, b.Len())

	b.Start()
	assert.True(t, b.Recording())
	assert.False(t, b.Add(features.Sample{}))
	assert.Equal(t, 1, b.Len())
}

func identityScaler(d int) *knn.Scaler {
	sc := &knn.Scaler{Mean: make([]float64, d), Scale: make([]float64, d)}
	for i := range sc.Scale {
		sc.Scale[i] = 1
	}
	return sc
}
