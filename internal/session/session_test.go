package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/hostlink"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type stubSignaler struct {
	recordingStart, recordingStop   int
	sentenceStart, sentenceComplete int
}

func (s *stubSignaler) RecordingStart()   { s.recordingStart++ }
func (s *stubSignaler) RecordingStop()    { s.recordingStop++ }
func (s *stubSignaler) SentenceStart()    { s.sentenceStart++ }
func (s *stubSignaler) SentenceComplete() { s.sentenceComplete++ }

func testOptions() Options {
	return Options{
		WindowDuration:  200 * time.Millisecond,
		SampleInterval:  50 * time.Millisecond,
		GestureInterval: 100 * time.Millisecond,
		Debounce:        50 * time.Millisecond,
	}
}

// windowSamples is one full test window: 4 samples at 50 ms over 200 ms.
func windowSamples() [4]features.Sample {
	var out [4]features.Sample
	for i := range out {
		out[i] = features.Sample{
			F1: float64(i) * 0.1, F2: 0.5, F3: 1 - float64(i)*0.2,
			GDP: 100 + float64(i)*10,
			Az:  1,
			Gx:  float64(i * 5),
		}
	}
	return out
}

func testGestureDataset() *knn.Dataset {
	far := make([]float64, features.PerSample)
	for i := range far {
		far[i] = 100
	}
	return &knn.Dataset{
		Name:       "gesture",
		N:          2,
		D:          features.PerSample,
		K:          1,
		Classes:    2,
		Data:       append(make([]float64, features.PerSample), far...),
		Labels:     []uint8{0, 1},
		LabelNames: []string{"wave", "fist"},
	}
}

func testSentenceDataset() *knn.Dataset {
	samples := windowSamples()
	var row []float64
	for _, s := range samples {
		row = s.Append(row)
	}
	far := make([]float64, len(row))
	for i := range far {
		far[i] = row[i] + 100
	}
	return &knn.Dataset{
		Name:       "sentence",
		N:          2,
		D:          len(row),
		K:          1,
		Classes:    2,
		Data:       append(append([]float64{}, row...), far...),
		Labels:     []uint8{0, 1},
		LabelNames: []string{"ok go", "help"},
	}
}

func testScaler(d int) *knn.Scaler {
	sc := &knn.Scaler{Mean: make([]float64, d), Scale: make([]float64, d)}
	for i := range sc.Scale {
		sc.Scale[i] = 1
	}
	return sc
}

func newTestSession(t *testing.T) (*Session, *stubSignaler, *fakeClock) {
	t.Helper()
	sig := &stubSignaler{}
	clk := &fakeClock{t: time.Unix(5000, 0)}
	sentence := testSentenceDataset()
	sess := NewWithClock(testGestureDataset(), sentence, testScaler(sentence.D), sig, testOptions(), clk.now)
	return sess, sig, clk
}

func hasGestureLine(lines []string) bool {
	for _, l := range lines {
		if strings.Contains(l, `"mode":"gesture"`) {
			return true
		}
	}
	return false
}

func TestGestureClassificationRateLimited(t *testing.T) {
	sess, _, clk := newTestSession(t)

	res := sess.Tick(features.Sample{}, false, clk.now())
	require.Len(t, res.Lines, 1)
	assert.Contains(t, res.Lines[0], `"label":"wave"`)
	assert.Contains(t, res.Lines[0], `"meanD":0.00`)

	clk.advance(50 * time.Millisecond)
	res = sess.Tick(features.Sample{}, false, clk.now())
	assert.Empty(t, res.Lines, "gesture path runs at its own period, not every tick")

	clk.advance(50 * time.Millisecond)
	res = sess.Tick(features.Sample{}, false, clk.now())
	require.Len(t, res.Lines, 1)
	assert.True(t, hasGestureLine(res.Lines))
}

func TestGestureLabelTracksDataset(t *testing.T) {
	sess, _, clk := newTestSession(t)

	far := features.Sample{F1: 100, F2: 100, F3: 100, F4: 100, F5: 100, GDP: 100, Ax: 100, Ay: 100, Az: 100, Gx: 100, Gy: 100, Gz: 100}
	res := sess.Tick(far, false, clk.now())
	require.Len(t, res.Lines, 1)
	assert.Contains(t, res.Lines[0], `"label":"fist"`)
}

func TestButtonPressDebounced(t *testing.T) {
	sess, sig, clk := newTestSession(t)

	// The press edge is ignored until the level has been stable for the
	// debounce window.
	res := sess.Tick(features.Sample{}, true, clk.now())
	assert.Empty(t, res.Events)
	assert.False(t, sess.Recording())

	clk.advance(60 * time.Millisecond)
	res = sess.Tick(features.Sample{}, true, clk.now())
	require.Equal(t, []Event{EventSentenceStart}, res.Events)
	require.True(t, sess.Recording())
	assert.Equal(t, 1, sig.sentenceStart)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, `{"event":"sentence_start"}`, res.Lines[0])
	assert.Equal(t, `{"mode":"sentence","recording":true,"progress":0.00}`, res.Lines[1])
}

func TestHeldButtonStartsOnce(t *testing.T) {
	sess, sig, clk := newTestSession(t)

	sess.Tick(features.Sample{}, true, clk.now())
	clk.advance(60 * time.Millisecond)
	sess.Tick(features.Sample{}, true, clk.now())
	require.True(t, sess.Recording())

	for i := 0; i < 2; i++ {
		clk.advance(50 * time.Millisecond)
		res := sess.Tick(features.Sample{}, true, clk.now())
		assert.Empty(t, res.Events, "held button must not retrigger")
	}
	assert.Equal(t, 1, sig.sentenceStart)
}

func TestStartCommandIgnoredWhileRecording(t *testing.T) {
	sess, sig, clk := newTestSession(t)

	res := sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	require.Equal(t, []Event{EventSentenceStart}, res.Events)
	require.True(t, sess.Recording())

	res = sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	assert.Empty(t, res.Events)
	assert.Empty(t, res.Lines)
	assert.Equal(t, 1, sig.sentenceStart)
}

func TestGestureSuppressedWhileRecording(t *testing.T) {
	sess, _, clk := newTestSession(t)

	sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	for i := 0; i < 3; i++ {
		res := sess.Tick(features.Sample{}, false, clk.now())
		assert.False(t, hasGestureLine(res.Lines), "tick %d", i)
		clk.advance(50 * time.Millisecond)
	}
}

func TestSentenceWindowEndToEnd(t *testing.T) {
	sess, sig, clk := newTestSession(t)
	samples := windowSamples()

	res := sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	require.Equal(t, []Event{EventSentenceStart}, res.Events)

	for i := 0; i < 3; i++ {
		res = sess.Tick(samples[i], false, clk.now())
		require.Len(t, res.Lines, 1, "tick %d", i)
		assert.Contains(t, res.Lines[0], `"recording":true`, "tick %d", i)
		assert.Empty(t, res.Events, "tick %d", i)
		clk.advance(50 * time.Millisecond)
	}

	res = sess.Tick(samples[3], false, clk.now())
	require.Equal(t, []Event{EventSentenceComplete}, res.Events)
	require.Len(t, res.Lines, 2)
	// Recording is already cleared when the final progress line is built.
	assert.Equal(t, `{"mode":"sentence","recording":true,"progress":0.00}`, res.Lines[0])
	assert.Equal(t,
		`{"mode":"sentence","recording":false,"sentence":"ok go","confidence":1.000,"meanD":0.00}`,
		res.Lines[1])

	assert.False(t, sess.Recording())
	assert.Equal(t, 1, sig.sentenceComplete)
}

func TestRestartAfterCompletion(t *testing.T) {
	sess, sig, clk := newTestSession(t)
	samples := windowSamples()

	sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	for i := 0; i < 4; i++ {
		sess.Tick(samples[i], false, clk.now())
		clk.advance(50 * time.Millisecond)
	}
	require.False(t, sess.Recording())

	res := sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	assert.Equal(t, []Event{EventSentenceStart}, res.Events)
	assert.True(t, sess.Recording())
	assert.Equal(t, 2, sig.sentenceStart)
}

func TestEndCommandAbortsRecording(t *testing.T) {
	sess, sig, clk := newTestSession(t)

	sess.HandleCommand(hostlink.CmdStartRecording, clk.now())
	clk.advance(50 * time.Millisecond)
	sess.Tick(features.Sample{}, false, clk.now())
	require.True(t, sess.Recording())

	res := sess.HandleCommand(hostlink.CmdEndRecording, clk.now())
	require.Equal(t, []Event{EventRecordingStop}, res.Events)
	assert.Equal(t, []string{`{"event":"recording_stop"}`}, res.Lines)
	assert.False(t, sess.Recording())
	assert.Equal(t, 1, sig.recordingStop)

	// Gesture classification resumes on the next due tick.
	clk.advance(100 * time.Millisecond)
	res = sess.Tick(features.Sample{}, false, clk.now())
	assert.True(t, hasGestureLine(res.Lines))
}

func TestEndCommandIdleIsNoop(t *testing.T) {
	sess, sig, clk := newTestSession(t)

	res := sess.HandleCommand(hostlink.CmdEndRecording, clk.now())
	assert.Empty(t, res.Events)
	assert.Empty(t, res.Lines)
	assert.Zero(t, sig.recordingStop)
}
