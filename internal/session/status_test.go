package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkonn/EchoSignRealtime/internal/features"
)

// The host-side parsers match these lines byte for byte, so the tests pin
// the exact strings rather than decoding them.

func TestGestureLineFormat(t *testing.T) {
	s := features.Sample{
		F1: 0.1, F2: 0.25, F3: 0.5, F4: 0.756, F5: 1,
		GDP: 345.67,
		Ax: 0.12, Ay: -0.5, Az: 1.005,
		Gx: 12.34, Gy: -56.78, Gz: 0,
	}

	got := GestureLine("hello", 1.234, s)
	want := `{"mode":"gesture","label":"hello","meanD":1.23,"gdp":345.7,` +
		`"f1":0.10,"f2":0.25,"f3":0.50,"f4":0.76,"f5":1.00,` +
		`"ax":0.12,"ay":-0.50,"az":1.00,"gx":12.3,"gy":-56.8,"gz":0.0}`
	assert.Equal(t, want, got)
}

func TestProgressLineFormat(t *testing.T) {
	assert.Equal(t, `{"mode":"sentence","recording":true,"progress":0.00}`, ProgressLine(0))
	assert.Equal(t, `{"mode":"sentence","recording":true,"progress":0.50}`, ProgressLine(0.5))
	assert.Equal(t, `{"mode":"sentence","recording":true,"progress":1.00}`, ProgressLine(1))
}

func TestSentenceLineFormat(t *testing.T) {
	got := SentenceLine("i need help", 0.4286, 1.3339)
	want := `{"mode":"sentence","recording":false,"sentence":"i need help","confidence":0.429,"meanD":1.33}`
	assert.Equal(t, want, got)
}

func TestEventLineFormat(t *testing.T) {
	assert.Equal(t, `{"event":"recording_start"}`, EventRecordingStart.Line())
	assert.Equal(t, `{"event":"recording_stop"}`, EventRecordingStop.Line())
	assert.Equal(t, `{"event":"sentence_start"}`, EventSentenceStart.Line())
	assert.Equal(t, `{"event":"sentence_complete"}`, EventSentenceComplete.Line())
}
