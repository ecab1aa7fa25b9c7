// Package session owns the per-tick mode decision: instantaneous gesture
// classification by default, windowed sentence classification while a
// recording is active. It consolidates what used to be loose mode flags
// (button debounce state, recording flags, last tick times) into one object
// so the Idle/Recording/Filled transitions stay auditable.
package session

import (
	"time"

	"github.com/angkonn/EchoSignRealtime/internal/feedback"
	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/hostlink"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
	"github.com/angkonn/EchoSignRealtime/internal/window"
)

// Options configures the session timing.
type Options struct {
	WindowDuration  time.Duration // sentence window length
	SampleInterval  time.Duration // minimum sentence sample spacing
	GestureInterval time.Duration // gesture classification period
	Debounce        time.Duration // button debounce window
}

// DefaultOptions matches the documented timing: 4 s windows sampled at
// 20 Hz, gesture classification at 10 Hz, 50 ms debounce.
func DefaultOptions() Options {
	return Options{
		WindowDuration:  window.DefaultDuration,
		SampleInterval:  window.DefaultInterval,
		GestureInterval: 100 * time.Millisecond,
		Debounce:        50 * time.Millisecond,
	}
}

// TickResult is what one tick produced: status lines for the host, in emit
// order, plus any transition events fired.
type TickResult struct {
	Lines  []string
	Events []Event
}

// Session is the mode controller. It is owned by a single tick loop; all
// methods must be called from that loop.
type Session struct {
	gesture  *knn.Dataset
	sentence *knn.Dataset
	scaler   *knn.Scaler
	win      *window.Buffer
	signaler feedback.Signaler

	opts Options

	lastReading   bool // raw button level last tick
	stableButton  bool // debounced button level
	lastBounce    time.Time
	lastGestureAt time.Time
}

// New creates a session classifying against the given datasets.
func New(gesture, sentence *knn.Dataset, scaler *knn.Scaler, sig feedback.Signaler, opts Options) *Session {
	return &Session{
		gesture:  gesture,
		sentence: sentence,
		scaler:   scaler,
		win:      window.New(opts.WindowDuration, opts.SampleInterval),
		signaler: sig,
		opts:     opts,
	}
}

// NewWithClock is New with an injected clock for the window buffer.
func NewWithClock(gesture, sentence *knn.Dataset, scaler *knn.Scaler, sig feedback.Signaler, opts Options, now func() time.Time) *Session {
	s := New(gesture, sentence, scaler, sig, opts)
	s.win = window.NewWithClock(opts.WindowDuration, opts.SampleInterval, now)
	return s
}

// Recording reports whether a sentence window is currently being recorded.
func (s *Session) Recording() bool {
	return s.win.Recording()
}

// Tick processes one sampling tick: debounce the button, then either feed
// the sentence window or run the gesture path.
func (s *Session) Tick(sample features.Sample, buttonDown bool, now time.Time) TickResult {
	var res TickResult

	if pressed := s.debounce(buttonDown, now); pressed {
		s.startSentence(&res)
	}

	if s.win.Recording() {
		complete := s.win.Add(sample)
		res.Lines = append(res.Lines, ProgressLine(s.win.Progress()))
		if complete {
			s.finishSentence(&res)
		}
		// gesture path is suppressed for the whole recording
		return res
	}

	if now.Sub(s.lastGestureAt) >= s.opts.GestureInterval {
		s.lastGestureAt = now
		label, meanD := knn.Classify(s.gesture, sample.Vector())
		res.Lines = append(res.Lines, GestureLine(s.gesture.LabelName(label), meanD, sample))
	}

	return res
}

// HandleCommand applies one host command. 'S' behaves like a button press;
// 'E' is the external forced reset that abandons an in-flight recording.
func (s *Session) HandleCommand(cmd hostlink.Command, now time.Time) TickResult {
	var res TickResult

	switch cmd {
	case hostlink.CmdStartRecording:
		s.startSentence(&res)
	case hostlink.CmdEndRecording:
		if s.win.Recording() || s.win.Filled() {
			s.win.Reset()
			s.signaler.RecordingStop()
			res.Events = append(res.Events, EventRecordingStop)
			res.Lines = append(res.Lines, EventRecordingStop.Line())
		}
	}
	return res
}

// debounce tracks the raw button level and reports a debounced press edge.
func (s *Session) debounce(buttonDown bool, now time.Time) bool {
	if buttonDown != s.lastReading {
		s.lastBounce = now
		s.lastReading = buttonDown
	}
	if now.Sub(s.lastBounce) < s.opts.Debounce || buttonDown == s.stableButton {
		return false
	}
	s.stableButton = buttonDown
	return buttonDown
}

// startSentence begins a window unless one is already active; re-entrant
// triggers while recording are ignored here, never forwarded to the buffer.
func (s *Session) startSentence(res *TickResult) {
	if s.win.Recording() {
		return
	}
	s.win.Start()
	s.signaler.SentenceStart()
	res.Events = append(res.Events, EventSentenceStart)
	res.Lines = append(res.Lines, EventSentenceStart.Line())
}

// finishSentence classifies the completed window, emits the result, and
// resets so the next trigger can start a fresh recording.
func (s *Session) finishSentence(res *TickResult) {
	s.signaler.SentenceComplete()

	label, meanD := s.win.Predict(s.sentence, s.scaler)
	confidence := knn.Confidence(meanD)

	res.Lines = append(res.Lines, SentenceLine(s.sentence.LabelName(label), confidence, meanD))
	res.Events = append(res.Events, EventSentenceComplete)

	s.win.Reset()
}
