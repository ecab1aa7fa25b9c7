package window

import (
	"time"

	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
)

// Defaults for the sentence observation window: 4 seconds sampled at 20 Hz.
const (
	DefaultDuration = 4 * time.Second
	DefaultInterval = 50 * time.Millisecond
)

// NotReadyDistance is the sentinel distance Predict reports when the buffer
// is not filled. It is deliberately absurd; callers must gate on Filled
// rather than interpret it as a real distance.
const NotReadyDistance = 999999.0

// Buffer assembles one fixed-duration observation window of feature samples.
//
// Lifecycle: Idle -> Recording (Start) -> Filled (capacity reached or
// duration elapsed, whichever first) -> Idle (Reset). Start while already
// recording is the caller's responsibility to avoid; the controller checks
// Recording first. Samples arriving faster than the sample interval are
// silently dropped.
//
// The buffer is owned by a single tick loop and is not safe for concurrent
// use.
type Buffer struct {
	duration time.Duration
	interval time.Duration

	samples []features.Sample // capacity fixed at construction
	cursor  int

	recording  bool
	filled     bool
	startedAt  time.Time
	lastSample time.Time

	now func() time.Time
}

// New creates a buffer for one window of duration/interval samples.
func New(duration, interval time.Duration) *Buffer {
	return &Buffer{
		duration: duration,
		interval: interval,
		samples:  make([]features.Sample, int(duration/interval)),
		now:      time.Now,
	}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(duration, interval time.Duration, now func() time.Time) *Buffer {
	b := New(duration, interval)
	b.now = now
	return b
}

// Capacity returns the number of samples that make up a full window.
func (b *Buffer) Capacity() int {
	return len(b.samples)
}

// Len returns the number of samples accepted into the current window.
func (b *Buffer) Len() int {
	return b.cursor
}

// Start begins a new recording window: cursor back to zero, storage cleared,
// start time captured.
func (b *Buffer) Start() {
	b.recording = true
	b.filled = false
	b.cursor = 0
	b.startedAt = b.now()
	b.lastSample = time.Time{}
	for i := range b.samples {
		b.samples[i] = features.Sample{}
	}
}

// Recording reports whether a window is currently being recorded.
func (b *Buffer) Recording() bool {
	return b.recording
}

// Filled reports whether a completed window is waiting to be consumed.
func (b *Buffer) Filled() bool {
	return b.filled
}

// Progress returns how far the current recording has advanced through the
// window duration, clamped to 0..1. Zero when not recording.
func (b *Buffer) Progress() float64 {
	if !b.recording {
		return 0
	}
	p := float64(b.now().Sub(b.startedAt)) / float64(b.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Remaining returns the wall-clock time left in the current window, zero
// when not recording or already past the duration.
func (b *Buffer) Remaining() time.Duration {
	if !b.recording {
		return 0
	}
	elapsed := b.now().Sub(b.startedAt)
	if elapsed >= b.duration {
		return 0
	}
	return b.duration - elapsed
}

// Add offers one sample to the window and reports whether the window just
// completed. Samples are ignored while not recording, and samples spaced
// closer than the sample interval are dropped without error. The window
// completes when the buffer reaches capacity or the window duration elapses,
// whichever happens first; the completion is reported exactly once, after
// which recording stops and the contents are immutable until Reset.
func (b *Buffer) Add(s features.Sample) bool {
	if !b.recording {
		return false
	}

	now := b.now()
	if !b.lastSample.IsZero() && now.Sub(b.lastSample) < b.interval {
		// Dropped for spacing, but the duration condition still applies:
		// otherwise a flood of too-fast samples could stall completion.
		if now.Sub(b.startedAt) >= b.duration {
			b.filled = true
			b.recording = false
			return true
		}
		return false
	}

	b.samples[b.cursor] = s
	b.lastSample = now
	b.cursor++

	if b.cursor >= len(b.samples) {
		b.filled = true
		b.recording = false
		return true
	}

	// Duration fallback so sample-rate jitter cannot stall completion.
	if now.Sub(b.startedAt) >= b.duration {
		b.filled = true
		b.recording = false
		return true
	}

	return false
}

// Flatten appends the window contents to dst row-major (sample-major,
// feature-minor), including any zeroed tail left by a duration-triggered
// completion.
func (b *Buffer) Flatten(dst []float64) []float64 {
	for _, s := range b.samples {
		dst = s.Append(dst)
	}
	return dst
}

// Predict standardizes the flattened window with the dataset's scaler and
// classifies it. Only valid once Filled; otherwise it returns label 0 with
// NotReadyDistance, which callers must not treat as a real result.
func (b *Buffer) Predict(ds *knn.Dataset, scaler *knn.Scaler) (label int, meanDist float64) {
	if !b.filled {
		return 0, NotReadyDistance
	}

	query := b.Flatten(make([]float64, 0, len(b.samples)*features.PerSample))
	scaler.Standardize(query)
	return knn.Classify(ds, query)
}

// Reset returns the buffer to Idle so a new window can be started.
func (b *Buffer) Reset() {
	b.cursor = 0
	b.filled = false
	b.recording = false
}
