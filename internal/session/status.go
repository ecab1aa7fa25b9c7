package session

import (
	"fmt"

	"github.com/angkonn/EchoSignRealtime/internal/features"
)

// Status lines are composed with fmt rather than encoding/json: the host
// parsers depend on field order and per-field precision, so the lines must
// match the documented format byte for byte.

// GestureLine formats one instantaneous classification record.
func GestureLine(label string, meanD float64, s features.Sample) string {
	return fmt.Sprintf(
		`{"mode":"gesture","label":"%s","meanD":%.2f,"gdp":%.1f,"f1":%.2f,"f2":%.2f,"f3":%.2f,"f4":%.2f,"f5":%.2f,"ax":%.2f,"ay":%.2f,"az":%.2f,"gx":%.1f,"gy":%.1f,"gz":%.1f}`,
		label, meanD, s.GDP,
		s.F1, s.F2, s.F3, s.F4, s.F5,
		s.Ax, s.Ay, s.Az,
		s.Gx, s.Gy, s.Gz,
	)
}

// ProgressLine formats one sentence-recording progress record.
func ProgressLine(progress float64) string {
	return fmt.Sprintf(`{"mode":"sentence","recording":true,"progress":%.2f}`, progress)
}

// SentenceLine formats one completed sentence classification record.
func SentenceLine(sentence string, confidence, meanD float64) string {
	return fmt.Sprintf(
		`{"mode":"sentence","recording":false,"sentence":"%s","confidence":%.3f,"meanD":%.2f}`,
		sentence, confidence, meanD,
	)
}

// Event is a discrete transition notification for the feedback device and
// the events topic.
type Event string

const (
	EventRecordingStart   Event = "recording_start"
	EventRecordingStop    Event = "recording_stop"
	EventSentenceStart    Event = "sentence_start"
	EventSentenceComplete Event = "sentence_complete"
)

// Line formats the event as a status line.
func (e Event) Line() string {
	return fmt.Sprintf(`{"event":"%s"}`, string(e))
}
