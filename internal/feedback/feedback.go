// Package feedback drives the glove's operator-facing LED and buzzer.
// The mode controller emits one event per documented transition; the beep
// patterns match what the companion tooling expects to hear.
package feedback

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Signaler consumes the discrete feedback events emitted by the session.
type Signaler interface {
	RecordingStart()
	RecordingStop()
	SentenceStart()
	SentenceComplete()
}

type gpioSignaler struct {
	led    gpio.PinOut
	buzzer gpio.PinOut
}

// NewGPIO resolves the LED and buzzer pins by name and returns a Signaler
// driving them.
func NewGPIO(ledPin, buzzerPin string) (Signaler, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("feedback: periph host init: %w", err)
	}

	led := gpioreg.ByName(ledPin)
	if led == nil {
		return nil, fmt.Errorf("feedback: LED pin %q not found", ledPin)
	}
	buzzer := gpioreg.ByName(buzzerPin)
	if buzzer == nil {
		return nil, fmt.Errorf("feedback: buzzer pin %q not found", buzzerPin)
	}

	if err := led.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("feedback: LED init: %w", err)
	}
	if err := buzzer.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("feedback: buzzer init: %w", err)
	}

	return &gpioSignaler{led: led, buzzer: buzzer}, nil
}

func (g *gpioSignaler) beep(on time.Duration, times int, off time.Duration) {
	for i := 0; i < times; i++ {
		g.buzzer.Out(gpio.High)
		time.Sleep(on)
		g.buzzer.Out(gpio.Low)
		if i+1 < times {
			time.Sleep(off)
		}
	}
}

// RecordingStart: LED on, double beep.
func (g *gpioSignaler) RecordingStart() {
	g.led.Out(gpio.High)
	g.beep(80*time.Millisecond, 2, 80*time.Millisecond)
}

// RecordingStop: LED off, single short beep.
func (g *gpioSignaler) RecordingStop() {
	g.led.Out(gpio.Low)
	g.beep(60*time.Millisecond, 1, 0)
}

// SentenceStart: LED on, triple beep.
func (g *gpioSignaler) SentenceStart() {
	g.led.Out(gpio.High)
	g.beep(100*time.Millisecond, 3, 50*time.Millisecond)
}

// SentenceComplete: LED off, one longer beep.
func (g *gpioSignaler) SentenceComplete() {
	g.led.Out(gpio.Low)
	g.beep(150*time.Millisecond, 1, 0)
}

// Nop is a Signaler that does nothing, for tests and mock runs.
type Nop struct{}

func (Nop) RecordingStart()   {}
func (Nop) RecordingStop()    {}
func (Nop) SentenceStart()    {}
func (Nop) SentenceComplete() {}
