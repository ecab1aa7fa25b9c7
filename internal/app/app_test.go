package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/angkonn/EchoSignRealtime/internal/config"
	"github.com/angkonn/EchoSignRealtime/internal/glove"
	"github.com/angkonn/EchoSignRealtime/internal/session"
)

func TestRawLineFormat(t *testing.T) {
	frame := glove.RawFrame{
		Flex: [5]int{12000, 11500, 13000, 9800, 10200},
		Ax:   120, Ay: -340, Az: 16384,
		Gx: 3, Gy: 4, Gz: 0,
	}

	want := "FLEX: 12000 11500 13000 9800 10200 | ACC: 120 -340 16384 | GYRO: 3 4 0 | GDP=5.000"
	assert.Equal(t, want, RawLine(frame))
}

func TestSessionOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		WindowDuration:  2000,
		TickInterval:    25,
		GestureInterval: 200,
		DebounceDelay:   30,
	}

	opts := sessionOptions(cfg)
	assert.Equal(t, 2*time.Second, opts.WindowDuration)
	assert.Equal(t, 25*time.Millisecond, opts.SampleInterval)
	assert.Equal(t, 200*time.Millisecond, opts.GestureInterval)
	assert.Equal(t, 30*time.Millisecond, opts.Debounce)
}

func TestSessionOptionsDefaults(t *testing.T) {
	// Zero config values fall back rather than producing zero periods.
	opts := sessionOptions(&config.Config{})
	assert.Equal(t, session.DefaultOptions(), opts)
}
