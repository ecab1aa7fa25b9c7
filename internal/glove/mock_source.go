package glove

import (
	"math"
	"time"
)

type mockSource struct {
	start time.Time
}

// NewMockSource creates a mock glove that generates smooth changing
// readings, so the full pipeline can run without hardware attached.
func NewMockSource() RawFrameSource {
	return &mockSource{start: time.Now()}
}

func (m *mockSource) ReadRaw() (RawFrame, error) {
	elapsed := time.Since(m.start).Seconds()

	var frame RawFrame
	for i := range frame.Flex {
		phase := elapsed*0.8 + float64(i)*0.9
		// mid-range ADC counts swinging over a plausible flex span
		frame.Flex[i] = 12000 + int(6000*math.Sin(phase))
	}

	frame.Ax = int16(3000 * math.Sin(elapsed*1.3))
	frame.Ay = int16(3000 * math.Cos(elapsed*0.7))
	frame.Az = int16(16384 + 500*math.Sin(elapsed*2.1)) // gravity plus wobble
	frame.Gx = int16(4000 * math.Sin(elapsed*1.9))
	frame.Gy = int16(4000 * math.Cos(elapsed*1.1))
	frame.Gz = int16(2000 * math.Sin(elapsed*0.5))

	return frame, nil
}
