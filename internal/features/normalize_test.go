package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evenCalibration(min, max int) Calibration {
	var cal Calibration
	for i := range cal.FlexMin {
		cal.FlexMin[i] = min
		cal.FlexMax[i] = max
	}
	return cal
}

func TestNormalizeScalesFlexChannels(t *testing.T) {
	cal := evenCalibration(1000, 3000)

	s := Normalize(cal, [5]int{1000, 1500, 2000, 2500, 3000}, 0, 0, 0, 0, 0, 0)

	assert.InDelta(t, 0.00, s.F1, 1e-12)
	assert.InDelta(t, 0.25, s.F2, 1e-12)
	assert.InDelta(t, 0.50, s.F3, 1e-12)
	assert.InDelta(t, 0.75, s.F4, 1e-12)
	assert.InDelta(t, 1.00, s.F5, 1e-12)
}

func TestNormalizeClampsFlexOutOfRange(t *testing.T) {
	cal := evenCalibration(1000, 3000)

	s := Normalize(cal, [5]int{-500, 0, 999, 3001, 30000}, 0, 0, 0, 0, 0, 0)

	assert.Equal(t, 0.0, s.F1)
	assert.Equal(t, 0.0, s.F2)
	assert.Equal(t, 0.0, s.F3)
	assert.Equal(t, 1.0, s.F4)
	assert.Equal(t, 1.0, s.F5)
}

func TestNormalizeScalesIMUAxes(t *testing.T) {
	cal := evenCalibration(0, 1)

	s := Normalize(cal, [5]int{}, 16384, -16384, 8192, 131, -262, 0)

	assert.InDelta(t, 1.0, s.Ax, 1e-12, "16384 LSB at ±2g is exactly 1 g")
	assert.InDelta(t, -1.0, s.Ay, 1e-12)
	assert.InDelta(t, 0.5, s.Az, 1e-12)

	assert.InDelta(t, 1.0, s.Gx, 1e-9, "131 LSB at ±250 deg/s is 1 deg/s")
	assert.InDelta(t, -2.0, s.Gy, 1e-9)
	assert.InDelta(t, 0.0, s.Gz, 1e-12)
}

func TestNormalizeGDPUsesRawGyro(t *testing.T) {
	cal := evenCalibration(0, 1)

	s := Normalize(cal, [5]int{}, 0, 0, 0, 300, 400, 0)

	// The activity measure stays in raw LSB units, not deg/s.
	assert.InDelta(t, 500.0, s.GDP, 1e-9)
}

func TestGyroMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, GyroMagnitude(0, 0, 0))
	assert.InDelta(t, 5.0, GyroMagnitude(3, 4, 0), 1e-12)
	assert.InDelta(t, 5.0, GyroMagnitude(0, -3, 4), 1e-12)
}

func TestSampleAppendOrder(t *testing.T) {
	s := Sample{
		F1: 1, F2: 2, F3: 3, F4: 4, F5: 5,
		GDP: 6,
		Ax: 7, Ay: 8, Az: 9,
		Gx: 10, Gy: 11, Gz: 12,
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	assert.Equal(t, want, s.Vector())
	assert.Len(t, s.Vector(), PerSample)

	// Append extends dst rather than replacing it.
	got := s.Append([]float64{0})
	assert.Equal(t, append([]float64{0}, want...), got)
}
