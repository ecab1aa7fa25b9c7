package features

import "math"

// Scale factors for the MPU6050's 16-bit outputs at the ranges the glove is
// configured for: ±2g accelerometer, ±250 deg/s gyroscope.
const (
	accelLSBPerG     = 16384.0
	gyroLSBPerDegSec = 131.0
)

// Calibration holds the per-channel flex sensor bounds measured for one
// glove (open hand vs closed fist). Max must differ from Min on every
// channel; a zero span is a calibration error and is not defended against
// here.
type Calibration struct {
	FlexMin [5]int
	FlexMax [5]int
}

// Normalize maps one raw glove frame to a feature sample. Flex channels are
// scaled into 0..1 against the calibration bounds and clamped; the gyro
// magnitude is computed on the raw (unscaled) axes as an activity measure.
// Pure function of its inputs.
func Normalize(cal Calibration, flex [5]int, ax, ay, az, gx, gy, gz int16) Sample {
	return Sample{
		F1: clamp01(float64(flex[0]-cal.FlexMin[0]) / float64(cal.FlexMax[0]-cal.FlexMin[0])),
		F2: clamp01(float64(flex[1]-cal.FlexMin[1]) / float64(cal.FlexMax[1]-cal.FlexMin[1])),
		F3: clamp01(float64(flex[2]-cal.FlexMin[2]) / float64(cal.FlexMax[2]-cal.FlexMin[2])),
		F4: clamp01(float64(flex[3]-cal.FlexMin[3]) / float64(cal.FlexMax[3]-cal.FlexMin[3])),
		F5: clamp01(float64(flex[4]-cal.FlexMin[4]) / float64(cal.FlexMax[4]-cal.FlexMin[4])),

		GDP: GyroMagnitude(gx, gy, gz),

		Ax: float64(ax) / accelLSBPerG,
		Ay: float64(ay) / accelLSBPerG,
		Az: float64(az) / accelLSBPerG,

		Gx: float64(gx) / gyroLSBPerDegSec,
		Gy: float64(gy) / gyroLSBPerDegSec,
		Gz: float64(gz) / gyroLSBPerDegSec,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GyroMagnitude computes the gyro activity measure from raw axis readings.
// Exposed for the data-collection mode, which logs it alongside raw values.
func GyroMagnitude(gx, gy, gz int16) float64 {
	fgx := float64(gx)
	fgy := float64(gy)
	fgz := float64(gz)
	return math.Sqrt(fgx*fgx + fgy*fgy + fgz*fgz)
}
