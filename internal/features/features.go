package features

// PerSample is the number of scalar features extracted from one glove frame.
const PerSample = 12

// Sample is one normalized glove observation: five flex channels scaled to
// 0..1, the raw gyro magnitude, acceleration in g, and angular rate in deg/s.
type Sample struct {
	F1, F2, F3, F4, F5 float64 // flex sensors (normalized 0-1)

	GDP float64 // gyro magnitude, raw sensor units

	Ax, Ay, Az float64 // accelerometer (g)

	Gx, Gy, Gz float64 // gyroscope (deg/s)
}

// Append writes the sample's features to dst in the canonical order used by
// the training tools: f1..f5, gdp, ax, ay, az, gx, gy, gz.
func (s Sample) Append(dst []float64) []float64 {
	return append(dst,
		s.F1, s.F2, s.F3, s.F4, s.F5,
		s.GDP,
		s.Ax, s.Ay, s.Az,
		s.Gx, s.Gy, s.Gz,
	)
}

// Vector returns the sample as a feature vector in canonical order.
func (s Sample) Vector() []float64 {
	return s.Append(make([]float64, 0, PerSample))
}
