package glove

// RawFrame is one uncooked glove observation: five flex sensor readings plus
// a 6-axis inertial sample, exactly as delivered by the hardware.
type RawFrame struct {
	Flex [5]int `json:"flex"` // ADC counts, calibration maps them to 0-1

	Ax int16 `json:"ax"` // accel, raw ±2g counts
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`

	Gx int16 `json:"gx"` // gyro, raw ±250 deg/s counts
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`
}

// RawFrameSource is anything that can produce glove frames over time:
// the real hardware, a mock, maybe a replay source from a log later.
type RawFrameSource interface {
	ReadRaw() (RawFrame, error)
}
