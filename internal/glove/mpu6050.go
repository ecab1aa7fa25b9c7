package glove

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// MPU6050 registers used by this driver. Full-scale selects are left at
// their reset values: ±2g accelerometer, ±250 deg/s gyroscope, which is what
// the feature scale factors assume.
const (
	mpu6050Addr = 0x68

	regSmplrtDiv   = 0x19 // sample rate divider
	regConfig      = 0x1A // DLPF config
	regGyroConfig  = 0x1B
	regAccelConfig = 0x1C
	regAccelXoutH  = 0x3B // start of the 14-byte accel/temp/gyro burst
	regPwrMgmt1    = 0x6B
	regWhoAmI      = 0x75

	mpu6050WhoAmI = 0x68
)

type mpu6050 struct {
	dev i2c.Dev
}

// newMPU6050 wakes the IMU on the given bus and verifies its identity.
func newMPU6050(bus i2c.Bus) (*mpu6050, error) {
	m := &mpu6050{dev: i2c.Dev{Bus: bus, Addr: mpu6050Addr}}

	var id [1]byte
	if err := m.dev.Tx([]byte{regWhoAmI}, id[:]); err != nil {
		return nil, fmt.Errorf("MPU6050: WHO_AM_I read: %w", err)
	}
	if id[0] != mpu6050WhoAmI {
		return nil, fmt.Errorf("MPU6050: unexpected WHO_AM_I 0x%02X", id[0])
	}

	// Out of sleep, internal clock
	if err := m.write(regPwrMgmt1, 0x00); err != nil {
		return nil, fmt.Errorf("MPU6050: wake: %w", err)
	}
	// ±250 deg/s, ±2g
	if err := m.write(regGyroConfig, 0x00); err != nil {
		return nil, fmt.Errorf("MPU6050: gyro range: %w", err)
	}
	if err := m.write(regAccelConfig, 0x00); err != nil {
		return nil, fmt.Errorf("MPU6050: accel range: %w", err)
	}
	// DLPF 44 Hz, 1 kHz internal rate divided down to 100 Hz
	if err := m.write(regConfig, 0x03); err != nil {
		return nil, fmt.Errorf("MPU6050: DLPF config: %w", err)
	}
	if err := m.write(regSmplrtDiv, 0x09); err != nil {
		return nil, fmt.Errorf("MPU6050: sample rate divider: %w", err)
	}

	return m, nil
}

func (m *mpu6050) write(reg, val byte) error {
	return m.dev.Tx([]byte{reg, val}, nil)
}

// readMotion reads accel and gyro in one 14-byte burst starting at
// ACCEL_XOUT_H; the temperature words in the middle are discarded.
func (m *mpu6050) readMotion() (ax, ay, az, gx, gy, gz int16, err error) {
	var buf [14]byte
	if err = m.dev.Tx([]byte{regAccelXoutH}, buf[:]); err != nil {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("MPU6050: motion read: %w", err)
	}

	ax = int16(binary.BigEndian.Uint16(buf[0:2]))
	ay = int16(binary.BigEndian.Uint16(buf[2:4]))
	az = int16(binary.BigEndian.Uint16(buf[4:6]))
	gx = int16(binary.BigEndian.Uint16(buf[8:10]))
	gy = int16(binary.BigEndian.Uint16(buf[10:12]))
	gz = int16(binary.BigEndian.Uint16(buf[12:14]))
	return ax, ay, az, gx, gy, gz, nil
}
