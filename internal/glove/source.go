package glove

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"

	"github.com/angkonn/EchoSignRealtime/internal/config"
)

// gloveSource reads the physical glove: five flex channels spread over two
// ADS1115 converters (four on the first, one on the second) and an MPU6050
// for motion. All devices share one I2C bus.
type gloveSource struct {
	imu  *mpu6050
	flex [5]ads1x15.PinADC
}

// NewSource opens the I2C bus from config and initializes every glove
// device. Any failure here is fatal to the prediction pipeline for this run;
// the caller reports it once and exits rather than retrying.
func NewSource() (RawFrameSource, error) {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("glove: periph host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("glove: I2C bus %q: %w", cfg.I2CBus, err)
	}

	imu, err := newMPU6050(bus)
	if err != nil {
		return nil, err
	}
	log.Println("glove: MPU6050 initialized (±2g, ±250°/s)")

	adc1, err := ads1x15.NewADS1115(bus, &ads1x15.Opts{I2cAddress: cfg.ADC1I2CAddr})
	if err != nil {
		return nil, fmt.Errorf("glove: ADS1115 #1 at 0x%02X: %w", cfg.ADC1I2CAddr, err)
	}
	adc2, err := ads1x15.NewADS1115(bus, &ads1x15.Opts{I2cAddress: cfg.ADC2I2CAddr})
	if err != nil {
		return nil, fmt.Errorf("glove: ADS1115 #2 at 0x%02X: %w", cfg.ADC2I2CAddr, err)
	}

	src := &gloveSource{imu: imu}

	channels := []struct {
		adc *ads1x15.Dev
		ch  ads1x15.Channel
	}{
		{adc1, ads1x15.Channel0},
		{adc1, ads1x15.Channel1},
		{adc1, ads1x15.Channel2},
		{adc1, ads1x15.Channel3},
		{adc2, ads1x15.Channel0},
	}
	for i, c := range channels {
		pin, err := c.adc.PinForChannel(c.ch, 3300*physic.MilliVolt, 128*physic.Hertz, ads1x15.SaveEnergy)
		if err != nil {
			return nil, fmt.Errorf("glove: flex channel %d: %w", i+1, err)
		}
		src.flex[i] = pin
	}
	log.Println("glove: flex channels initialized on two ADS1115 converters")

	return src, nil
}

// ReadRaw reads all five flex channels and one IMU burst.
func (s *gloveSource) ReadRaw() (RawFrame, error) {
	var frame RawFrame

	for i, pin := range s.flex {
		sample, err := pin.Read()
		if err != nil {
			return RawFrame{}, fmt.Errorf("glove: flex %d read: %w", i+1, err)
		}
		frame.Flex[i] = int(sample.Raw)
	}

	ax, ay, az, gx, gy, gz, err := s.imu.readMotion()
	if err != nil {
		return RawFrame{}, err
	}
	frame.Ax, frame.Ay, frame.Az = ax, ay, az
	frame.Gx, frame.Gy, frame.Gz = gx, gy, gz

	return frame, nil
}
