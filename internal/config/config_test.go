package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig has every key set, with comments and blank lines mixed in the
// way a hand-edited file would have them.
const validConfig = `# glove configuration
MQTT_BROKER=tcp://localhost:1883
MQTT_CLIENT_ID_PRODUCER=glove-producer
MQTT_CLIENT_ID_COLLECTOR=glove-collector
MQTT_CLIENT_ID_CONSOLE=glove-console
MQTT_CLIENT_ID_WEB=glove-web
MQTT_CLIENT_ID_DISPLAY=glove-display

TOPIC_STATUS=echosign/status
TOPIC_EVENTS=echosign/events
TOPIC_RAW=echosign/raw

SERIAL_PORT=/dev/ttyAMA0
SERIAL_BAUD=115200

I2C_BUS=1
ADC1_I2C_ADDR=0x48
ADC2_I2C_ADDR=0x49
BUTTON_GPIO_PIN=GPIO17
LED_GPIO_PIN=GPIO27
BUZZER_GPIO_PIN=GPIO22
USE_MOCK_GLOVE=false

FLEX1_MIN=6000
FLEX1_MAX=18000
FLEX2_MIN=6100
FLEX2_MAX=18100
FLEX3_MIN=6200
FLEX3_MAX=18200
FLEX4_MIN=6300
FLEX4_MAX=18300
FLEX5_MIN=6400
FLEX5_MAX=18400

TICK_INTERVAL=50
GESTURE_INTERVAL=100
DEBOUNCE_DELAY=50
WINDOW_DURATION=4000

WEB_SERVER_PORT=8080
DISPLAY_UPDATE_INTERVAL=250
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glove_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "tcp://localhost:1883", cfg.MQTTBroker)
	assert.Equal(t, "glove-producer", cfg.MQTTClientIDProducer)
	assert.Equal(t, "echosign/status", cfg.TopicStatus)
	assert.Equal(t, "echosign/events", cfg.TopicEvents)
	assert.Equal(t, "echosign/raw", cfg.TopicRaw)

	assert.Equal(t, "/dev/ttyAMA0", cfg.SerialPort)
	assert.Equal(t, uint(115200), cfg.SerialBaud)

	assert.Equal(t, "1", cfg.I2CBus)
	assert.Equal(t, uint16(0x48), cfg.ADC1I2CAddr)
	assert.Equal(t, uint16(0x49), cfg.ADC2I2CAddr)
	assert.Equal(t, "GPIO17", cfg.ButtonPin)
	assert.False(t, cfg.UseMock)

	assert.Equal(t, [5]int{6000, 6100, 6200, 6300, 6400}, cfg.FlexMin)
	assert.Equal(t, [5]int{18000, 18100, 18200, 18300, 18400}, cfg.FlexMax)

	assert.Equal(t, 50, cfg.TickInterval)
	assert.Equal(t, 100, cfg.GestureInterval)
	assert.Equal(t, 50, cfg.DebounceDelay)
	assert.Equal(t, 4000, cfg.WindowDuration)
	assert.Equal(t, 8080, cfg.WebServerPort)
	assert.Equal(t, 250, cfg.DisplayUpdateInterval)
}

func TestCalibrationAccessor(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	cal := cfg.Calibration()
	assert.Equal(t, cfg.FlexMin, cal.FlexMin)
	assert.Equal(t, cfg.FlexMax, cal.FlexMax)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+"BOGUS_KEY=1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOGUS_KEY")
}

func TestLoadUnknownFlexChannel(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+"FLEX6_MIN=0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLEX6_MIN")
}

func TestLoadMalformedLine(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+"NO_EQUALS_SIGN\n"))
	assert.Error(t, err)
}

func TestLoadMissingBroker(t *testing.T) {
	_, err := Load(writeConfig(t, "SERIAL_PORT=/dev/ttyAMA0\nSERIAL_BAUD=115200\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MQTT_BROKER")
}

func TestLoadZeroFlexSpan(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+"FLEX3_MAX=6200\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLEX3")
}

func TestLoadInvalidNumbers(t *testing.T) {
	cases := []string{
		"SERIAL_BAUD=fast\n",
		"ADC1_I2C_ADDR=0xZZ\n",
		"TICK_INTERVAL=soon\n",
		"USE_MOCK_GLOVE=maybe\n",
		"FLEX1_MIN=low\n",
	}
	for _, extra := range cases {
		_, err := Load(writeConfig(t, validConfig+extra))
		assert.Error(t, err, "line %q", extra)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
