package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/angkonn/EchoSignRealtime/internal/features"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker            string
	MQTTClientIDProducer  string
	MQTTClientIDCollector string
	MQTTClientIDConsole   string
	MQTTClientIDWeb       string
	MQTTClientIDDisplay   string

	// Topics
	TopicStatus string
	TopicEvents string
	TopicRaw    string

	// Host serial link
	SerialPort string
	SerialBaud uint

	// Glove hardware
	I2CBus      string
	ADC1I2CAddr uint16
	ADC2I2CAddr uint16
	ButtonPin   string
	LEDPin      string
	BuzzerPin   string
	UseMock     bool

	// Flex calibration bounds (the calibration store). Min must differ from
	// Max on every channel; normalization does not defend against a zero span.
	FlexMin [5]int
	FlexMax [5]int

	// Timing (milliseconds)
	TickInterval    int // sentence sampling period
	GestureInterval int // gesture classification period
	DebounceDelay   int // button debounce window
	WindowDuration  int // sentence window length

	// Web server
	WebServerPort int

	// Display
	DisplayUpdateInterval int // milliseconds
}

// Package-level unexported variables for singleton pattern; external code
// must use InitGlobal() to set and Get() to read, ensuring thread safety.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PRODUCER":
		c.MQTTClientIDProducer = value
	case "MQTT_CLIENT_ID_COLLECTOR":
		c.MQTTClientIDCollector = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value

	// Topics
	case "TOPIC_STATUS":
		c.TopicStatus = value
	case "TOPIC_EVENTS":
		c.TopicEvents = value
	case "TOPIC_RAW":
		c.TopicRaw = value

	// Host serial link
	case "SERIAL_PORT":
		c.SerialPort = value
	case "SERIAL_BAUD":
		baud, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid SERIAL_BAUD %q: %w", value, err)
		}
		c.SerialBaud = uint(baud)

	// Glove hardware
	case "I2C_BUS":
		c.I2CBus = value
	case "ADC1_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid ADC1_I2C_ADDR %q: %w", value, err)
		}
		c.ADC1I2CAddr = uint16(addr)
	case "ADC2_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid ADC2_I2C_ADDR %q: %w", value, err)
		}
		c.ADC2I2CAddr = uint16(addr)
	case "BUTTON_GPIO_PIN":
		c.ButtonPin = value
	case "LED_GPIO_PIN":
		c.LEDPin = value
	case "BUZZER_GPIO_PIN":
		c.BuzzerPin = value
	case "USE_MOCK_GLOVE":
		mock, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid USE_MOCK_GLOVE %q: %w", value, err)
		}
		c.UseMock = mock

	// Timing
	case "TICK_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid TICK_INTERVAL %q: %w", value, err)
		}
		c.TickInterval = interval
	case "GESTURE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GESTURE_INTERVAL %q: %w", value, err)
		}
		c.GestureInterval = interval
	case "DEBOUNCE_DELAY":
		delay, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DEBOUNCE_DELAY %q: %w", value, err)
		}
		c.DebounceDelay = delay
	case "WINDOW_DURATION":
		duration, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WINDOW_DURATION %q: %w", value, err)
		}
		c.WindowDuration = duration

	// Web server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	// Display
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval

	default:
		// Flex calibration: FLEX<n>_MIN / FLEX<n>_MAX, n = 1..5
		if strings.HasPrefix(key, "FLEX") {
			return c.setFlexBound(key, value)
		}
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// setFlexBound parses FLEX<n>_MIN / FLEX<n>_MAX calibration keys.
func (c *Config) setFlexBound(key, value string) error {
	rest, isMin := strings.CutSuffix(key, "_MIN")
	if !isMin {
		var isMax bool
		rest, isMax = strings.CutSuffix(key, "_MAX")
		if !isMax {
			return fmt.Errorf("unknown config key: %q", key)
		}
	}

	n, err := strconv.Atoi(strings.TrimPrefix(rest, "FLEX"))
	if err != nil || n < 1 || n > 5 {
		return fmt.Errorf("unknown config key: %q", key)
	}

	bound, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}

	if isMin {
		c.FlexMin[n-1] = bound
	} else {
		c.FlexMax[n-1] = bound
	}
	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicStatus == "" {
		return fmt.Errorf("TOPIC_STATUS is required")
	}
	if c.TopicEvents == "" {
		return fmt.Errorf("TOPIC_EVENTS is required")
	}
	if c.SerialPort == "" {
		return fmt.Errorf("SERIAL_PORT is required")
	}
	if c.SerialBaud == 0 {
		return fmt.Errorf("SERIAL_BAUD is required")
	}
	if c.TickInterval == 0 {
		return fmt.Errorf("TICK_INTERVAL is required")
	}
	if c.GestureInterval == 0 {
		return fmt.Errorf("GESTURE_INTERVAL is required")
	}
	for i := 0; i < 5; i++ {
		if c.FlexMax[i] == c.FlexMin[i] {
			return fmt.Errorf("FLEX%d_MIN and FLEX%d_MAX must span a nonzero range", i+1, i+1)
		}
	}
	return nil
}

// Calibration returns the flex bounds in the normalizer's representation.
func (c *Config) Calibration() features.Calibration {
	return features.Calibration{FlexMin: c.FlexMin, FlexMax: c.FlexMax}
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
