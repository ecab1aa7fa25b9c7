package app

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/angkonn/EchoSignRealtime/internal/config"
)

// RunDisplay drives the glove's SSD1306 OLED: current gesture and quality in
// gesture mode, a progress readout while a sentence window records, and the
// recognized sentence after completion.
func RunDisplay() error {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Printf("display: initialized on %s", cfg.I2CBus)

	if err := showSplash(dev); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	var (
		mu       sync.RWMutex
		last     statusRecord
		haveData bool
	)

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDDisplay)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicStatus, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r statusRecord
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("display: status unmarshal error: %v", err)
			return
		}
		if r.Mode == "" {
			return // event line, nothing to show
		}
		mu.Lock()
		last = r
		haveData = true
		mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: subscribed to %s", cfg.TopicStatus)

	ticker := time.NewTicker(time.Duration(cfg.DisplayUpdateInterval) * time.Millisecond)
	defer ticker.Stop()

	log.Println("display: starting update loop")

	for range ticker.C {
		mu.RLock()
		snapshot := last
		have := haveData
		mu.RUnlock()

		if err := updateStatusDisplay(dev, snapshot, have); err != nil {
			log.Printf("display: error updating display: %v", err)
		}
	}

	return nil
}

func blankImage() *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
	for i := range img.Pix {
		img.Pix[i] = 0
	}
	return img
}

func newDrawer(img *image1bit.VerticalLSB) *font.Drawer {
	return &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
}

func updateStatusDisplay(dev *ssd1306.Dev, r statusRecord, haveData bool) error {
	img := blankImage()
	drawer := newDrawer(img)

	switch {
	case !haveData:
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("EchoSign"))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte("Waiting..."))

	case r.Mode == "sentence" && r.Recording:
		drawer.Dot = fixed.P(0, 13)
		drawer.DrawBytes([]byte("Recording..."))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte(fmt.Sprintf("%3.0f%%", r.Progress*100)))

	case r.Mode == "sentence":
		drawer.Dot = fixed.P(0, 13)
		drawer.DrawBytes([]byte("Sentence:"))
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte(truncate(r.Sentence, 18)))
		drawer.Dot = fixed.P(0, 52)
		drawer.DrawBytes([]byte(fmt.Sprintf("conf %.3f", r.Conf)))

	default: // gesture
		drawer.Dot = fixed.P(0, 13)
		drawer.DrawBytes([]byte(truncate(r.Label, 18)))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte(fmt.Sprintf("meanD %.2f", r.MeanD)))
		drawer.Dot = fixed.P(0, 52)
		drawer.DrawBytes([]byte(fmt.Sprintf("gdp %.1f", r.GDP)))
	}

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func showSplash(dev *ssd1306.Dev) error {
	img := blankImage()
	drawer := newDrawer(img)

	drawer.Dot = fixed.P(10, 26)
	drawer.DrawBytes([]byte("EchoSign"))

	drawer.Dot = fixed.P(5, 43)
	drawer.DrawBytes([]byte("Realtime"))

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
