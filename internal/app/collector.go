package app

import (
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/angkonn/EchoSignRealtime/internal/config"
	"github.com/angkonn/EchoSignRealtime/internal/feedback"
	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/glove"
	"github.com/angkonn/EchoSignRealtime/internal/hostlink"
	"github.com/angkonn/EchoSignRealtime/internal/session"
)

// RunCollector is the data-collection mode: it streams raw glove frames in
// the exact line format the offline training tools parse, and relays the
// host's S/E recording markers as feedback events.
func RunCollector() error {
	log.Println("starting echosign collector (raw glove → serial + MQTT)")

	cfg := config.Get()

	var src glove.RawFrameSource
	if cfg.UseMock {
		log.Println("using mock glove source")
		src = glove.NewMockSource()
	} else {
		var err error
		src, err = glove.NewSource()
		if err != nil {
			log.Fatalf("glove init FAILED: %v", err)
			return err
		}
	}

	var sig feedback.Signaler = feedback.Nop{}
	if !cfg.UseMock {
		gpioSig, err := feedback.NewGPIO(cfg.LEDPin, cfg.BuzzerPin)
		if err != nil {
			log.Printf("WARNING: feedback device unavailable, continuing silent: %v", err)
		} else {
			sig = gpioSig
		}
	}

	link, err := hostlink.Open(cfg.SerialPort, cfg.SerialBaud)
	if err != nil {
		log.Fatalf("serial open error: %v", err)
		return err
	}
	defer link.Close()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDCollector)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	log.Println("connected to MQTT, starting collection loop")

	ticker := time.NewTicker(time.Duration(cfg.TickInterval) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		// S/E markers from the PC-side recorder
		for done := false; !done; {
			select {
			case cmd, ok := <-link.Commands():
				if !ok {
					done = true
					break
				}
				handleMarker(cmd, sig, client, cfg)
			default:
				done = true
			}
		}

		frame, err := src.ReadRaw()
		if err != nil {
			log.Printf("glove read error: %v", err)
			continue
		}

		line := RawLine(frame)
		if err := link.WriteLine(line); err != nil {
			log.Printf("serial write error: %v", err)
		}
		if cfg.TopicRaw != "" {
			if token := client.Publish(cfg.TopicRaw, 0, false, []byte(line)); token.Wait() && token.Error() != nil {
				log.Printf("MQTT publish error (raw): %v", token.Error())
			}
		}
	}
	return nil
}

// RawLine formats one frame in the training-log format. The layout is parsed
// positionally by the offline tools and must not change:
// FLEX: f1 f2 f3 f4 f5 | ACC: ax ay az | GYRO: gx gy gz | GDP=val
func RawLine(frame glove.RawFrame) string {
	gdp := features.GyroMagnitude(frame.Gx, frame.Gy, frame.Gz)
	return fmt.Sprintf("FLEX: %d %d %d %d %d | ACC: %d %d %d | GYRO: %d %d %d | GDP=%.3f",
		frame.Flex[0], frame.Flex[1], frame.Flex[2], frame.Flex[3], frame.Flex[4],
		frame.Ax, frame.Ay, frame.Az,
		frame.Gx, frame.Gy, frame.Gz,
		gdp,
	)
}

// handleMarker signals the operator and mirrors the marker onto the events
// topic so the recording boundaries are visible downstream.
func handleMarker(cmd hostlink.Command, sig feedback.Signaler, client mqtt.Client, cfg *config.Config) {
	var ev session.Event
	switch cmd {
	case hostlink.CmdStartRecording:
		sig.RecordingStart()
		ev = session.EventRecordingStart
	case hostlink.CmdEndRecording:
		sig.RecordingStop()
		ev = session.EventRecordingStop
	default:
		return
	}
	if token := client.Publish(cfg.TopicEvents, 0, false, []byte(ev.Line())); token.Wait() && token.Error() != nil {
		log.Printf("MQTT publish error (events): %v", token.Error())
	}
}
