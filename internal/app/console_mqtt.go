package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/angkonn/EchoSignRealtime/internal/config"
)

// statusRecord is the loose shape of every status line; which fields are
// populated depends on the mode.
type statusRecord struct {
	Mode      string  `json:"mode"`
	Label     string  `json:"label"`
	Sentence  string  `json:"sentence"`
	MeanD     float64 `json:"meanD"`
	GDP       float64 `json:"gdp"`
	Recording bool    `json:"recording"`
	Progress  float64 `json:"progress"`
	Conf      float64 `json:"confidence"`
}

type eventRecord struct {
	Event string `json:"event"`
}

// RunConsoleMQTT subscribes to the glove's status and events topics and
// pretty-prints every record.
func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to status records
	statusToken := client.Subscribe(cfg.TopicStatus, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r statusRecord
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("console: status unmarshal error: %v", err)
			return
		}

		switch {
		case r.Mode == "gesture":
			fmt.Printf("[GEST] label=%-10s meanD=%6.2f gdp=%7.1f\n", r.Label, r.MeanD, r.GDP)
		case r.Mode == "sentence" && r.Recording:
			fmt.Printf("[SENT] recording... %3.0f%%\n", r.Progress*100)
		case r.Mode == "sentence":
			fmt.Printf("[SENT] %q  confidence=%.3f meanD=%.2f\n", r.Sentence, r.Conf, r.MeanD)
		}
	})
	statusToken.Wait()
	if statusToken.Error() != nil {
		return statusToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicStatus)

	// Subscribe to transition events
	eventsToken := client.Subscribe(cfg.TopicEvents, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var e eventRecord
		if err := json.Unmarshal(msg.Payload(), &e); err != nil {
			log.Printf("console: event unmarshal error: %v", err)
			return
		}
		fmt.Printf("[EVNT] %s\n", e.Event)
	})
	eventsToken.Wait()
	if eventsToken.Error() != nil {
		return eventsToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicEvents)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
