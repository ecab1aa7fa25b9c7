package main

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/angkonn/EchoSignRealtime/internal/feedback"
	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/glove"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
	"github.com/angkonn/EchoSignRealtime/internal/session"
)

// Standalone mock publisher: mock glove through the real pipeline, status
// lines straight to a local broker. Handy for exercising the console, web,
// and display consumers without a glove or a config file.
func main() {
	log.Println("starting echosign MQTT producer (mock)")

	opts := mqtt.NewClientOptions().
		AddBroker("tcp://localhost:1883").
		SetClientID("echosign-producer-mock")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect error: %v", token.Error())
	}
	defer client.Disconnect(250)

	src := glove.NewMockSource()
	sess := session.New(knn.GestureModel, knn.SentenceModel, knn.SentenceScaler, feedback.Nop{}, session.DefaultOptions())

	cal := features.Calibration{
		FlexMin: [5]int{6000, 6000, 6000, 6000, 6000},
		FlexMax: [5]int{18000, 18000, 18000, 18000, 18000},
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		frame, err := src.ReadRaw()
		if err != nil {
			log.Printf("error from mock source: %v", err)
			continue
		}

		sample := features.Normalize(cal, frame.Flex,
			frame.Ax, frame.Ay, frame.Az,
			frame.Gx, frame.Gy, frame.Gz)

		res := sess.Tick(sample, false, t)
		for _, line := range res.Lines {
			token := client.Publish("echosign/status", 0, true, []byte(line))
			token.Wait()

			log.Printf("%s published: %s", t.Format(time.RFC3339), line)
		}
	}
}
