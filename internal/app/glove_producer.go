package app

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/angkonn/EchoSignRealtime/internal/config"
	"github.com/angkonn/EchoSignRealtime/internal/feedback"
	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/glove"
	"github.com/angkonn/EchoSignRealtime/internal/hostlink"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
	"github.com/angkonn/EchoSignRealtime/internal/session"
)

// RunGloveProducer is the real-time prediction daemon: one 50 ms tick loop
// reading the glove, classifying, and fanning every status line out to the
// serial host link and the MQTT status topic.
func RunGloveProducer() error {
	log.Println("starting echosign glove producer (glove → serial + MQTT)")

	cfg := config.Get()

	// --- glove source (real hardware or mock) ---
	var src glove.RawFrameSource
	if cfg.UseMock {
		log.Println("using mock glove source")
		src = glove.NewMockSource()
	} else {
		var err error
		src, err = glove.NewSource()
		if err != nil {
			// sensor init failure is fatal for this run; report once, no retries
			log.Fatalf("glove init FAILED: %v", err)
			return err
		}
	}

	// --- feedback device (LED + buzzer) ---
	var sig feedback.Signaler = feedback.Nop{}
	if !cfg.UseMock {
		gpioSig, err := feedback.NewGPIO(cfg.LEDPin, cfg.BuzzerPin)
		if err != nil {
			log.Printf("WARNING: feedback device unavailable, continuing silent: %v", err)
		} else {
			sig = gpioSig
		}
	}

	// --- sentence trigger button ---
	var button gpio.PinIn
	if !cfg.UseMock && cfg.ButtonPin != "" {
		button = gpioreg.ByName(cfg.ButtonPin)
		if button == nil {
			log.Printf("WARNING: button pin %q not found, sentence mode via serial only", cfg.ButtonPin)
		} else if err := button.In(gpio.PullUp, gpio.NoEdge); err != nil {
			log.Printf("WARNING: button pin init: %v", err)
			button = nil
		}
	}

	// --- serial host link ---
	link, err := hostlink.Open(cfg.SerialPort, cfg.SerialBaud)
	if err != nil {
		log.Fatalf("serial open error: %v", err)
		return err
	}
	defer link.Close()

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	cal := cfg.Calibration()
	sess := session.New(knn.GestureModel, knn.SentenceModel, knn.SentenceScaler, sig, sessionOptions(cfg))

	log.Println("connected to MQTT, starting prediction loop")

	ticker := time.NewTicker(time.Duration(cfg.TickInterval) * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		// Host commands first, like the firmware's serial poll.
		drainCommands(link, client, cfg, sess, t)

		frame, err := src.ReadRaw()
		if err != nil {
			log.Printf("glove read error: %v", err)
			continue
		}

		buttonDown := false
		if button != nil {
			// pull-up wiring: pressed is low
			buttonDown = button.Read() == gpio.Low
		}

		sample := features.Normalize(cal, frame.Flex,
			frame.Ax, frame.Ay, frame.Az,
			frame.Gx, frame.Gy, frame.Gz)

		emit(link, client, cfg, sess.Tick(sample, buttonDown, t))
	}
	return nil
}

// sessionOptions maps the configured millisecond intervals onto the session
// timing, keeping the documented defaults where the config is silent.
func sessionOptions(cfg *config.Config) session.Options {
	opts := session.DefaultOptions()
	if cfg.WindowDuration > 0 {
		opts.WindowDuration = time.Duration(cfg.WindowDuration) * time.Millisecond
	}
	if cfg.TickInterval > 0 {
		opts.SampleInterval = time.Duration(cfg.TickInterval) * time.Millisecond
	}
	if cfg.GestureInterval > 0 {
		opts.GestureInterval = time.Duration(cfg.GestureInterval) * time.Millisecond
	}
	if cfg.DebounceDelay > 0 {
		opts.Debounce = time.Duration(cfg.DebounceDelay) * time.Millisecond
	}
	return opts
}

// drainCommands applies every pending host command without blocking the tick.
func drainCommands(link *hostlink.Link, client mqtt.Client, cfg *config.Config, sess *session.Session, now time.Time) {
	for {
		select {
		case cmd, ok := <-link.Commands():
			if !ok {
				return
			}
			emit(link, client, cfg, sess.HandleCommand(cmd, now))
		default:
			return
		}
	}
}

// emit writes each status line to the serial link and the status topic, and
// publishes transition events on the events topic.
func emit(link *hostlink.Link, client mqtt.Client, cfg *config.Config, res session.TickResult) {
	for _, line := range res.Lines {
		if err := link.WriteLine(line); err != nil {
			log.Printf("serial write error: %v", err)
		}
		if token := client.Publish(cfg.TopicStatus, 0, true, []byte(line)); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (status): %v", token.Error())
		}
	}
	for _, ev := range res.Events {
		if token := client.Publish(cfg.TopicEvents, 0, false, []byte(ev.Line())); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (events): %v", token.Error())
		}
	}
}
