package main

import (
	"flag"
	"log"

	"github.com/angkonn/EchoSignRealtime/internal/app"
	"github.com/angkonn/EchoSignRealtime/internal/config"
)

func main() {
	configPath := flag.String("config", "./glove_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting echosign glove producer (glove -> serial + MQTT)")

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunGloveProducer(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
