package main

import (
	"log"

	"github.com/angkonn/EchoSignRealtime/internal/app"
)

func main() {
	log.Println("starting echosign (mock console)")

	if err := app.RunMockConsole(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
