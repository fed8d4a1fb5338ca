package main

import (
	"log"

	"slot_reel/internal/app"
)

func main() {
	a := app.NewClientApp()

	if err := a.Run(); err != nil {
		log.Fatalf("failed to run client: %v", err)
	}
}
