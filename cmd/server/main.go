package main

import (
	"log"

	"slot_reel/internal/app"
)

func main() {
	a := app.NewApp()

	if err := a.Run(); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
