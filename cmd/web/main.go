package main

import (
	"log"

	"practicehub_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
