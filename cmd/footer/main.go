package main

import (
	"log"

	"github.com/ecosystem-ai/footer/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ footer failed to start: %v", err)
	}
}
