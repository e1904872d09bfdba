package main

import (
	"log"

	"github.com/stpnv0/CafeBooker/internal/app"
	"github.com/stpnv0/CafeBooker/internal/config"
)

func main() {
	cfg := config.MustLoad()

	cafe, err := app.New(cfg)
	if err != nil {
		log.Fatalf("cafe booker init: %v", err)
	}

	if err = cafe.Run(); err != nil {
		log.Fatalf("cafe booker stopped with error: %v", err)
	}
}
