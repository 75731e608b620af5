package main

import (
	"log"

	"github.com/stpnv0/ExploreWithMe/internal/app"
	"github.com/stpnv0/ExploreWithMe/internal/config"
)

func main() {
	cfg := config.MustLoadStats()

	application, err := app.NewStats(cfg)
	if err != nil {
		log.Fatalf("stats app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("stats app run: %v", err)
	}
}
