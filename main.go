package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"retirement-engine/internal/config"
	"retirement-engine/internal/handler"
	"retirement-engine/internal/penrates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	penrates.Configure(cfg.PensionRatesURL, cfg.PensionRatesTimeout)

	log.Printf("Retirement engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, handler.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
