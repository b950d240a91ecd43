package main

import (
	"log"

	"github.com/rutabikini/site/config"
	"github.com/rutabikini/site/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	log.Fatal(server.Start(cfg))
}
