// Command mockapi serves the generated fixtures as a mock provider API.
package main

import (
	"log"

	"github.com/onurerdog4n/mock-provider-api/internal/config"
	"github.com/onurerdog4n/mock-provider-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MOCKAPI] %v", err)
	}

	if err := server.New(cfg).ListenAndServe(); err != nil {
		log.Fatalf("[MOCKAPI] %v", err)
	}
}
