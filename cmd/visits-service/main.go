// Command visits-service serves only the visits API. SERVICES is ignored.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Apurer/go-gin-petclinic/internal/app/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	cfg.Services = []string{api.ServiceVisits}
	if err := api.Run(ctx, "visits-service", cfg); err != nil {
		log.Fatalf("visits-service exited: %v", err)
	}
}
