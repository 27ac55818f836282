// Command customers-service serves only the customers API. SERVICES is ignored.
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
	cfg.Services = []string{api.ServiceCustomers}
	if err := api.Run(ctx, "customers-service", cfg); err != nil {
		log.Fatalf("customers-service exited: %v", err)
	}
}
