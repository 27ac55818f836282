// Command migrate applies the clinic schema and reference data, then exits.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Apurer/go-gin-petclinic/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-petclinic/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-petclinic/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := platformobservability.NewLogger(os.Stdout, "petclinic-migrate", platformobservability.LoadSettings())
	db, cleanup := platformpostgres.ConnectOptional(ctx, os.Getenv("POSTGRES_DSN"), logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; nothing to migrate")
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	logger.Info("schema and reference data applied")
}
