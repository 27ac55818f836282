package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	visitsmemory "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/memory"
	visitsobs "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/observability"
	visitspostgres "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/persistence/postgres"
	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	visitsports "github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
	visitactivities "github.com/Apurer/go-gin-petclinic/internal/durable/temporal/activities/visits"
	visitworkflows "github.com/Apurer/go-gin-petclinic/internal/durable/temporal/workflows/visits"
	platformkafka "github.com/Apurer/go-gin-petclinic/internal/platform/kafka"
	platformobservability "github.com/Apurer/go-gin-petclinic/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-petclinic/internal/platform/postgres"
	"github.com/Apurer/go-gin-petclinic/internal/shared/events"
)

func main() {
	ctx := context.Background()
	const serviceName = "petclinic-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	visitRepo, cleanupRepo := buildVisitRepository(ctx, logger)
	defer cleanupRepo()
	publisher, closePublisher := buildPublisher(logger)
	defer closePublisher()
	visitService := visitsobs.New(
		visitsapp.NewService(visitRepo, visitsapp.WithEventPublisher(publisher), visitsapp.WithLogger(logger)),
		visitsobs.WithLogger(logger),
		visitsobs.WithTracer(instruments.Tracer("internal.visits.application")),
		visitsobs.WithMeter(instruments.Meter("internal.visits.application")),
	)
	activities := visitactivities.NewActivities(visitService)

	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")})
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, visitworkflows.VisitCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(visitworkflows.VisitCreationWorkflow, workflow.RegisterOptions{Name: visitworkflows.VisitCreationWorkflowName})
	w.RegisterActivityWithOptions(activities.CreateVisit, activity.RegisterOptions{Name: visitactivities.CreateVisitActivityName})

	logger.Info("worker listening", slog.String("taskQueue", visitworkflows.VisitCreationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildVisitRepository(ctx context.Context, logger *slog.Logger) (visitsports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectOptional(ctx, os.Getenv("POSTGRES_DSN"), logger)
	if db == nil {
		return visitsmemory.NewRepository(), cleanup
	}
	logger.Info("worker visit repository configured with postgres")
	return visitspostgres.NewRepository(db), cleanup
}

func buildPublisher(logger *slog.Logger) (events.Publisher, func()) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return events.Noop{}, func() {}
	}
	publisher, err := platformkafka.NewPublisher(strings.Split(brokers, ","), envOrDefault("KAFKA_TOPIC", "petclinic.events"))
	if err != nil {
		logger.Warn("kafka publisher unavailable, domain events are discarded", slog.String("error", err.Error()))
		return events.Noop{}, func() {}
	}
	return publisher, func() { _ = publisher.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
