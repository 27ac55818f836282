package api

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	customersmemory "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/persistence/postgres"
	customersports "github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
	vetscache "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/cache"
	vetsmemory "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/memory"
	vetspostgres "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/persistence/postgres"
	vetsdomain "github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	vetsports "github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
	visitsmemory "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/memory"
	visitspostgres "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/persistence/postgres"
	visitsworkflows "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/workflows"
	visitsports "github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
	platformkafka "github.com/Apurer/go-gin-petclinic/internal/platform/kafka"
	platformobservability "github.com/Apurer/go-gin-petclinic/internal/platform/observability"
	platformredis "github.com/Apurer/go-gin-petclinic/internal/platform/redis"
	"github.com/Apurer/go-gin-petclinic/internal/shared/events"
)

// Every optional backend degrades: postgres to memory, redis to no cache,
// kafka to a no-op publisher and Temporal to inline execution.

func buildCustomerRepositories(db *gorm.DB) (customersports.OwnerRepository, customersports.PetRepository) {
	if db == nil {
		repo := customersmemory.NewRepository()
		return repo, repo
	}
	repo := customerspostgres.NewRepository(db)
	return repo, repo
}

func buildVetRepository(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (vetsports.Repository, func()) {
	var repo vetsports.Repository
	if db == nil {
		repo = vetsmemory.NewRepository(vetsdomain.DefaultVets()...)
	} else {
		repo = vetspostgres.NewRepository(db)
	}
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, vets are served without cache")
		return repo, func() {}
	}
	redisClient, err := platformredis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Warn("failed to connect to redis, vets are served without cache", slog.String("error", err.Error()))
		return repo, func() {}
	}
	logger.Info("vets cache enabled", slog.String("addr", cfg.RedisAddr), slog.Duration("ttl", cfg.VetsCacheTTL))
	return vetscache.NewRepository(repo, redisClient, cfg.VetsCacheTTL, logger), func() { _ = redisClient.Close() }
}

func buildVisitRepository(db *gorm.DB) visitsports.Repository {
	if db == nil {
		return visitsmemory.NewRepository()
	}
	return visitspostgres.NewRepository(db)
}

// buildVisitWorkflows picks Temporal only when visits live in postgres. The
// worker persists through its own repository, so with in-memory storage a
// visit booked through Temporal would never be readable from this process.
func buildVisitWorkflows(cfg Config, db *gorm.DB, service visitsports.Service, instruments *platformobservability.Instruments) (visitsports.WorkflowOrchestrator, func()) {
	logger := effectiveLogger(instruments)
	inline := visitsworkflows.NewInlineVisitWorkflows(service)
	if db == nil {
		logger.Info("visits stored in memory, creating visits inline")
		return inline, func() {}
	}
	temporalClient, err := connectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Warn("Temporal workflows unavailable, creating visits inline", slog.String("error", err.Error()))
		return inline, func() {}
	}
	logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	return visitsworkflows.NewTemporalVisitWorkflows(temporalClient), temporalClient.Close
}

// Request handlers only enqueue events; delivery happens off the request path.
const (
	eventQueueSize       = 256
	eventDeliveryTimeout = 5 * time.Second
)

func buildEventPublisher(cfg Config, logger *slog.Logger) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, domain events are discarded")
		return events.Noop{}, func() {}
	}
	publisher, err := platformkafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		logger.Warn("kafka publisher unavailable, domain events are discarded", slog.String("error", err.Error()))
		return events.Noop{}, func() {}
	}
	logger.Info("domain events published to kafka", slog.String("topic", cfg.KafkaTopic))
	async := events.NewAsync(publisher, logger, eventQueueSize, eventDeliveryTimeout)
	return async, func() {
		_ = async.Close()
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close kafka publisher", slog.String("error", err.Error()))
		}
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
