package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	petclinicserver "github.com/Apurer/go-gin-petclinic/go"
	customersobs "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/observability"
	customersapp "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application"
	vetsobs "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/observability"
	vetsapp "github.com/Apurer/go-gin-petclinic/internal/domains/vets/application"
	visitsobs "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/observability"
	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	"github.com/Apurer/go-gin-petclinic/internal/platform/errortracking"
	"github.com/Apurer/go-gin-petclinic/internal/platform/metrics"
	"github.com/Apurer/go-gin-petclinic/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-petclinic/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-petclinic/internal/platform/postgres"
	"github.com/Apurer/go-gin-petclinic/internal/shared/events"
)

// Run boots the clinic HTTP API for the services named in cfg and blocks
// until ctx is cancelled or the server fails.
func Run(ctx context.Context, serviceName string, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	flushSentry, err := errortracking.Init(cfg.SentryDSN, cfg.Environment, serviceName)
	if err != nil {
		logger.Warn("sentry disabled", slog.String("error", err.Error()))
	}
	defer flushSentry()

	db, closeDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer closeDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	publisher, closePublisher := buildEventPublisher(cfg, logger)
	defer closePublisher()

	handlers, closeHandlers := buildHandlers(ctx, cfg, db, publisher, instruments)
	defer closeHandlers()

	httpMetrics := metrics.NewHTTP(serviceName)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		petclinicserver.RequestID(),
		otelgin.Middleware(serviceName),
		httpMetrics.Middleware(),
		errortracking.Middleware(),
		petclinicserver.AccessLog(logger),
	)
	router = petclinicserver.NewRouterWithGinEngine(router, handlers)
	router.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("petclinic API listening", slog.String("addr", server.Addr), slog.Any("services", cfg.Services))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("petclinic API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down petclinic API")
		return server.Shutdown(shutdownCtx)
	}
}

// buildHandlers wires each configured service onto its storage and returns
// a cleanup for connections opened along the way.
func buildHandlers(ctx context.Context, cfg Config, db *gorm.DB, publisher events.Publisher, instruments *platformobservability.Instruments) (petclinicserver.ApiHandleFunctions, func()) {
	logger := instruments.Logger
	var cleanups []func()
	handlers := petclinicserver.ApiHandleFunctions{
		HealthAPI: petclinicserver.NewHealthAPI(cfg.Services...),
	}

	if cfg.Serves(ServiceCustomers) {
		owners, pets := buildCustomerRepositories(db)
		service := customersobs.New(
			customersapp.NewService(owners, pets,
				customersapp.WithEventPublisher(publisher),
				customersapp.WithLogger(logger),
			),
			customersobs.WithLogger(logger),
			customersobs.WithTracer(instruments.Tracer("internal.customers.application")),
			customersobs.WithMeter(instruments.Meter("internal.customers.application")),
		)
		handlers.OwnerAPI = petclinicserver.NewOwnerAPI(service)
		handlers.PetAPI = petclinicserver.NewPetAPI(service)
	}

	if cfg.Serves(ServiceVets) {
		repo, closeCache := buildVetRepository(ctx, cfg, db, logger)
		cleanups = append(cleanups, closeCache)
		service := vetsobs.New(
			vetsapp.NewService(repo),
			vetsobs.WithLogger(logger),
			vetsobs.WithTracer(instruments.Tracer("internal.vets.application")),
			vetsobs.WithMeter(instruments.Meter("internal.vets.application")),
		)
		handlers.VetAPI = petclinicserver.NewVetAPI(service)
	}

	if cfg.Serves(ServiceVisits) {
		service := visitsobs.New(
			visitsapp.NewService(buildVisitRepository(db),
				visitsapp.WithEventPublisher(publisher),
				visitsapp.WithLogger(logger),
			),
			visitsobs.WithLogger(logger),
			visitsobs.WithTracer(instruments.Tracer("internal.visits.application")),
			visitsobs.WithMeter(instruments.Meter("internal.visits.application")),
		)
		workflows, closeWorkflows := buildVisitWorkflows(cfg, db, service, instruments)
		cleanups = append(cleanups, closeWorkflows)
		handlers.VisitAPI = petclinicserver.NewVisitAPI(service, workflows)
	}

	return handlers, func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
}
