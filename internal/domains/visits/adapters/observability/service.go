package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	visitsports "github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
)

const tracerName = "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/observability/service"

// Service decorates the visits service with tracing, logging, and metrics.
type Service struct {
	inner   visitsports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	created metric.Int64Counter
	batch   metric.Int64Histogram
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m == nil {
			return
		}
		s.created, _ = m.Int64Counter("visits.service.created", metric.WithDescription("Number of visits created"))
		s.batch, _ = m.Int64Histogram("visits.service.batch_pets", metric.WithDescription("Pet ids per batch visit lookup"))
	}
}

func New(inner visitsports.Service, opts ...Option) visitsports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	ctx, span := s.tracer.Start(ctx, "VisitsService.CreateVisit", trace.WithAttributes(attribute.Int64("pet.id", req.PetID)))
	defer span.End()

	s.logInfo(ctx, "creating visit", slog.Int64("pet.id", req.PetID))
	visit, err := s.inner.CreateVisit(ctx, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create visit", slog.Int64("pet.id", req.PetID))
	}
	span.SetAttributes(attribute.Int64("visit.id", visit.ID))
	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	s.logInfo(ctx, "visit created", slog.Int64("visit.id", visit.ID), slog.Int64("pet.id", visit.PetID))
	return visit, nil
}

func (s *Service) VisitsForPet(ctx context.Context, petID int64) ([]*domain.Visit, error) {
	ctx, span := s.tracer.Start(ctx, "VisitsService.VisitsForPet", trace.WithAttributes(attribute.Int64("pet.id", petID)))
	defer span.End()

	visits, err := s.inner.VisitsForPet(ctx, petID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list visits", slog.Int64("pet.id", petID))
	}
	span.SetAttributes(attribute.Int("visits.count", len(visits)))
	return visits, nil
}

func (s *Service) VisitsForPets(ctx context.Context, petIDs []int64) (*domain.PetVisits, error) {
	ctx, span := s.tracer.Start(ctx, "VisitsService.VisitsForPets", trace.WithAttributes(attribute.Int64Slice("pet.ids", petIDs)))
	defer span.End()

	if s.batch != nil {
		s.batch.Record(ctx, int64(len(petIDs)))
	}
	result, err := s.inner.VisitsForPets(ctx, petIDs)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list visits for pets", slog.Int("pet.ids.count", len(petIDs)))
	}
	span.SetAttributes(attribute.Int("visits.count", result.Len()))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	attrs = append(attrs, slog.String("error", err.Error()))
	if errors.Is(err, visitsapp.ErrInvalidInput) {
		span.AddEvent("request rejected", trace.WithAttributes(attribute.String("reason", err.Error())))
		s.logInfo(ctx, msg, attrs...)
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

var _ visitsports.Service = (*Service)(nil)
