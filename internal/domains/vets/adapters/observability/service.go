package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	vetsdomain "github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	vetsports "github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
)

const tracerName = "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/observability/service"

// Service decorates the vets service with tracing, logging, and metrics.
type Service struct {
	inner    vetsports.Service
	tracer   trace.Tracer
	logger   *slog.Logger
	listings metric.Int64Counter
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
		s.listings, _ = m.Int64Counter("vets.service.listings", metric.WithDescription("Number of vet directory reads"))
	}
}

func New(inner vetsports.Service, opts ...Option) vetsports.Service {
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

func (s *Service) ListVets(ctx context.Context) ([]*vetsdomain.Vet, error) {
	ctx, span := s.tracer.Start(ctx, "VetsService.ListVets")
	defer span.End()

	vets, err := s.inner.ListVets(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if s.logger != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to list vets", slog.String("error", err.Error()))
		}
		return nil, err
	}
	span.SetAttributes(attribute.Int("vets.count", len(vets)))
	if s.listings != nil {
		s.listings.Add(ctx, 1)
	}
	return vets, nil
}

var _ vetsports.Service = (*Service)(nil)
