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

	customersapp "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application"
	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	customersports "github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
)

const tracerName = "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/observability/service"

// Service decorates the customers service with tracing, logging, and metrics.
type Service struct {
	inner   customersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
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
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core customers service.
func New(inner customersports.Service, opts ...Option) customersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.Default(),
		metrics: newServiceMetrics(nil),
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

func (s *Service) CreateOwner(ctx context.Context, req customertypes.OwnerRequest) (*domain.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.CreateOwner")
	defer span.End()

	s.logInfo(ctx, "creating owner", slog.String("owner.last_name", req.LastName))
	owner, err := s.inner.CreateOwner(ctx, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create owner")
	}
	span.SetAttributes(attribute.Int64("owner.id", owner.ID))
	s.metrics.recordOwnerWrite(ctx, "create")
	s.logInfo(ctx, "owner created", slog.Int64("owner.id", owner.ID))
	return owner, nil
}

func (s *Service) GetOwner(ctx context.Context, id int64) (*domain.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.GetOwner", trace.WithAttributes(attribute.Int64("owner.id", id)))
	defer span.End()

	owner, err := s.inner.GetOwner(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load owner", slog.Int64("owner.id", id))
	}
	span.SetAttributes(attribute.Int("owner.pets.count", len(owner.Pets)))
	return owner, nil
}

func (s *Service) ListOwners(ctx context.Context) ([]*domain.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.ListOwners")
	defer span.End()

	owners, err := s.inner.ListOwners(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list owners")
	}
	span.SetAttributes(attribute.Int("owners.count", len(owners)))
	return owners, nil
}

func (s *Service) UpdateOwner(ctx context.Context, id int64, req customertypes.OwnerRequest) error {
	ctx, span := s.tracer.Start(ctx, "CustomersService.UpdateOwner", trace.WithAttributes(attribute.Int64("owner.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating owner", slog.Int64("owner.id", id))
	if err := s.inner.UpdateOwner(ctx, id, req); err != nil {
		return s.handleError(ctx, span, err, "failed to update owner", slog.Int64("owner.id", id))
	}
	s.metrics.recordOwnerWrite(ctx, "update")
	s.logInfo(ctx, "owner updated", slog.Int64("owner.id", id))
	return nil
}

func (s *Service) ListPetTypes(ctx context.Context) ([]domain.PetType, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.ListPetTypes")
	defer span.End()

	petTypes, err := s.inner.ListPetTypes(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list pet types")
	}
	return petTypes, nil
}

func (s *Service) CreatePet(ctx context.Context, ownerID int64, req customertypes.PetRequest) (*domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.CreatePet", trace.WithAttributes(attribute.Int64("owner.id", ownerID)))
	defer span.End()

	s.logInfo(ctx, "creating pet", slog.Int64("owner.id", ownerID), slog.Int64("pet.type_id", req.TypeID))
	pet, err := s.inner.CreatePet(ctx, ownerID, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create pet", slog.Int64("owner.id", ownerID))
	}
	span.SetAttributes(attribute.Int64("pet.id", pet.ID))
	s.metrics.recordPetWrite(ctx, "create")
	s.logInfo(ctx, "pet created", slog.Int64("pet.id", pet.ID), slog.Int64("owner.id", ownerID))
	return pet, nil
}

func (s *Service) UpdatePet(ctx context.Context, petID int64, req customertypes.PetRequest) error {
	ctx, span := s.tracer.Start(ctx, "CustomersService.UpdatePet", trace.WithAttributes(attribute.Int64("pet.id", petID)))
	defer span.End()

	s.logInfo(ctx, "updating pet", slog.Int64("pet.id", petID))
	if err := s.inner.UpdatePet(ctx, petID, req); err != nil {
		return s.handleError(ctx, span, err, "failed to update pet", slog.Int64("pet.id", petID))
	}
	s.metrics.recordPetWrite(ctx, "update")
	return nil
}

func (s *Service) GetPet(ctx context.Context, petID int64) (*customertypes.PetDetails, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.GetPet", trace.WithAttributes(attribute.Int64("pet.id", petID)))
	defer span.End()

	details, err := s.inner.GetPet(ctx, petID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load pet", slog.Int64("pet.id", petID))
	}
	return details, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// handleError records err on the span. Validation and not-found outcomes are
// client errors and are logged at info.
func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	attrs = append(attrs, slog.String("error", err.Error()))
	if errors.Is(err, customersapp.ErrInvalidInput) || errors.Is(err, customersports.ErrNotFound) {
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

type serviceMetrics struct {
	ownerWrites metric.Int64Counter
	petWrites   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ownerWrites, _ := m.Int64Counter("customers.service.owner_writes", metric.WithDescription("Number of owners created or updated"))
	petWrites, _ := m.Int64Counter("customers.service.pet_writes", metric.WithDescription("Number of pets created or updated"))
	return serviceMetrics{ownerWrites: ownerWrites, petWrites: petWrites}
}

func (m serviceMetrics) recordOwnerWrite(ctx context.Context, op string) {
	if m.ownerWrites != nil {
		m.ownerWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

func (m serviceMetrics) recordPetWrite(ctx context.Context, op string) {
	if m.petWrites != nil {
		m.petWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

var _ customersports.Service = (*Service)(nil)
