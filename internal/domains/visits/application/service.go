package application

import (
	"context"
	"log/slog"
	"time"

	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
	"github.com/Apurer/go-gin-petclinic/internal/shared/events"
)

// Service orchestrates visit use cases.
type Service struct {
	repo       ports.Repository
	aggregator *Aggregator
	publisher  events.Publisher
	logger     *slog.Logger
}

type Option func(*Service)

// WithEventPublisher emits visit.created after successful saves.
func WithEventPublisher(p events.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger reports event publish failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		aggregator: NewAggregator(repo),
		publisher:  events.Noop{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateVisit validates before touching storage, so a rejected request costs
// no repository call.
func (s *Service) CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	if err := CheckVisit(req); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, MapVisit(&domain.Visit{}, req))
	if err != nil {
		return nil, err
	}
	s.publishCreated(ctx, saved)
	return saved, nil
}

func (s *Service) VisitsForPet(ctx context.Context, petID int64) ([]*domain.Visit, error) {
	visits, err := s.repo.FindByPetID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []*domain.Visit{}
	}
	return visits, nil
}

func (s *Service) VisitsForPets(ctx context.Context, petIDs []int64) (*domain.PetVisits, error) {
	return s.aggregator.VisitsForPets(ctx, petIDs)
}

type visitPayload struct {
	ID          int64     `json:"id"`
	PetID       int64     `json:"petId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (s *Service) publishCreated(ctx context.Context, visit *domain.Visit) {
	event, err := events.New(events.VisitCreated, visit.ID, visitPayload{
		ID:          visit.ID,
		PetID:       visit.PetID,
		Date:        visit.Date,
		Description: visit.Description,
	})
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish visit event",
			slog.Int64("visit.id", visit.ID),
			slog.String("error", err.Error()))
	}
}

var _ ports.Service = (*Service)(nil)
