package application

import (
	"context"
	"errors"
	"log/slog"

	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-petclinic/internal/shared/events"
	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

// Service orchestrates owner and pet use cases.
// Every write runs lookup, then validation, then mapping, then persistence.
type Service struct {
	owners    ports.OwnerRepository
	pets      ports.PetRepository
	publisher events.Publisher
	logger    *slog.Logger
}

type Option func(*Service)

// WithEventPublisher emits owner and pet events after successful saves.
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

func NewService(owners ports.OwnerRepository, pets ports.PetRepository, opts ...Option) *Service {
	s := &Service{
		owners:    owners,
		pets:      pets,
		publisher: events.Noop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) CreateOwner(ctx context.Context, req customertypes.OwnerRequest) (*domain.Owner, error) {
	if err := ValidateOwner(req).Err(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.owners.Save(ctx, MapOwner(&domain.Owner{}, req))
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.OwnerCreated, saved.ID, newOwnerPayload(saved))
	return saved, nil
}

func (s *Service) GetOwner(ctx context.Context, id int64) (*domain.Owner, error) {
	return s.owners.FindByID(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context) ([]*domain.Owner, error) {
	owners, err := s.owners.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if owners == nil {
		owners = []*domain.Owner{}
	}
	return owners, nil
}

// UpdateOwner replaces every descriptive field of an existing owner. A missing
// owner is reported before the payload is validated.
func (s *Service) UpdateOwner(ctx context.Context, id int64, req customertypes.OwnerRequest) error {
	existing, err := s.owners.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ValidateOwner(req).Err(); err != nil {
		return mapError(err)
	}
	saved, err := s.owners.Save(ctx, MapOwner(existing, req))
	if err != nil {
		return err
	}
	s.publish(ctx, events.OwnerUpdated, saved.ID, newOwnerPayload(saved))
	return nil
}

func (s *Service) ListPetTypes(ctx context.Context) ([]domain.PetType, error) {
	petTypes, err := s.pets.FindPetTypes(ctx)
	if err != nil {
		return nil, err
	}
	if petTypes == nil {
		petTypes = []domain.PetType{}
	}
	return petTypes, nil
}

func (s *Service) CreatePet(ctx context.Context, ownerID int64, req customertypes.PetRequest) (*domain.Pet, error) {
	if _, err := s.owners.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	petType, err := s.resolvePet(ctx, req)
	if err != nil {
		return nil, err
	}
	pet := MapPet(&domain.Pet{OwnerID: ownerID}, req, *petType)
	saved, err := s.pets.SavePet(ctx, pet)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.PetCreated, saved.ID, newPetPayload(saved))
	return saved, nil
}

func (s *Service) UpdatePet(ctx context.Context, petID int64, req customertypes.PetRequest) error {
	existing, err := s.pets.FindPetByID(ctx, petID)
	if err != nil {
		return err
	}
	petType, err := s.resolvePet(ctx, req)
	if err != nil {
		return err
	}
	saved, err := s.pets.SavePet(ctx, MapPet(existing, req, *petType))
	if err != nil {
		return err
	}
	s.publish(ctx, events.PetUpdated, saved.ID, newPetPayload(saved))
	return nil
}

func (s *Service) GetPet(ctx context.Context, petID int64) (*customertypes.PetDetails, error) {
	pet, err := s.pets.FindPetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	details := &customertypes.PetDetails{
		ID:        pet.ID,
		Name:      pet.Name,
		BirthDate: pet.BirthDate,
		Type:      pet.Type,
	}
	owner, err := s.owners.FindByID(ctx, pet.OwnerID)
	switch {
	case err == nil:
		details.Owner = owner.FullName()
	case !errors.Is(err, ports.ErrNotFound):
		return nil, err
	}
	return details, nil
}

// resolvePet validates req and loads the referenced pet type. An unknown
// type id is reported as a typeId violation.
func (s *Service) resolvePet(ctx context.Context, req customertypes.PetRequest) (*domain.PetType, error) {
	if err := ValidatePet(req).Err(); err != nil {
		return nil, mapError(err)
	}
	petType, err := s.pets.FindPetTypeByID(ctx, req.TypeID)
	if errors.Is(err, ports.ErrPetTypeNotFound) {
		var v validation.Violations
		v.Add("typeId", "unknown pet type")
		return nil, mapError(v.Err())
	}
	if err != nil {
		return nil, err
	}
	return petType, nil
}

func (s *Service) publish(ctx context.Context, eventType string, id int64, payload any) {
	event, err := events.New(eventType, id, payload)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish customer event",
			slog.String("event.type", eventType),
			slog.Int64("entity.id", id),
			slog.String("error", err.Error()))
	}
}

var _ ports.Service = (*Service)(nil)
