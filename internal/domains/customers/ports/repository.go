package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

var (
	ErrNotFound        = errors.New("customer record not found")
	ErrPetTypeNotFound = errors.New("pet type not found")
)

// OwnerRepository persists owners. FindByID and FindAll return owners with
// their pets attached.
type OwnerRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Owner, error)
	FindAll(ctx context.Context) ([]*domain.Owner, error)
	Save(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
}

// PetRepository persists pets and serves pet type reference data.
type PetRepository interface {
	FindPetByID(ctx context.Context, id int64) (*domain.Pet, error)
	SavePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindPetTypes(ctx context.Context) ([]domain.PetType, error)
	FindPetTypeByID(ctx context.Context, id int64) (*domain.PetType, error)
}
