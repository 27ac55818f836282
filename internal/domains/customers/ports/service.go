package ports

import (
	"context"

	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

// Service exposes owner and pet use cases to adapters.
type Service interface {
	CreateOwner(ctx context.Context, req customertypes.OwnerRequest) (*domain.Owner, error)
	GetOwner(ctx context.Context, id int64) (*domain.Owner, error)
	ListOwners(ctx context.Context) ([]*domain.Owner, error)
	UpdateOwner(ctx context.Context, id int64, req customertypes.OwnerRequest) error

	ListPetTypes(ctx context.Context) ([]domain.PetType, error)
	CreatePet(ctx context.Context, ownerID int64, req customertypes.PetRequest) (*domain.Pet, error)
	UpdatePet(ctx context.Context, petID int64, req customertypes.PetRequest) error
	GetPet(ctx context.Context, petID int64) (*customertypes.PetDetails, error)
}
