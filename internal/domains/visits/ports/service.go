package ports

import (
	"context"

	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
)

// Service exposes visit use cases to adapters.
type Service interface {
	CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error)
	VisitsForPet(ctx context.Context, petID int64) ([]*domain.Visit, error)
	VisitsForPets(ctx context.Context, petIDs []int64) (*domain.PetVisits, error)
}
