package ports

import (
	"context"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
)

// Repository persists visits. Both finders return visits in storage order
// (ascending id).
type Repository interface {
	Save(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	FindByPetID(ctx context.Context, petID int64) ([]*domain.Visit, error)
	FindByPetIDs(ctx context.Context, petIDs []int64) ([]*domain.Visit, error)
}
