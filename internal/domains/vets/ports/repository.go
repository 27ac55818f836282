package ports

import (
	"context"

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
)

// Repository lists vets with their specialties attached in add order.
type Repository interface {
	FindAll(ctx context.Context) ([]*domain.Vet, error)
	Save(ctx context.Context, vet *domain.Vet) (*domain.Vet, error)
}
