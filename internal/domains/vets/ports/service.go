package ports

import (
	"context"

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
)

// Service exposes vet use cases to adapters.
type Service interface {
	ListVets(ctx context.Context) ([]*domain.Vet, error)
}
