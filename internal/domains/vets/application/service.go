package application

import (
	"context"

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
)

// Service serves the read-only vet directory.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListVets(ctx context.Context) ([]*domain.Vet, error) {
	vets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if vets == nil {
		vets = []*domain.Vet{}
	}
	return vets, nil
}

var _ ports.Service = (*Service)(nil)
