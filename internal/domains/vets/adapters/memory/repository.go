package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory vet directory.
type Repository struct {
	mu     sync.RWMutex
	vets   map[int64]*domain.Vet
	nextID int64
}

// NewRepository returns a repository holding vets. Use domain.DefaultVets for
// the standard clinic roster.
func NewRepository(vets ...*domain.Vet) *Repository {
	r := &Repository{vets: map[int64]*domain.Vet{}}
	for _, vet := range vets {
		_, _ = r.Save(context.Background(), vet)
	}
	return r
}

func (r *Repository) Save(_ context.Context, vet *domain.Vet) (*domain.Vet, error) {
	if vet == nil {
		return nil, errors.New("vet is nil")
	}
	clone := vet.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.vets[clone.ID] = clone
	return clone.Clone(), nil
}

// FindAll returns vets ordered by id.
func (r *Repository) FindAll(_ context.Context) ([]*domain.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Vet, 0, len(r.vets))
	for _, vet := range r.vets {
		list = append(list, vet.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
