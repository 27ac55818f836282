package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps visits in insertion order, which is also id order.
type Repository struct {
	mu     sync.RWMutex
	visits []domain.Visit
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Save(_ context.Context, visit *domain.Visit) (*domain.Visit, error) {
	if visit == nil {
		return nil, errors.New("visit is nil")
	}
	stored := *visit
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
		r.visits = append(r.visits, stored)
		out := stored
		return &out, nil
	}
	for i := range r.visits {
		if r.visits[i].ID == stored.ID {
			// The owning pet never changes once a visit exists.
			stored.PetID = r.visits[i].PetID
			r.visits[i] = stored
			out := stored
			return &out, nil
		}
	}
	if stored.ID > r.nextID {
		r.nextID = stored.ID
	}
	r.visits = append(r.visits, stored)
	out := stored
	return &out, nil
}

func (r *Repository) FindByPetID(ctx context.Context, petID int64) ([]*domain.Visit, error) {
	return r.FindByPetIDs(ctx, []int64{petID})
}

func (r *Repository) FindByPetIDs(_ context.Context, petIDs []int64) ([]*domain.Visit, error) {
	wanted := make(map[int64]struct{}, len(petIDs))
	for _, id := range petIDs {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Visit, 0)
	for _, v := range r.visits {
		if _, ok := wanted[v.PetID]; ok {
			visit := v
			out = append(out, &visit)
		}
	}
	return out, nil
}
