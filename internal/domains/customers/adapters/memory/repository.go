package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
)

var (
	_ ports.OwnerRepository = (*Repository)(nil)
	_ ports.PetRepository   = (*Repository)(nil)
)

// Repository is an in-memory owner and pet persistence adapter.
type Repository struct {
	mu          sync.RWMutex
	owners      map[int64]*domain.Owner
	pets        map[int64]*domain.Pet
	petTypes    []domain.PetType
	nextOwnerID int64
	nextPetID   int64
}

// NewRepository returns an empty store seeded with the default pet types.
func NewRepository() *Repository {
	return &Repository{
		owners:   map[int64]*domain.Owner{},
		pets:     map[int64]*domain.Pet{},
		petTypes: domain.DefaultPetTypes(),
	}
}

func (r *Repository) Save(_ context.Context, owner *domain.Owner) (*domain.Owner, error) {
	if owner == nil {
		return nil, errors.New("owner is nil")
	}
	clone := owner.Clone()
	clone.Pets = nil
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextOwnerID++
		clone.ID = r.nextOwnerID
	} else if clone.ID > r.nextOwnerID {
		r.nextOwnerID = clone.ID
	}
	r.owners[clone.ID] = clone
	return r.withPets(clone), nil
}

func (r *Repository) FindByID(_ context.Context, id int64) (*domain.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owner, ok := r.owners[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return r.withPets(owner), nil
}

// FindAll returns owners ordered by id.
func (r *Repository) FindAll(_ context.Context) ([]*domain.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Owner, 0, len(r.owners))
	for _, owner := range r.owners {
		list = append(list, r.withPets(owner))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) SavePet(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	clone := *pet
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextPetID++
		clone.ID = r.nextPetID
	} else if clone.ID > r.nextPetID {
		r.nextPetID = clone.ID
	}
	r.pets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) FindPetByID(_ context.Context, id int64) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *pet
	return &clone, nil
}

func (r *Repository) FindPetTypes(_ context.Context) ([]domain.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PetType, len(r.petTypes))
	copy(out, r.petTypes)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repository) FindPetTypeByID(_ context.Context, id int64) (*domain.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pt := range r.petTypes {
		if pt.ID == id {
			clone := pt
			return &clone, nil
		}
	}
	return nil, ports.ErrPetTypeNotFound
}

// withPets copies owner and attaches its pets ordered by id. Callers hold the lock.
func (r *Repository) withPets(owner *domain.Owner) *domain.Owner {
	clone := owner.Clone()
	clone.Pets = clone.Pets[:0]
	for _, pet := range r.pets {
		if pet.OwnerID == owner.ID {
			clone.Pets = append(clone.Pets, *pet)
		}
	}
	sort.Slice(clone.Pets, func(i, j int) bool { return clone.Pets[i].ID < clone.Pets[j].ID })
	return clone
}
