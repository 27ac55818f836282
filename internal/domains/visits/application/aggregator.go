package application

import (
	"context"
	"fmt"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

// Aggregator answers multi-pet visit lookups with a single storage query.
type Aggregator struct {
	repo ports.Repository
}

func NewAggregator(repo ports.Repository) *Aggregator {
	return &Aggregator{repo: repo}
}

// VisitsForPets deduplicates petIDs, issues one FindByPetIDs call and groups
// the result by pet. An empty id set never reaches storage.
func (a *Aggregator) VisitsForPets(ctx context.Context, petIDs []int64) (*domain.PetVisits, error) {
	ids, err := uniquePetIDs(petIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return domain.GroupByPet(nil), nil
	}
	visits, err := a.repo.FindByPetIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return domain.GroupByPet(visits), nil
}

// uniquePetIDs keeps first occurrences in order and rejects non-positive ids.
func uniquePetIDs(petIDs []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(petIDs))
	ids := make([]int64, 0, len(petIDs))
	var v validation.Violations
	for _, id := range petIDs {
		if id <= 0 {
			v.Add("petId", fmt.Sprintf("%d is not a valid pet id", id))
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if err := v.Err(); err != nil {
		return nil, mapError(err)
	}
	return ids, nil
}
