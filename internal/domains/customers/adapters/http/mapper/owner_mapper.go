package mapper

import (
	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

// Owner is the JSON shape served by the owner endpoints.
type Owner struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
	Pets      []Pet  `json:"pets"`
}

// OwnerRequest is the create/update body. Unknown fields, including id, are ignored.
type OwnerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

func ToOwnerRequest(payload OwnerRequest) customertypes.OwnerRequest {
	return customertypes.OwnerRequest{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Address:   payload.Address,
		City:      payload.City,
		Telephone: payload.Telephone,
	}
}

// FromDomainOwner renders an owner with its pets sorted by name.
func FromDomainOwner(owner *domain.Owner) Owner {
	if owner == nil {
		return Owner{Pets: []Pet{}}
	}
	out := Owner{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Address:   owner.Address,
		City:      owner.City,
		Telephone: owner.Telephone,
		Pets:      make([]Pet, 0, len(owner.Pets)),
	}
	for _, pet := range owner.SortedPets() {
		out.Pets = append(out.Pets, FromDomainPet(pet))
	}
	return out
}

// FromDomainOwners never returns nil so empty lists encode as [].
func FromDomainOwners(owners []*domain.Owner) []Owner {
	out := make([]Owner, 0, len(owners))
	for _, owner := range owners {
		out = append(out, FromDomainOwner(owner))
	}
	return out
}
