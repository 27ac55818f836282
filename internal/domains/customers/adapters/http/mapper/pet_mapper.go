package mapper

import (
	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

type PetType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Pet struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthDate string  `json:"birthDate,omitempty"`
	Type      PetType `json:"type"`
}

// PetRequest is the body for pet create/update. BirthDate uses yyyy-MM-dd.
type PetRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	TypeID    int64  `json:"typeId"`
}

// PetDetails is returned by GET /owners/*/pets/:petId.
type PetDetails struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Owner     string  `json:"owner"`
	BirthDate string  `json:"birthDate,omitempty"`
	Type      PetType `json:"type"`
}

func ToPetRequest(payload PetRequest) customertypes.PetRequest {
	return customertypes.PetRequest{
		Name:      payload.Name,
		BirthDate: payload.BirthDate,
		TypeID:    payload.TypeID,
	}
}

func FromDomainPet(pet domain.Pet) Pet {
	out := Pet{
		ID:   pet.ID,
		Name: pet.Name,
		Type: FromDomainPetType(pet.Type),
	}
	if !pet.BirthDate.IsZero() {
		out.BirthDate = pet.BirthDate.Format(customertypes.BirthDateLayout)
	}
	return out
}

func FromDomainPetType(pt domain.PetType) PetType {
	return PetType{ID: pt.ID, Name: pt.Name}
}

func FromDomainPetTypes(petTypes []domain.PetType) []PetType {
	out := make([]PetType, 0, len(petTypes))
	for _, pt := range petTypes {
		out = append(out, FromDomainPetType(pt))
	}
	return out
}

func FromPetDetails(details *customertypes.PetDetails) PetDetails {
	if details == nil {
		return PetDetails{}
	}
	out := PetDetails{
		ID:    details.ID,
		Name:  details.Name,
		Owner: details.Owner,
		Type:  FromDomainPetType(details.Type),
	}
	if !details.BirthDate.IsZero() {
		out.BirthDate = details.BirthDate.Format(customertypes.BirthDateLayout)
	}
	return out
}
