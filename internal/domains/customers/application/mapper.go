package application

import (
	"strings"
	"time"

	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

// MapOwner writes every descriptive field of req onto owner and returns it.
// The id and pets are left untouched. Pass a zero Owner when creating.
func MapOwner(owner *domain.Owner, req customertypes.OwnerRequest) *domain.Owner {
	if owner == nil {
		owner = &domain.Owner{}
	}
	owner.FirstName = req.FirstName
	owner.LastName = req.LastName
	owner.Address = req.Address
	owner.City = req.City
	owner.Telephone = req.Telephone
	return owner
}

// MapPet writes name, birth date and type onto pet. Id and owner stay as they are.
func MapPet(pet *domain.Pet, req customertypes.PetRequest, petType domain.PetType) *domain.Pet {
	if pet == nil {
		pet = &domain.Pet{}
	}
	pet.Name = req.Name
	pet.BirthDate = time.Time{}
	if raw := strings.TrimSpace(req.BirthDate); raw != "" {
		if parsed, err := time.Parse(customertypes.BirthDateLayout, raw); err == nil {
			pet.BirthDate = parsed
		}
	}
	pet.Type = petType
	return pet
}
