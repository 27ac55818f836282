package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

func TestMapOwner_FullReplacementPreservesID(t *testing.T) {
	existing := &domain.Owner{
		ID:        7,
		FirstName: "Old",
		LastName:  "Name",
		Address:   "1 Old Rd",
		City:      "Nowhere",
		Telephone: "000",
		Pets:      []domain.Pet{{ID: 3, Name: "Rosy"}},
	}

	mapped := MapOwner(existing, georgeRequest())

	assert.Same(t, existing, mapped)
	assert.Equal(t, int64(7), mapped.ID)
	assert.Equal(t, "George", mapped.FirstName)
	assert.Equal(t, "6085551023", mapped.Telephone)
	assert.Len(t, mapped.Pets, 1)
}

func TestMapOwner_NilStartsFresh(t *testing.T) {
	mapped := MapOwner(nil, georgeRequest())
	assert.Zero(t, mapped.ID)
	assert.Equal(t, "Madison", mapped.City)
}

func TestMapPet_ParsesBirthDate(t *testing.T) {
	pet := MapPet(&domain.Pet{ID: 4, OwnerID: 2}, customertypes.PetRequest{Name: "Basil", BirthDate: "2012-08-06"}, domain.PetType{ID: 6, Name: "hamster"})
	assert.Equal(t, int64(4), pet.ID)
	assert.Equal(t, int64(2), pet.OwnerID)
	assert.Equal(t, "2012-08-06", pet.BirthDate.Format(customertypes.BirthDateLayout))
	assert.Equal(t, "hamster", pet.Type.Name)
}

func TestValidatePet(t *testing.T) {
	violations := ValidatePet(customertypes.PetRequest{Name: "", BirthDate: "06/08/2012", TypeID: 0})
	fields := []string{}
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"name", "birthDate", "typeId"}, fields)
	assert.Empty(t, ValidatePet(customertypes.PetRequest{Name: "Basil", TypeID: 6}))
}
