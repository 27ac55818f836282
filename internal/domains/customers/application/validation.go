package application

import (
	"strings"

	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

// ValidateOwner reports one violation per blank owner field.
func ValidateOwner(req customertypes.OwnerRequest) validation.Violations {
	return validation.Struct(req)
}

// ValidatePet checks the pet payload. Birth date is optional but must use
// the yyyy-MM-dd layout when present.
func ValidatePet(req customertypes.PetRequest) validation.Violations {
	req.BirthDate = strings.TrimSpace(req.BirthDate)
	return validation.Struct(req)
}
