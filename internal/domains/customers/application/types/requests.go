package types

import (
	"time"

	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
)

// BirthDateLayout is the wire format for pet birth dates.
const BirthDateLayout = "2006-01-02"

// OwnerRequest carries every descriptive owner field. It never carries an id.
type OwnerRequest struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Address   string `json:"address" validate:"notblank"`
	City      string `json:"city" validate:"notblank"`
	Telephone string `json:"telephone" validate:"notblank"`
}

// PetRequest is the create/update payload for a pet. BirthDate is kept raw
// so malformed dates surface as a field violation.
type PetRequest struct {
	Name      string `json:"name" validate:"notblank"`
	BirthDate string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	TypeID    int64  `json:"typeId" validate:"gt=0"`
}

// PetDetails is the read model returned for a single pet.
type PetDetails struct {
	ID        int64
	Name      string
	Owner     string
	BirthDate time.Time
	Type      domain.PetType
}
