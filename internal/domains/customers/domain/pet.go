package domain

import "time"

// PetType is reference data (cat, dog, ...).
type PetType struct {
	ID   int64
	Name string
}

// Pet belongs to exactly one owner.
type Pet struct {
	ID        int64
	Name      string
	BirthDate time.Time
	Type      PetType
	OwnerID   int64
}

// DefaultPetTypes seeds fresh stores.
func DefaultPetTypes() []PetType {
	return []PetType{
		{ID: 1, Name: "cat"},
		{ID: 2, Name: "dog"},
		{ID: 3, Name: "lizard"},
		{ID: 4, Name: "snake"},
		{ID: 5, Name: "bird"},
		{ID: 6, Name: "hamster"},
	}
}
