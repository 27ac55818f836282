package domain

import (
	"sort"
	"strings"
)

// Owner is a clinic customer. ID is assigned by storage on first save and
// never changes afterwards.
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
	Pets      []Pet
}

// FullName joins first and last name the way pet details display it.
func (o *Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// SortedPets returns a copy of the owner's pets ordered by name.
func (o *Owner) SortedPets() []Pet {
	pets := make([]Pet, len(o.Pets))
	copy(pets, o.Pets)
	sort.SliceStable(pets, func(i, j int) bool {
		return strings.ToLower(pets[i].Name) < strings.ToLower(pets[j].Name)
	})
	return pets
}

// Clone returns a deep copy safe to hand out of a repository.
func (o *Owner) Clone() *Owner {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Pets = make([]Pet, len(o.Pets))
	copy(clone.Pets, o.Pets)
	return &clone
}
