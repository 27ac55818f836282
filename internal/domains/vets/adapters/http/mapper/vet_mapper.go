package mapper

import vetsdomain "github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"

type Specialty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Vet renders specialties in the order they were added.
type Vet struct {
	ID          int64       `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Specialties []Specialty `json:"specialties"`
}

func FromDomainVet(vet *vetsdomain.Vet) Vet {
	out := Vet{Specialties: []Specialty{}}
	if vet == nil {
		return out
	}
	out.ID = vet.ID
	out.FirstName = vet.FirstName
	out.LastName = vet.LastName
	for _, sp := range vet.Specialties() {
		out.Specialties = append(out.Specialties, Specialty{ID: sp.ID, Name: sp.Name})
	}
	return out
}

func FromDomainVets(vets []*vetsdomain.Vet) []Vet {
	out := make([]Vet, 0, len(vets))
	for _, vet := range vets {
		out = append(out, FromDomainVet(vet))
	}
	return out
}
