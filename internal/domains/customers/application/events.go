package application

import "github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"

type ownerPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	City      string `json:"city"`
}

func newOwnerPayload(o *domain.Owner) ownerPayload {
	return ownerPayload{ID: o.ID, FirstName: o.FirstName, LastName: o.LastName, City: o.City}
}

type petPayload struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"ownerId"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

func newPetPayload(p *domain.Pet) petPayload {
	return petPayload{ID: p.ID, OwnerID: p.OwnerID, Name: p.Name, Type: p.Type.Name}
}
