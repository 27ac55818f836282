package application

import (
	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
)

// MapVisit copies req onto visit. The pet id is only taken while the visit
// has no id yet. A zero request date becomes today.
func MapVisit(visit *domain.Visit, req visittypes.VisitRequest) *domain.Visit {
	if visit == nil {
		visit = &domain.Visit{}
	}
	if visit.ID == 0 {
		visit.PetID = req.PetID
	}
	visit.Description = req.Description
	visit.Date = req.Date
	if visit.Date.IsZero() {
		visit.Date = domain.Today()
	}
	return visit
}
