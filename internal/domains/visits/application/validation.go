package application

import (
	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

// ValidateVisit requires a positive pet id and a non-blank description.
func ValidateVisit(req visittypes.VisitRequest) validation.Violations {
	return validation.Struct(req)
}

// CheckVisit is ValidateVisit folded into the service error taxonomy.
func CheckVisit(req visittypes.VisitRequest) error {
	return mapError(ValidateVisit(req).Err())
}

// CheckVisitWith validates req and reports earlier violations, such as an
// unreadable date, in the same error.
func CheckVisitWith(req visittypes.VisitRequest, earlier validation.Violations) error {
	all := append(append(validation.Violations{}, earlier...), ValidateVisit(req)...)
	return mapError(all.Err())
}
