package mapper

import (
	"strings"
	"time"

	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

// DateLayout is the wire format of visit dates in responses.
const DateLayout = "2006-01-02"

// requestDateLayouts are tried in order when reading a visit date. The last
// two cover clients that send RFC 3339 timestamps or the
// "Mon Jan 02 15:04:05 UTC 2006" form.
var requestDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.UnixDate,
	"Mon Jan 02 15:04:05 MST 2006",
}

type Visit struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"petId"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// VisitsResponse wraps a batch lookup.
type VisitsResponse struct {
	Items []Visit `json:"items"`
}

// VisitRequest is the create body. The pet id comes from the path and any
// petId in the body is ignored.
type VisitRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ToVisitRequest binds the path pet id and parses the optional date. An
// unparseable date leaves Date zero and is returned as a "date" violation
// so it can be reported together with the other field rules.
func ToVisitRequest(petID int64, payload VisitRequest) (visittypes.VisitRequest, validation.Violations) {
	req := visittypes.VisitRequest{PetID: petID, Description: payload.Description}
	raw := strings.TrimSpace(payload.Date)
	if raw == "" {
		return req, nil
	}
	date, ok := parseVisitDate(raw)
	if !ok {
		var v validation.Violations
		v.Add("date", "must be a date in yyyy-MM-dd format")
		return req, v
	}
	req.Date = date
	return req, nil
}

func parseVisitDate(raw string) (time.Time, bool) {
	for _, layout := range requestDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func FromDomainVisit(visit *domain.Visit) Visit {
	if visit == nil {
		return Visit{}
	}
	return Visit{
		ID:          visit.ID,
		PetID:       visit.PetID,
		Date:        visit.Date.Format(DateLayout),
		Description: visit.Description,
	}
}

func FromDomainVisits(visits []*domain.Visit) []Visit {
	out := make([]Visit, 0, len(visits))
	for _, visit := range visits {
		out = append(out, FromDomainVisit(visit))
	}
	return out
}

func FromPetVisits(result *domain.PetVisits) VisitsResponse {
	return VisitsResponse{Items: FromDomainVisits(result.Items())}
}
