package petclinicserver

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	visithttpmapper "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/http/mapper"
	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	visitsports "github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
	apierrors "github.com/Apurer/go-gin-petclinic/internal/shared/errors"
)

// VisitAPI wires HTTP transport with the visits service and workflows.
type VisitAPI struct {
	service   visitsports.Service
	workflows visitsports.WorkflowOrchestrator
}

// NewVisitAPI creates a VisitAPI. workflows may be nil, in which case visits
// are created through the service directly.
func NewVisitAPI(service visitsports.Service, workflows visitsports.WorkflowOrchestrator) *VisitAPI {
	return &VisitAPI{service: service, workflows: workflows}
}

// Post /owners/:ownerId/pets/:petId/visits
// Book a visit for a pet. An Idempotency-Key header makes replays return
// the visit booked first when visits run on Temporal.
func (api *VisitAPI) CreateVisit(c *gin.Context) {
	petID, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	var payload visithttpmapper.VisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	req, dateViolations := visithttpmapper.ToVisitRequest(petID, payload)
	req.IdempotencyKey = c.GetHeader("Idempotency-Key")
	if err := visitsapp.CheckVisitWith(req, dateViolations); err != nil {
		respondServiceError(c, err)
		return
	}
	visit, err := api.createVisit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visithttpmapper.FromDomainVisit(visit))
}

func (api *VisitAPI) createVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	if api.workflows != nil {
		return api.workflows.CreateVisit(ctx, req)
	}
	return api.service.CreateVisit(ctx, req)
}

// Get /owners/:ownerId/pets/:petId/visits
func (api *VisitAPI) VisitsForPet(c *gin.Context) {
	petID, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	visits, err := api.service.VisitsForPet(c.Request.Context(), petID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, visithttpmapper.FromDomainVisits(visits))
}

// Get /pets/visits?petId=1,2
// petId may be comma separated, repeated, or both.
func (api *VisitAPI) VisitsForPets(c *gin.Context) {
	petIDs, ok := parsePetIDsQuery(c)
	if !ok {
		return
	}
	result, err := api.service.VisitsForPets(c.Request.Context(), petIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, visithttpmapper.FromPetVisits(result))
}

func parsePetIDsQuery(c *gin.Context) ([]int64, bool) {
	var ids []int64
	for _, raw := range c.QueryArray("petId") {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				respondProblem(c, apierrors.ErrBadRequest.WithDetail("petId must be a comma separated list of integers"))
				return nil, false
			}
			ids = append(ids, id)
		}
	}
	return ids, true
}
