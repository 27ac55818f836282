package petclinicserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ownerhttpmapper "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/http/mapper"
	customersports "github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
)

// OwnerAPI wires HTTP transport with the customers service.
type OwnerAPI struct {
	service customersports.Service
}

func NewOwnerAPI(service customersports.Service) *OwnerAPI {
	return &OwnerAPI{service: service}
}

// Post /owners
// Register a new owner
func (api *OwnerAPI) CreateOwner(c *gin.Context) {
	var payload ownerhttpmapper.OwnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	owner, err := api.service.CreateOwner(c.Request.Context(), ownerhttpmapper.ToOwnerRequest(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ownerhttpmapper.FromDomainOwner(owner))
}

// Get /owners/:ownerId
func (api *OwnerAPI) FindOwner(c *gin.Context) {
	id, ok := parseIDParam(c, "ownerId")
	if !ok {
		return
	}
	owner, err := api.service.GetOwner(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ownerhttpmapper.FromDomainOwner(owner))
}

// Get /owners
func (api *OwnerAPI) FindAllOwners(c *gin.Context) {
	owners, err := api.service.ListOwners(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ownerhttpmapper.FromDomainOwners(owners))
}

// Put /owners/:ownerId
// Replace an owner's details. A missing owner is reported before the body is read.
func (api *OwnerAPI) UpdateOwner(c *gin.Context) {
	id, ok := parseIDParam(c, "ownerId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := api.service.GetOwner(ctx, id); err != nil {
		respondServiceError(c, err)
		return
	}
	var payload ownerhttpmapper.OwnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	if err := api.service.UpdateOwner(ctx, id, ownerhttpmapper.ToOwnerRequest(payload)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
