package petclinicserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/http/mapper"
	customersports "github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
)

// PetAPI serves the pet endpoints of the customers service.
type PetAPI struct {
	service customersports.Service
}

func NewPetAPI(service customersports.Service) *PetAPI {
	return &PetAPI{service: service}
}

// Get /petTypes
func (api *PetAPI) GetPetTypes(c *gin.Context) {
	petTypes, err := api.service.ListPetTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainPetTypes(petTypes))
}

// Post /owners/:ownerId/pets
// Add a pet to an existing owner
func (api *PetAPI) CreatePet(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "ownerId")
	if !ok {
		return
	}
	var payload pethttpmapper.PetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	pet, err := api.service.CreatePet(c.Request.Context(), ownerID, pethttpmapper.ToPetRequest(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pethttpmapper.FromDomainPet(*pet))
}

// Get /owners/:ownerId/pets/:petId
func (api *PetAPI) FindPet(c *gin.Context) {
	petID, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	details, err := api.service.GetPet(c.Request.Context(), petID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromPetDetails(details))
}

// Put /owners/:ownerId/pets/:petId
func (api *PetAPI) UpdatePet(c *gin.Context) {
	petID, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := api.service.GetPet(ctx, petID); err != nil {
		respondServiceError(c, err)
		return
	}
	var payload pethttpmapper.PetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	if err := api.service.UpdatePet(ctx, petID, pethttpmapper.ToPetRequest(payload)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
