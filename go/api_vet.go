package petclinicserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	vethttpmapper "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/http/mapper"
	vetsports "github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
)

type VetAPI struct {
	service vetsports.Service
}

func NewVetAPI(service vetsports.Service) *VetAPI {
	return &VetAPI{service: service}
}

// Get /vets
func (api *VetAPI) ShowVetList(c *gin.Context) {
	vets, err := api.service.ListVets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromDomainVets(vets))
}
