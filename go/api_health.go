package petclinicserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthAPI struct {
	services []string
}

// NewHealthAPI reports the given service names as mounted.
func NewHealthAPI(services ...string) *HealthAPI {
	return &HealthAPI{services: append([]string{}, services...)}
}

type healthResponse struct {
	Status   string   `json:"status"`
	Services []string `json:"services"`
}

// Get /health
func (api *HealthAPI) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Services: api.services})
}
