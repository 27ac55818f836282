package petclinicserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouterWithGinEngine adds routes to an existing gin engine. APIs left nil
// in handleFunctions are not mounted.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes that have no implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// ApiHandleFunctions groups the per-service APIs.
type ApiHandleFunctions struct {
	OwnerAPI  *OwnerAPI
	PetAPI    *PetAPI
	VetAPI    *VetAPI
	VisitAPI  *VisitAPI
	HealthAPI *HealthAPI
}

// The owner id segment in pet and visit routes is not interpreted beyond
// pet creation; clients send "*" there.
func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	var routes []Route
	if api := handleFunctions.OwnerAPI; api != nil {
		routes = append(routes,
			Route{"FindAllOwners", http.MethodGet, "/owners", api.FindAllOwners},
			Route{"CreateOwner", http.MethodPost, "/owners", api.CreateOwner},
			Route{"FindOwner", http.MethodGet, "/owners/:ownerId", api.FindOwner},
			Route{"UpdateOwner", http.MethodPut, "/owners/:ownerId", api.UpdateOwner},
		)
	}
	if api := handleFunctions.PetAPI; api != nil {
		routes = append(routes,
			Route{"GetPetTypes", http.MethodGet, "/petTypes", api.GetPetTypes},
			Route{"CreatePet", http.MethodPost, "/owners/:ownerId/pets", api.CreatePet},
			Route{"FindPet", http.MethodGet, "/owners/:ownerId/pets/:petId", api.FindPet},
			Route{"UpdatePet", http.MethodPut, "/owners/:ownerId/pets/:petId", api.UpdatePet},
		)
	}
	if api := handleFunctions.VetAPI; api != nil {
		routes = append(routes,
			Route{"ShowVetList", http.MethodGet, "/vets", api.ShowVetList},
		)
	}
	if api := handleFunctions.VisitAPI; api != nil {
		routes = append(routes,
			Route{"CreateVisit", http.MethodPost, "/owners/:ownerId/pets/:petId/visits", api.CreateVisit},
			Route{"VisitsForPet", http.MethodGet, "/owners/:ownerId/pets/:petId/visits", api.VisitsForPet},
			Route{"VisitsForPets", http.MethodGet, "/pets/visits", api.VisitsForPets},
		)
	}
	if api := handleFunctions.HealthAPI; api != nil {
		routes = append(routes,
			Route{"Health", http.MethodGet, "/health", api.Health},
		)
	}
	return routes
}
