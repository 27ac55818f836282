package petclinicserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	customersmemory "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/memory"
	customersapp "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application"
	vetsmemory "github.com/Apurer/go-gin-petclinic/internal/domains/vets/adapters/memory"
	vetsapp "github.com/Apurer/go-gin-petclinic/internal/domains/vets/application"
	vetsdomain "github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	visitsmemory "github.com/Apurer/go-gin-petclinic/internal/domains/visits/adapters/memory"
	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	visitsports "github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
)

type problemBody struct {
	Type       string `json:"type"`
	Status     int    `json:"status"`
	Detail     string `json:"detail"`
	Extensions struct {
		Violations []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"violations"`
	} `json:"extensions"`
}

func newTestRouter(handlers ApiHandleFunctions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	return NewRouterWithGinEngine(router, handlers)
}

// newClinicRouter mounts every API on memory repositories. visitRepo may be
// nil for a fresh memory store.
func newClinicRouter(t *testing.T, visitRepo visitsports.Repository) *gin.Engine {
	t.Helper()
	customers := customersmemory.NewRepository()
	customerService := customersapp.NewService(customers, customers)
	if visitRepo == nil {
		visitRepo = visitsmemory.NewRepository()
	}
	return newTestRouter(ApiHandleFunctions{
		OwnerAPI:  NewOwnerAPI(customerService),
		PetAPI:    NewPetAPI(customerService),
		VetAPI:    NewVetAPI(vetsapp.NewService(vetsmemory.NewRepository(vetsdomain.DefaultVets()...))),
		VisitAPI:  NewVisitAPI(visitsapp.NewService(visitRepo), nil),
		HealthAPI: NewHealthAPI("customers", "vets", "visits"),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

var georgeFranklin = map[string]string{
	"firstName": "George",
	"lastName":  "Franklin",
	"address":   "110 W. Liberty St.",
	"city":      "Madison",
	"telephone": "6085551023",
}
