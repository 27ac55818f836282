package petclinicserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	router := newTestRouter(ApiHandleFunctions{HealthAPI: NewHealthAPI("vets")})
	rec := doJSON(t, router, http.MethodGet, "/health", nil)

	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_KeepsValidIncomingID(t *testing.T) {
	router := newTestRouter(ApiHandleFunctions{HealthAPI: NewHealthAPI("vets")})
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}

func TestHealth_ListsMountedServices(t *testing.T) {
	router := newTestRouter(ApiHandleFunctions{HealthAPI: NewHealthAPI("customers", "visits")})
	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","services":["customers","visits"]}`, rec.Body.String())
}

func TestRouter_UnmountedAPIsAreNotRouted(t *testing.T) {
	router := newTestRouter(ApiHandleFunctions{HealthAPI: NewHealthAPI("vets")})
	rec := doJSON(t, router, http.MethodGet, "/owners", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
