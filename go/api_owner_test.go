package petclinicserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ownerhttpmapper "github.com/Apurer/go-gin-petclinic/internal/domains/customers/adapters/http/mapper"
	apierrors "github.com/Apurer/go-gin-petclinic/internal/shared/errors"
)

func TestCreateOwner_ReturnsCreatedOwnerWithID(t *testing.T) {
	router := newClinicRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/owners", georgeFranklin)
	require.Equal(t, http.StatusCreated, rec.Code)

	owner := decode[ownerhttpmapper.Owner](t, rec)
	assert.NotZero(t, owner.ID)
	assert.Equal(t, "George", owner.FirstName)
	assert.Equal(t, "Franklin", owner.LastName)
	assert.Equal(t, "110 W. Liberty St.", owner.Address)
	assert.Equal(t, "Madison", owner.City)
	assert.Equal(t, "6085551023", owner.Telephone)
	assert.NotNil(t, owner.Pets)
}

func TestCreateOwner_EmptyFieldsListEveryViolation(t *testing.T) {
	router := newClinicRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/owners", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))

	problem := decode[problemBody](t, rec)
	assert.Equal(t, apierrors.TypeValidation, problem.Type)
	fields := []string{}
	for _, v := range problem.Extensions.Violations {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"firstName", "lastName", "address", "city", "telephone"}, fields)
}

func TestCreateOwner_MalformedBody(t *testing.T) {
	router := newClinicRouter(t, nil)
	rec := doJSON(t, router, http.MethodPost, "/owners", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierrors.TypeBadRequest, decode[problemBody](t, rec).Type)
}

func TestFindOwner(t *testing.T) {
	router := newClinicRouter(t, nil)
	created := decode[ownerhttpmapper.Owner](t, doJSON(t, router, http.MethodPost, "/owners", georgeFranklin))

	rec := doJSON(t, router, http.MethodGet, "/owners/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[ownerhttpmapper.Owner](t, rec))

	rec = doJSON(t, router, http.MethodGet, "/owners/2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierrors.TypeNotFound, decode[problemBody](t, rec).Type)

	rec = doJSON(t, router, http.MethodGet, "/owners/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindAllOwners_EmptyIsOKWithEmptyList(t *testing.T) {
	router := newClinicRouter(t, nil)
	rec := doJSON(t, router, http.MethodGet, "/owners", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateOwner_ReplacesFieldsAndKeepsID(t *testing.T) {
	router := newClinicRouter(t, nil)
	doJSON(t, router, http.MethodPost, "/owners", georgeFranklin)

	update := map[string]any{
		"id":        99,
		"firstName": "Betty",
		"lastName":  "Davis",
		"address":   "638 Cardinal Ave.",
		"city":      "Sun Prairie",
		"telephone": "6085551749",
	}
	rec := doJSON(t, router, http.MethodPut, "/owners/1", update)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	owner := decode[ownerhttpmapper.Owner](t, doJSON(t, router, http.MethodGet, "/owners/1", nil))
	assert.Equal(t, int64(1), owner.ID)
	assert.Equal(t, "Betty", owner.FirstName)
	assert.Equal(t, "Sun Prairie", owner.City)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/owners/99", nil).Code)
}

func TestUpdateOwner_MissingOwnerIsNotFoundEvenWithBadBody(t *testing.T) {
	router := newClinicRouter(t, nil)

	rec := doJSON(t, router, http.MethodPut, "/owners/7", map[string]string{"firstName": ""})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/owners/7", "{not json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOwner_InvalidBodyOnExistingOwner(t *testing.T) {
	router := newClinicRouter(t, nil)
	doJSON(t, router, http.MethodPost, "/owners", georgeFranklin)

	rec := doJSON(t, router, http.MethodPut, "/owners/1", map[string]string{"firstName": "Only"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode[problemBody](t, rec).Extensions.Violations, 4)
}
