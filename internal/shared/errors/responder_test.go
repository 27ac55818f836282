package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

var errMissing = stderrors.New("owner not found")

func newTestContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, rec
}

func TestResponder_ValidationViolations(t *testing.T) {
	c, rec := newTestContext("/owners")
	var v validation.Violations
	v.Add("telephone", "must not be empty")

	DefaultResponder.RespondError(c, fmt.Errorf("create owner: %w", v.Err()))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))

	var body struct {
		Type       string `json:"type"`
		Instance   string `json:"instance"`
		Extensions struct {
			Violations []validation.Violation `json:"violations"`
		} `json:"extensions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, TypeValidation, body.Type)
	assert.Equal(t, "/owners", body.Instance)
	require.Len(t, body.Extensions.Violations, 1)
	assert.Equal(t, "telephone", body.Extensions.Violations[0].Field)
}

func TestResponder_SentinelMapper(t *testing.T) {
	responder := NewResponder("https://petclinic.example", SentinelMapper(ErrNotFound, errMissing))
	c, rec := newTestContext("/owners/9")

	responder.RespondError(c, fmt.Errorf("lookup: %w", errMissing))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://petclinic.example"+TypeNotFound, body.Type)
	assert.Contains(t, body.Detail, "owner not found")
}

func TestResponder_UnknownErrorIsInternal(t *testing.T) {
	c, rec := newTestContext("/vets")

	DefaultResponder.RespondError(c, stderrors.New("connection reset"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, c.Errors, 1)
}

func TestWithExtension_DoesNotMutateTemplate(t *testing.T) {
	_ = ErrNotFound.WithExtension("identifier", 1)
	assert.Nil(t, ErrNotFound.Extensions)
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromError(NewNotFoundProblem("owner", 1)))
}
