package petclinicserver

import (
	"strconv"

	"github.com/gin-gonic/gin"

	customersapp "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application"
	customersports "github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	apierrors "github.com/Apurer/go-gin-petclinic/internal/shared/errors"
)

// responder turns service errors into problem responses. Validation errors
// come first so their violations are kept.
var responder = apierrors.NewResponder("",
	apierrors.ValidationMapper,
	apierrors.SentinelMapper(apierrors.ErrNotFound, customersports.ErrNotFound),
	apierrors.SentinelMapper(apierrors.ErrBadRequest,
		customersapp.ErrInvalidInput,
		customersports.ErrPetTypeNotFound,
		visitsapp.ErrInvalidInput,
	),
)

func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

func respondServiceError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

func respondBindError(c *gin.Context, err error) {
	respondProblem(c, apierrors.ErrBadRequest.WithDetail("malformed request body: "+err.Error()))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(name+" must be an integer"))
		return 0, false
	}
	return id, true
}
