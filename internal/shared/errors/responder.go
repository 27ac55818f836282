package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// ErrorMapper translates a domain or application error into a problem.
// It reports false when it does not recognise err.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder writes Problem Details responses, consulting mappers in order
// before falling back to a 500.
type Responder struct {
	// BaseURI is prepended to problem type URIs if they are relative.
	BaseURI string
	mappers []ErrorMapper
}

// NewResponder creates a responder with optional base URI and mappers.
func NewResponder(baseURI string, mappers ...ErrorMapper) *Responder {
	return &Responder{BaseURI: baseURI, mappers: mappers}
}

// DefaultResponder uses relative URIs and understands validation errors.
var DefaultResponder = NewResponder("", ValidationMapper)

// Respond sends a ProblemDetail response with proper content type.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && len(problem.Type) > 0 && problem.Type[0] == '/' {
		problem.Type = r.BaseURI + problem.Type
	}
	if problem.Instance == "" && c.Request != nil {
		problem.Instance = c.Request.URL.Path
	}
	if problem.Status >= http.StatusInternalServerError {
		_ = c.Error(problem)
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError maps err through the chain and responds.
func (r *Responder) RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	r.Respond(c, r.Problem(err))
}

// Problem resolves err to a ProblemDetail without writing anything.
func (r *Responder) Problem(err error) ProblemDetail {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem
	}
	for _, mapper := range r.mappers {
		if mapper == nil {
			continue
		}
		if mapped, ok := mapper(err); ok {
			return mapped
		}
	}
	return ErrInternal.WithDetail(err.Error())
}

// ValidationMapper recognises *validation.Error anywhere in the chain.
func ValidationMapper(err error) (ProblemDetail, bool) {
	violations, ok := validation.As(err)
	if !ok {
		return ProblemDetail{}, false
	}
	return NewValidationProblem(violations), true
}

// SentinelMapper maps any error matching one of targets to problem.
func SentinelMapper(problem ProblemDetail, targets ...error) ErrorMapper {
	return func(err error) (ProblemDetail, bool) {
		for _, target := range targets {
			if errors.Is(err, target) {
				return problem.WithDetail(err.Error()), true
			}
		}
		return ProblemDetail{}, false
	}
}

// Respond is a convenience function using the default responder.
func Respond(c *gin.Context, problem ProblemDetail) {
	DefaultResponder.Respond(c, problem)
}

// HTTPStatusFromError extracts HTTP status from an error if possible.
func HTTPStatusFromError(err error) int {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem.Status
	}
	return http.StatusInternalServerError
}
