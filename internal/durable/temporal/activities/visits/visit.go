package visits

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	visitsports "github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
)

const (
	// CreateVisitActivityName persists a visit through the visits service.
	CreateVisitActivityName = "visits.activities.CreateVisit"
	// InvalidVisitErrorType marks rejected input so the workflow does not retry it.
	InvalidVisitErrorType = "InvalidVisit"
)

// Activities groups activities that operate on the visits bounded context.
type Activities struct {
	service visitsports.Service
}

func NewActivities(service visitsports.Service) *Activities {
	return &Activities{service: service}
}

// CreateVisit stores a visit. Rejected input is returned as a non-retryable
// application error.
func (a *Activities) CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("visit activity not initialized", "petId", req.PetID)
		return nil, errors.New("visit activity not initialized")
	}
	logger.Info("CreateVisit activity started", "petId", req.PetID)
	visit, err := a.service.CreateVisit(ctx, req)
	if err != nil {
		logger.Error("CreateVisit activity failed", "petId", req.PetID, "error", err)
		if errors.Is(err, visitsapp.ErrInvalidInput) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), InvalidVisitErrorType, err)
		}
		return nil, err
	}
	logger.Info("CreateVisit activity completed", "visitId", visit.ID, "petId", visit.PetID)
	return visit, nil
}
