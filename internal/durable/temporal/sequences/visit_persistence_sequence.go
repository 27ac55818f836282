package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	visitactivities "github.com/Apurer/go-gin-petclinic/internal/durable/temporal/activities/visits"
)

// RunVisitPersistenceSequence executes the activities that persist a visit.
func RunVisitPersistenceSequence(ctx workflow.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("visit persistence sequence started", "petId", req.PetID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        2 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{visitactivities.InvalidVisitErrorType},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var visit domain.Visit
	if err := workflow.ExecuteActivity(ctx, visitactivities.CreateVisitActivityName, req).Get(ctx, &visit); err != nil {
		logger.Error("visit persistence sequence failed", "petId", req.PetID, "error", err)
		return nil, err
	}
	logger.Info("visit persistence sequence completed", "visitId", visit.ID)
	return &visit, nil
}
