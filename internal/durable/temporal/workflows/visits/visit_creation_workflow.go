package visits

import (
	"go.temporal.io/sdk/workflow"

	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/durable/temporal/sequences"
)

const (
	// VisitCreationWorkflowName is the public identifier for registering the workflow.
	VisitCreationWorkflowName = "visits.workflows.Creation"
	// VisitCreationTaskQueue is the queue consumed by the worker processing visit workflows.
	VisitCreationTaskQueue = "VISIT_CREATION"
)

type VisitCreationWorkflowInput struct {
	Request visittypes.VisitRequest
	TraceID string
}

// VisitCreationWorkflow persists a visit booked through the API.
func VisitCreationWorkflow(ctx workflow.Context, input VisitCreationWorkflowInput) (*domain.Visit, error) {
	logger := workflow.GetLogger(ctx)
	petID := input.Request.PetID
	logger.Info("VisitCreationWorkflow started", withTraceID(input.TraceID, "petId", petID)...)
	visit, err := sequences.RunVisitPersistenceSequence(ctx, input.Request)
	if err != nil {
		logger.Error("VisitCreationWorkflow failed", withTraceID(input.TraceID, "petId", petID, "error", err)...)
		return nil, err
	}
	logger.Info("VisitCreationWorkflow completed", withTraceID(input.TraceID, "visitId", visit.ID)...)
	return visit, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
