package ports

import (
	"context"

	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
)

// WorkflowOrchestrator exposes durable visit operations.
type WorkflowOrchestrator interface {
	CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error)
}
